// internal/ui/wave_indicator.go
package ui

import (
	"go-arena-shooter/internal/config"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	BossColor        color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		BossColor:        config.BossColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 1,
	}
}

// ToRoman конвертирует целое число в римское. Для n <= 0 возвращает "".
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор, центрируя текст по X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, round int, face font.Face) {
	if wave <= 0 {
		return
	}
	label := "WAVE " + ToRoman(wave) + " " + ToRoman(round) + "/" + ToRoman(config.RoundsPerWave)

	textColor := i.Color
	if wave%config.BossWaveEvery == 0 {
		textColor = i.BossColor // босс-волна
	}

	bounds := text.BoundString(face, label)
	x := i.X - bounds.Dx()/2
	y := i.Y

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, y, textColor)
}
