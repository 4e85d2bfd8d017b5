// internal/ui/player_health_indicator.go
package ui

import (
	"go-arena-shooter/internal/config"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PlayerHealthIndicator рисует полосу здоровья игрока.
type PlayerHealthIndicator struct {
	X, Y          float32
	Width, Height float32
}

func NewPlayerHealthIndicator(x, y, width, height float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Width: width, Height: height}
}

// Fill returns the filled fraction of the bar, clamped to [0, 1].
func Fill(hp, maxHP float64) float32 {
	if maxHP <= 0 {
		return 0
	}
	return float32(math.Max(0, math.Min(1, hp/maxHP)))
}

// Draw рисует полосу и подпись "hp/max" над ней. Щит окрашивает рамку.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, hp, maxHP float64, shielded bool, face font.Face) {
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, config.HPBarBackColor, false)
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width*Fill(hp, maxHP), i.Height, config.HPBarColor, false)

	var border color.Color = config.TextLightColor
	if shielded {
		border = config.FrozenColor
	}
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, 2, border, false)

	label := strconv.Itoa(int(math.Ceil(hp))) + "/" + strconv.Itoa(int(maxHP))
	text.Draw(screen, label, face, int(i.X), int(i.Y)-4, config.TextLightColor)
}
