// internal/state/console.go
package state

import (
	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const consoleLines = 8

// consoleOverlay — строка ввода админ-консоли поверх игры (~ открывает).
type consoleOverlay struct {
	open  bool
	line  []rune
	chars []rune
}

// toggleKeyPressed reports the backquote key that opens and closes the console.
func toggleKeyPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyBackquote)
}

// update reads typed text while the console is open. Returns true when the
// console swallowed this frame's input.
func (c *consoleOverlay) update(g *app.Game) bool {
	if toggleKeyPressed() {
		c.open = !c.open
		c.line = c.line[:0]
		return true
	}
	if !c.open {
		return false
	}
	c.chars = ebiten.AppendInputChars(c.chars[:0])
	for _, r := range c.chars {
		if r != '`' && r != '~' {
			c.line = append(c.line, r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(c.line) > 0 {
		c.line = c.line[:len(c.line)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && len(c.line) > 0 {
		g.Execute(string(c.line))
		c.line = c.line[:0]
	}
	return true
}

func (c *consoleOverlay) draw(screen *ebiten.Image, g *app.Game, face font.Face) {
	if !c.open {
		return
	}
	top := float32(config.ScreenHeight - (consoleLines+2)*16)
	vector.DrawFilledRect(screen, 0, top, config.ScreenWidth, float32(config.ScreenHeight)-top, color.RGBA{0, 0, 0, 200}, false)
	lines := g.Console.Lines()
	if len(lines) > consoleLines {
		lines = lines[len(lines)-consoleLines:]
	}
	y := int(top) + 16
	for _, l := range lines {
		text.Draw(screen, l, face, 10, y, config.TextLightColor)
		y += 16
	}
	text.Draw(screen, "> "+string(c.line)+"_", face, 10, y, config.ToastColor)
}
