// internal/input/input.go
package input

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Горячие клавиши доменов: 1..9, затем 0 для десятого.
var domainKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9, ebiten.Key0,
}

// Бомбы в порядке defs.BombOrder.
var bombKeys = []ebiten.Key{ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV}

// Source is what a poller reads keys and the cursor from.
type Source interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Cursor() (int, int)
	MouseDown() bool
}

// Ebiten reads the live ebiten input state.
type Ebiten struct{}

func (Ebiten) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (Ebiten) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (Ebiten) Cursor() (int, int)            { return ebiten.CursorPosition() }
func (Ebiten) MouseDown() bool               { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }

// Poll flattens one frame of input. WASD and arrows both move; hotkeys are
// edge-triggered.
func Poll(src Source) component.Input {
	mx, my := src.Cursor()
	in := component.Input{
		Up:        src.Pressed(ebiten.KeyW) || src.Pressed(ebiten.KeyArrowUp),
		Down:      src.Pressed(ebiten.KeyS) || src.Pressed(ebiten.KeyArrowDown),
		Left:      src.Pressed(ebiten.KeyA) || src.Pressed(ebiten.KeyArrowLeft),
		Right:     src.Pressed(ebiten.KeyD) || src.Pressed(ebiten.KeyArrowRight),
		MouseX:    float64(mx),
		MouseY:    float64(my),
		MouseDown: src.MouseDown(),
	}
	for i, k := range domainKeys {
		if src.JustPressed(k) {
			in.Domain = defs.DomainID(i + 1)
			break
		}
	}
	for i, k := range bombKeys {
		if src.JustPressed(k) {
			in.Bomb = defs.BombOrder[i]
			break
		}
	}
	return in
}

// Merge keeps the latest movement and aim but latches one-shot hotkeys, so a
// key pressed on a frame without a tick is not lost.
func Merge(prev, next component.Input) component.Input {
	return prev.Latch(next)
}
