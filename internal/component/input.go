// internal/component/input.go
package component

import "go-arena-shooter/internal/defs"

// Input — плоский снимок ввода на один тик. Симуляция его только читает.
type Input struct {
	Up, Down, Left, Right bool
	MouseX, MouseY        float64
	MouseDown             bool
	Domain                defs.DomainID // нажатая в этом тике горячая клавиша, 0 если нет
	Bomb                  defs.BombType // "" если нет
}

// Latch keeps next's movement and aim but carries over one-shot hotkeys
// that next does not press.
func (in Input) Latch(next Input) Input {
	if next.Domain == defs.DomainNone {
		next.Domain = in.Domain
	}
	if next.Bomb == "" {
		next.Bomb = in.Bomb
	}
	return next
}
