// internal/netplay/frame.go
package netplay

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
)

// Kind — тип сообщения на проводе.
type Kind string

const (
	KindHello    Kind = "hello"
	KindSnapshot Kind = "snapshot"
	KindInput    Kind = "input"
)

// ServerFrame is what the hub sends to every client.
type ServerFrame struct {
	Kind     Kind             `msgpack:"kind"`
	ClientID string           `msgpack:"client_id,omitempty"`
	Snapshot *entity.Snapshot `msgpack:"snapshot,omitempty"`
}

// InputFrame is one control message from a remote player.
// Command — необязательная строка админ-консоли.
type InputFrame struct {
	Kind      Kind          `msgpack:"kind"`
	Up        bool          `msgpack:"up"`
	Down      bool          `msgpack:"down"`
	Left      bool          `msgpack:"left"`
	Right     bool          `msgpack:"right"`
	MouseX    float64       `msgpack:"mx"`
	MouseY    float64       `msgpack:"my"`
	MouseDown bool          `msgpack:"md"`
	Domain    defs.DomainID `msgpack:"domain,omitempty"`
	Bomb      defs.BombType `msgpack:"bomb,omitempty"`
	Command   string        `msgpack:"cmd,omitempty"`
}

// Input converts the frame to a simulation input.
func (f InputFrame) Input() component.Input {
	return component.Input{
		Up: f.Up, Down: f.Down, Left: f.Left, Right: f.Right,
		MouseX: f.MouseX, MouseY: f.MouseY, MouseDown: f.MouseDown,
		Domain: f.Domain, Bomb: f.Bomb,
	}
}

// FrameFromInput is the client side of Input.
func FrameFromInput(in component.Input) InputFrame {
	return InputFrame{
		Kind: KindInput,
		Up:   in.Up, Down: in.Down, Left: in.Left, Right: in.Right,
		MouseX: in.MouseX, MouseY: in.MouseY, MouseDown: in.MouseDown,
		Domain: in.Domain, Bomb: in.Bomb,
	}
}
