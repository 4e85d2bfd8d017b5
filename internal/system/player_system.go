// internal/system/player_system.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/utils"
	"math"
)

// PlayerSystem двигает игрока по вводу и наводит прицел.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(w *entity.World) *PlayerSystem {
	return &PlayerSystem{world: w}
}

// EffectiveSpeed is the vehicle speed when mounted, otherwise the walking
// speed scaled by upgrades and the weapon's slow factor.
func (s *PlayerSystem) EffectiveSpeed() float64 {
	w := s.world
	p := &w.Player
	if p.Vehicle != defs.VehicleNone {
		if v, err := defs.Vehicle(p.Vehicle); err == nil {
			return v.Speed
		}
	}
	factor := 1.0
	if def, err := defs.Weapon(p.Weapon); err == nil {
		factor = def.MoveFactor()
	}
	return p.Speed * w.Stats.Speed * factor
}

// Update applies one tick of movement. Диагональ не нормализуется: по
// диагонали игрок движется быстрее.
func (s *PlayerSystem) Update(in component.Input) {
	w := s.world
	p := &w.Player
	speed := s.EffectiveSpeed()

	if in.Up {
		p.Y -= speed
	}
	if in.Down {
		p.Y += speed
	}
	if in.Left {
		p.X -= speed
	}
	if in.Right {
		p.X += speed
	}

	if !w.Noclip {
		m := config.PlayerBoundMargin
		p.X = utils.Clamp(p.X, m, w.Width-m)
		p.Y = utils.Clamp(p.Y, m, w.Height-m)
	}
	p.Angle = math.Atan2(in.MouseY-p.Y, in.MouseX-p.X)
}
