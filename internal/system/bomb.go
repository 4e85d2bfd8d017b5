// internal/system/bomb.go
package system

import (
	"fmt"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
)

// BombSystem расходует бомбы из запаса.
type BombSystem struct {
	world     *entity.World
	particles *ParticleSystem
}

func NewBombSystem(w *entity.World, p *ParticleSystem) *BombSystem {
	return &BombSystem{world: w, particles: p}
}

// Use detonates one bomb of type t. Бомбы бьют только враждебных врагов;
// ядерная очищает поле целиком.
func (s *BombSystem) Use(t defs.BombType) error {
	w := s.world
	def, err := defs.Bomb(t)
	if err != nil {
		return err
	}
	if w.Bombs[t] <= 0 {
		return fmt.Errorf("%w: %s", ErrNoBombs, t)
	}
	w.Bombs[t]--

	cx, cy := w.Width/2, w.Height/2
	if def.ClearsField {
		clear(w.Enemies)
		w.Enemies = w.Enemies[:0]
		s.particles.Burst(cx, cy, config.NukeParticleColor, 200)
		return nil
	}
	for _, e := range w.Enemies {
		if !e.Hostile() {
			continue
		}
		if def.Pull > 0 {
			e.X += (cx - e.X) * def.Pull
			e.Y += (cy - e.Y) * def.Pull
		}
		e.ApplyDamage(def.Damage)
		if def.BurnTicks > 0 {
			e.Burning = def.BurnTicks
		}
	}
	switch t {
	case defs.BombSmoke:
		s.particles.Burst(cx, cy, config.SmokeParticleColor, 50)
	case defs.BombFire:
		s.particles.Burst(cx, cy, config.FireParticleColor, 80)
	}
	return nil
}

