// internal/system/visual_effect.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/utils"
	"image/color"
)

// ParticleSystem управляет косметическими частицами. Случайность берётся из
// отдельного источника, чтобы не сдвигать игровые броски.
type ParticleSystem struct {
	world *entity.World
	rng   utils.Random
}

// NewParticleSystem создает новую систему частиц.
func NewParticleSystem(w *entity.World, fx utils.Random) *ParticleSystem {
	if fx == nil {
		fx = utils.NewPRNGService(0)
	}
	return &ParticleSystem{world: w, rng: fx}
}

// Burst emits count particles at (x, y).
func (s *ParticleSystem) Burst(x, y float64, c color.RGBA, count int) {
	for i := 0; i < count; i++ {
		s.world.Particles = append(s.world.Particles, &component.Particle{
			Position: component.Position{X: x, Y: y},
			Velocity: component.Velocity{
				VX: (s.rng.Float64() - 0.5) * config.ParticleSpeed,
				VY: (s.rng.Float64() - 0.5) * config.ParticleSpeed,
			},
			Color: c,
			Life:  config.ParticleLifeTicks,
		})
	}
}

// Update двигает частицы и удаляет догоревшие.
func (s *ParticleSystem) Update() {
	ps := s.world.Particles
	out := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			out = append(out, p)
		}
	}
	clear(ps[len(out):])
	s.world.Particles = out
}
