// internal/system/ally.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/utils"
	"math"
)

// AllySystem ведёт союзников: следование, лечение и автоогонь.
type AllySystem struct {
	world     *entity.World
	particles *ParticleSystem
}

func NewAllySystem(w *entity.World, p *ParticleSystem) *AllySystem {
	return &AllySystem{world: w, particles: p}
}

// Follow steers every ally toward its slot behind the player.
func (s *AllySystem) Follow() {
	p := s.world.Player
	for i, a := range s.world.Allies {
		tx := p.X + float64(i-1)*config.AllyFollowSpacing
		ty := p.Y + config.AllyFollowOffsetY
		if utils.Dist(a.X, a.Y, tx, ty) > config.AllyFollowSnap {
			a.X, a.Y = utils.StepToward(a.X, a.Y, tx, ty, config.AllyFollowSpeed)
		}
	}
}

// Update pins allies next to the player, then lets them heal and shoot.
// Союзник с нулевым HP остаётся в списке, но не лечит и не стреляет.
func (s *AllySystem) Update() {
	w := s.world
	for i, a := range w.Allies {
		offsetX := config.AllyPinOffsetX
		if i == 0 {
			offsetX = -offsetX
		}
		a.X = w.Player.X + offsetX
		a.Y = w.Player.Y + config.AllyPinOffsetY

		if !a.Active() {
			continue
		}
		def, err := defs.Ally(a.Type)
		if err != nil {
			continue
		}
		if def.Heals && w.Now-a.LastHeal > config.AllyHealIntervalMs {
			if w.HP < w.MaxHP {
				w.HealPlayer(config.AllyHealAmount)
				s.particles.Burst(a.X, a.Y, config.HealParticleColor, 3)
			}
			a.LastHeal = w.Now
		}
		if w.Now-a.LastShot > config.AllyShotIntervalMs {
			if target := s.target(); target != nil {
				s.shoot(a, def, target)
				a.LastShot = w.Now
			}
		}
	}
}

// target is the first hostile enemy, or the weakest one under AI control.
func (s *AllySystem) target() *component.Enemy {
	var best *component.Enemy
	for _, e := range s.world.Enemies {
		if !e.Hostile() {
			continue
		}
		if best == nil {
			best = e
			if !s.world.AIControlledAllies {
				return best
			}
			continue
		}
		if e.HP < best.HP {
			best = e
		}
	}
	return best
}

func (s *AllySystem) shoot(a *component.Ally, def defs.AllyDefinition, target *component.Enemy) {
	w := s.world
	angle := math.Atan2(target.Y-a.Y, target.X-a.X)
	dmg := def.BulletDamage
	if w.AIControlledAllies {
		dmg *= config.AllyAIDamageFactor
	}
	vel := component.Velocity{VX: math.Cos(angle) * config.AllyBulletSpeed, VY: math.Sin(angle) * config.AllyBulletSpeed}
	if _, err := w.AddBullet(defs.OwnerAlly, a.Position, vel, dmg, 1, true); err != nil {
		w.Log.Error("ally shot", "err", err)
	}
}
