// internal/system/combat.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"math"
)

// CombatSystem управляет стрельбой игрока и полётом снарядов.
type CombatSystem struct {
	world     *entity.World
	events    *event.Dispatcher
	particles *ParticleSystem
}

func NewCombatSystem(w *entity.World, d *event.Dispatcher, p *ParticleSystem) *CombatSystem {
	return &CombatSystem{world: w, events: d, particles: p}
}

// Fire spawns the equipped weapon's volley while the trigger is held and the
// fire interval has elapsed.
func (s *CombatSystem) Fire(in component.Input) {
	w := s.world
	if !in.MouseDown {
		return
	}
	def, err := defs.Weapon(w.Player.Weapon)
	if err != nil {
		w.Log.Error("cannot fire", "err", err)
		return
	}
	interval := def.FireRateMs / w.Stats.FireRate
	if w.Now-w.Player.LastShot <= interval {
		return
	}
	for range def.Shots() {
		spread := (w.Rand.Float64() - 0.5) * def.Spread
		angle := w.Player.Angle + spread
		vel := component.Velocity{VX: math.Cos(angle) * def.Speed, VY: math.Sin(angle) * def.Speed}
		if _, err := w.AddBullet(def.ID, w.Player.Position, vel, def.Damage*w.Stats.Damage, def.Pierce, false); err != nil {
			return
		}
	}
	w.Player.LastShot = w.Now
	s.events.Emit(event.ShotFired, def.ID)
}

// AdvanceBullets moves every bullet one step and resolves hits. Lifetime
// grows by a fixed 16 ms per call whatever the real frame time was.
func (s *CombatSystem) AdvanceBullets() {
	w := s.world
	bullets := w.Bullets
	out := bullets[:0]
	for _, b := range bullets {
		b.X += b.VX
		b.Y += b.VY
		b.Lifetime += config.BulletLifetimeInc

		if s.outOfField(b) {
			continue
		}
		consumed := s.resolveHits(b)
		if consumed || b.Lifetime >= config.BulletLifetimeMs {
			continue
		}
		out = append(out, b)
	}
	clear(bullets[len(out):])
	w.Bullets = out
}

// Метеоры появляются над полем и влетают в него сверху.
func (s *CombatSystem) outOfField(b *component.Bullet) bool {
	w := s.world
	if b.Weapon == defs.OwnerMeteor && b.Y < 0 && b.VY > 0 {
		return b.X < 0 || b.X > w.Width
	}
	return b.X < 0 || b.X > w.Width || b.Y < 0 || b.Y > w.Height
}

// resolveHits applies the bullet to every hostile enemy in reach. Pierce is
// shared by all enemies hit in the same tick; reports whether it ran out.
func (s *CombatSystem) resolveHits(b *component.Bullet) bool {
	w := s.world
	for _, e := range w.Enemies {
		if !e.Hostile() {
			continue
		}
		if b.DistTo(e.Position) >= config.BulletHitRadius {
			continue
		}
		dmg := b.Damage
		if w.Rand.Float64() < config.CritChance {
			dmg *= config.CritMultiplier
			w.Headshots++
			w.Criticals++
			s.particles.Burst(b.X, b.Y, config.CritParticleColor, 8)
			s.events.Emit(event.CriticalHit, event.HitData{X: b.X, Y: b.Y, Damage: dmg})
		}
		w.TotalDamageDealt += dmg
		e.ApplyDamage(dmg)
		b.Pierce--
		s.particles.Burst(b.X, b.Y, config.HitParticleColor, 5)
		if b.Pierce <= 0 {
			b.Pierce = 0
			return true
		}
	}
	return false
}
