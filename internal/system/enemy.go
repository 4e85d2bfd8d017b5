// internal/system/enemy.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/utils"
	"math"
)

// EnemySystem убирает погибших врагов с выплатой и двигает живых.
type EnemySystem struct {
	world       *entity.World
	events      *event.Dispatcher
	particles   *ParticleSystem
	progression *ProgressionSystem
}

func NewEnemySystem(w *entity.World, d *event.Dispatcher, p *ParticleSystem, prog *ProgressionSystem) *EnemySystem {
	return &EnemySystem{world: w, events: d, particles: p, progression: prog}
}

// Advance runs the death pass and then moves the survivors.
func (s *EnemySystem) Advance() {
	w := s.world
	w.FilterEnemies(func(e *component.Enemy) bool {
		if e.HP <= 0 {
			s.kill(e)
			return false
		}
		if e.Burning > 0 {
			e.Burning--
		}
		if !e.Frozen && !e.Stunned {
			s.move(e)
			s.contact(e)
		}
		return true
	})
}

func (s *EnemySystem) kill(e *component.Enemy) {
	w := s.world
	gold := int(math.Floor(config.KillBaseGold * w.Combo.Multiplier))
	w.Gold += gold
	w.Kills++
	w.KillStreak++
	w.WeaponKills[w.Player.Weapon]++
	if e.IsBoss {
		w.BossesDefeated++
	}
	if w.Domain.HealOnKill > 0 {
		w.HealPlayer(w.Domain.HealOnKill)
	}
	s.progression.RegisterKill()
	s.particles.Burst(e.X, e.Y, config.DeathParticleColor, 10)
	if w.Rand.Float64() < config.PickupDropChance {
		s.progression.SpawnPickup(e.X, e.Y)
	}
	s.events.Emit(event.EnemyKilled, event.KillData{X: e.X, Y: e.Y, Gold: gold, IsBoss: e.IsBoss})
	s.progression.EvaluateAchievements()
}

func (s *EnemySystem) move(e *component.Enemy) {
	w := s.world
	if e.Hostile() {
		speed := e.Speed
		if speed == 0 {
			speed = config.DefaultEnemySpeed
		}
		e.X, e.Y = utils.StepToward(e.X, e.Y, w.Player.X, w.Player.Y, speed)
	}
	if g := w.Domain.GravityPoint; g != nil {
		e.X, e.Y = utils.StepToward(e.X, e.Y, g.X, g.Y, g.Strength)
	}
}

// contact наносит урон игроку при касании, не чаще раза в 500 мс.
func (s *EnemySystem) contact(e *component.Enemy) {
	w := s.world
	if !e.Hostile() || e.DistTo(w.Player.Position) >= config.ContactRadius {
		return
	}
	if w.Invincible || w.GodMode || w.Now-w.Player.LastDamageTime <= config.DamageCooldownMs {
		return
	}
	dmg := e.Damage
	if dmg == 0 {
		dmg = config.DefaultEnemyDamage
	}
	w.DamagePlayer(dmg)
	w.Player.LastDamageTime = w.Now
	w.KillStreak = 0
	w.NoDamageRun = false
	s.events.Emit(event.PlayerHit, event.HitData{X: w.Player.X, Y: w.Player.Y, Damage: dmg})
	if w.HP <= 0 {
		EndRun(w, s.events, false)
	}
}
