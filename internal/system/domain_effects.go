// internal/system/domain_effects.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"math"
)

func defaultStrategies() map[defs.DomainID]DomainEffect {
	return map[defs.DomainID]DomainEffect{
		defs.DomainInfiniteWhite: infiniteWhite{},
		defs.DomainBladeStorm:    bladeStorm{},
		defs.DomainShadowAbyss:   summon{kind: defs.EnemyShadow, count: config.ShadowAllyCount, nearPlayer: true},
		defs.DomainJackpot:       jackpot{},
		defs.DomainParasite:      parasite{},
		defs.DomainGravityTree:   gravityTree{},
		defs.DomainDeathOcean:    summon{kind: defs.EnemyDeathFish, count: config.DeathFishCount, zeroGravity: true},
		defs.DomainVolcano:       volcano{},
		defs.DomainCourt:         court{},
		defs.DomainParadise:      paradise{},
	}
}

// 1: заморозка и абсолютный урон.
type infiniteWhite struct{}

func (infiniteWhite) OnActivate(e *DomainEngine) {
	for _, en := range e.world.Enemies {
		if !en.Hostile() {
			continue
		}
		en.Frozen = true
		en.ApplyDamage(1000)
	}
}

// 2: серия лазерных разрезов через очередь таймеров.
type bladeStorm struct{}

func (bladeStorm) OnActivate(e *DomainEngine) {
	w := e.world
	for i := range config.LaserSlashCount {
		e.timers.After(w.Now, float64(i)*config.LaserSlashIntervalMs, "laser-slash", func(float64) {
			e.laserSlash()
		})
	}
}

func (e *DomainEngine) laserSlash() {
	w := e.world
	x := w.Rand.Float64() * w.Width
	y := w.Rand.Float64() * w.Height
	angle := w.Rand.Float64() * 2 * math.Pi
	vel := component.Velocity{
		VX: math.Cos(angle+math.Pi/2) * config.LaserSlashSpeed,
		VY: math.Sin(angle+math.Pi/2) * config.LaserSlashSpeed,
	}
	for i := range config.LaserSlashSegments {
		off := float64(i) * config.LaserSlashSpacing
		pos := component.Position{X: x + math.Cos(angle)*off, Y: y + math.Sin(angle)*off}
		if _, err := w.AddBullet(defs.OwnerLaserSlash, pos, vel, config.LaserSlashDamage, config.UnlimitedPierce, false); err != nil {
			return
		}
	}
}

// summon призывает союзных существ (3: тени, 7: рыбы смерти) и убирает их
// по окончании домена.
type summon struct {
	kind        defs.EnemyType
	count       int
	nearPlayer  bool
	zeroGravity bool
}

func (s summon) OnActivate(e *DomainEngine) {
	w := e.world
	if s.zeroGravity {
		w.Domain.ZeroGravity = true
	}
	for range s.count {
		var x, y float64
		if s.nearPlayer {
			x = w.Player.X + (w.Rand.Float64()-0.5)*config.ShadowAllySpread
			y = w.Player.Y + (w.Rand.Float64()-0.5)*config.ShadowAllySpread
		} else {
			x = w.Rand.Float64() * w.Width
			y = w.Rand.Float64() * w.Height
		}
		en, err := w.SpawnEnemy(s.kind, x, y)
		if err != nil {
			return
		}
		en.Ally = true
	}
}

func (s summon) OnEnd(e *DomainEngine) {
	w := e.world
	if s.zeroGravity {
		w.Domain.ZeroGravity = false
	}
	w.FilterEnemies(func(en *component.Enemy) bool {
		return !(en.Ally && en.Type == s.kind)
	})
}

// 4: неуязвимость; убийства за время домена копят время на следующую волну.
type jackpot struct{}

func (jackpot) OnActivate(e *DomainEngine) {
	w := e.world
	w.Invincible = true
	w.Domain.JackpotKills = w.Kills
}

func (jackpot) OnEnd(e *DomainEngine) {
	w := e.world
	w.Invincible = false
	if killed := w.Kills - w.Domain.JackpotKills; killed > 0 {
		w.Domain.JackpotCarryover += float64(killed) * config.JackpotRefundPerKillS
		w.Log.Info("jackpot carryover", "killed", killed, "carryover_s", w.Domain.JackpotCarryover)
	}
}

// 5: часть врагов переходит на сторону игрока.
type parasite struct{}

func (parasite) OnActivate(e *DomainEngine) {
	w := e.world
	for _, en := range w.Enemies {
		if w.Rand.Float64() < config.ParasiteChance {
			en.Ally = true
		}
	}
}

// 6: точка притяжения в центре поля.
type gravityTree struct{}

func (gravityTree) OnActivate(e *DomainEngine) {
	w := e.world
	w.Domain.GravityPoint = &component.GravityPoint{
		Position: component.Position{X: w.Width / 2, Y: w.Height / 2},
		Strength: config.GravityStrength,
	}
}

func (gravityTree) OnEnd(e *DomainEngine) {
	e.world.Domain.GravityPoint = nil
}

// 8: метеоры каждые 500 мс, пока домен активен.
type volcano struct{}

func (volcano) OnActivate(e *DomainEngine) {
	e.world.Domain.MeteorAccum = 0
}

func (volcano) OnTick(e *DomainEngine, deltaMs float64) {
	w := e.world
	w.Domain.MeteorAccum += deltaMs
	for w.Domain.MeteorAccum >= config.MeteorIntervalMs {
		w.Domain.MeteorAccum -= config.MeteorIntervalMs
		x := w.Rand.Float64() * w.Width
		pos := component.Position{X: x, Y: config.MeteorStartY}
		vel := component.Velocity{VY: config.MeteorSpeed}
		if _, err := w.AddBullet(defs.OwnerMeteor, pos, vel, config.MeteorDamage, config.UnlimitedPierce, false); err != nil {
			return
		}
	}
}

// 9: иммунитет к доменам, кроме 1, 2, 4 и 5.
type court struct{}

func (court) OnActivate(e *DomainEngine) {
	e.world.Domain.DomainImmune = true
	e.world.Domain.EnemyNoCast = true
}

func (court) OnEnd(e *DomainEngine) {
	e.world.Domain.DomainImmune = false
	e.world.Domain.EnemyNoCast = false
}

// 10: оглушение и лечение за убийство.
type paradise struct{}

func (paradise) OnActivate(e *DomainEngine) {
	for _, en := range e.world.Enemies {
		en.Stunned = true
	}
	e.world.Domain.HealOnKill = config.ParadiseHealOnKill
}

func (paradise) OnEnd(e *DomainEngine) {
	e.world.Domain.HealOnKill = 0
}

