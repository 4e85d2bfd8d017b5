// internal/system/wave.go
package system

import (
	"errors"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/timer"
	"go-arena-shooter/internal/utils"
	"math"
)

const (
	roundClearTimer = "round-clear"
	spawnWaveTimer  = "spawn-wave"
)

// WaveSystem управляет волнами: спавн, раунды, босс-волны и победа.
type WaveSystem struct {
	world   *entity.World
	events  *event.Dispatcher
	timers  *timer.Queue
	domains *DomainEngine

	// SpecialWaves is the modifier table rolled once per regular wave.
	SpecialWaves []defs.SpecialWave
}

func NewWaveSystem(w *entity.World, d *event.Dispatcher, q *timer.Queue, dom *DomainEngine) *WaveSystem {
	return &WaveSystem{
		world:        w,
		events:       d,
		timers:       q,
		domains:      dom,
		SpecialWaves: defs.SpecialWaves,
	}
}

// SpawnWave populates count enemies along the field edges, or a single boss
// when the boss flag is set. Every regular wave also drops 1-3 chests and
// maybe a pickup.
func (s *WaveSystem) SpawnWave(count int) {
	w := s.world
	if w.BossWave {
		w.BossWave = false
		s.spawnBoss()
		return
	}

	w.ScoreMultiplier = 1
	w.SpecialWave = ""
	sw, special := defs.RollSpecialWave(s.SpecialWaves, w.Rand.Float64())
	if special {
		if sw.EnemyCount > 0 {
			count = sw.EnemyCount
		}
		if sw.Multiplier > 0 {
			w.ScoreMultiplier = sw.Multiplier
		}
		w.SpecialWave = sw.Key
		s.events.Emit(event.SpecialWaveStarted, event.SpecialWaveData{Key: sw.Key, Name: sw.Name})
	}

	for range count {
		x, y := s.edgePoint()
		t := utils.Pick(w.Rand, defs.SpawnableEnemyTypes)
		e, err := w.NewEnemy(t, x, y)
		if err != nil {
			continue
		}
		s.scale(e, special && sw.Stealth)
		w.Enemies = append(w.Enemies, e)
	}

	chests := config.ChestMinPerWave + w.Rand.Intn(config.ChestMaxPerWave-config.ChestMinPerWave+1)
	for range chests {
		x, y := s.innerPoint()
		w.AddChest(x, y)
	}
	if w.Rand.Float64() < config.WavePickupChance {
		x, y := s.innerPoint()
		t := utils.Pick(w.Rand, defs.PickupTypes)
		if _, err := w.AddPickup(t, x, y); err != nil {
			w.Log.Error("wave pickup", "err", err)
		}
	}

	w.Log.Debug("wave spawned", "wave", w.Wave, "round", w.RoundInWave, "count", count, "special", w.SpecialWave)
	s.events.Emit(event.WaveStarted, event.WaveData{Wave: w.Wave, Round: w.RoundInWave})
}

// scale применяет аддитивный рост сложности и стелс-модификатор.
func (s *WaveSystem) scale(e *component.Enemy, stealth bool) {
	wave := float64(s.world.Wave)
	e.HP += wave * config.WaveHPPerLevel
	e.Speed += wave * config.WaveSpeedPerLevel
	e.Damage += wave
	if stealth {
		e.HP *= config.StealthHPFactor
		e.Speed *= config.StealthSpeedFactor
		e.Hidden = true
	}
	e.MaxHP = e.HP
}

func (s *WaveSystem) spawnBoss() {
	w := s.world
	e, err := w.NewEnemy(defs.EnemyBoss, w.Width/2, config.BossSpawnY)
	if err != nil {
		return
	}
	wave := float64(w.Wave)
	e.HP = config.BossBaseHP + wave*config.BossHPPerWave
	e.MaxHP = e.HP
	e.Damage = config.BossBaseDamage + wave*config.BossDamagePerWave
	e.Reward = config.BossBaseReward + w.Wave*config.BossRewardPerWave
	e.Speed = config.BossSpeed
	e.Size = 50
	e.IsBoss = true
	w.Enemies = append(w.Enemies, e)
	w.Log.Info("boss spawned", "wave", w.Wave, "hp", e.HP)
	s.events.Emit(event.WaveStarted, event.WaveData{Wave: w.Wave, Round: w.RoundInWave})
}

func (s *WaveSystem) edgePoint() (float64, float64) {
	w := s.world
	switch w.Rand.Intn(4) {
	case 0:
		return w.Rand.Float64() * w.Width, 0
	case 1:
		return w.Width, w.Rand.Float64() * w.Height
	case 2:
		return w.Rand.Float64() * w.Width, w.Height
	default:
		return 0, w.Rand.Float64() * w.Height
	}
}

func (s *WaveSystem) innerPoint() (float64, float64) {
	w := s.world
	in := config.ChestSpawnInset
	return w.Rand.Float64()*(w.Width-2*in) + in, w.Rand.Float64()*(w.Height-2*in) + in
}

// CheckClear detects an empty field once per round and schedules the round
// transition after the clear banner. Пока ждём спавна следующей волны,
// пустое поле очисткой не считается.
func (s *WaveSystem) CheckClear() {
	w := s.world
	if w.Phase != component.PhaseRunning || w.WaveWon {
		return
	}
	if w.HostileEnemies() > 0 || s.timers.Pending(spawnWaveTimer) > 0 {
		return
	}
	w.WaveWon = true
	s.events.Emit(event.RoundCleared, event.WaveData{Wave: w.Wave, Round: w.RoundInWave})
	s.timers.After(w.Now, config.WaveClearBannerMs, roundClearTimer, func(float64) {
		s.advanceRound()
	})
}

func (s *WaveSystem) advanceRound() {
	w := s.world
	w.WaveWon = false
	if w.Phase != component.PhaseRunning {
		return
	}
	if w.RoundInWave < config.RoundsPerWave {
		w.RoundInWave++
		s.SpawnWave(config.EnemiesPerRound)
		return
	}
	w.RoundInWave = 1
	s.NextWave()
}

// NextWave pays the wave bonus, checks victory, sets the boss cadence,
// spends any jackpot carryover and schedules the next spawn.
func (s *WaveSystem) NextWave() {
	w := s.world
	w.Wave++
	w.WavesSurvived++
	w.Gold += int(math.Floor(config.WaveClearGoldFactor * float64(w.Wave) * w.ScoreMultiplier))
	w.UpgradePoints++

	if w.Wave > w.WavesToWin {
		EndRun(w, s.events, true)
		return
	}
	if w.Wave%config.BossWaveEvery == 0 {
		w.BossWave = true
		s.events.Emit(event.BossWave, event.WaveData{Wave: w.Wave, Round: w.RoundInWave})
	}
	if carry := w.Domain.JackpotCarryover; carry > 0 {
		err := s.domains.Activate(defs.DomainJackpot, carry*1000)
		switch {
		case err == nil:
			w.Domain.JackpotCarryover = 0
		case errors.Is(err, ErrDomainActive):
			w.Log.Debug("jackpot carryover kept", "carryover_s", carry)
		}
	}

	count := config.EnemiesPerRound
	if w.BossWave {
		count = 1
	}
	s.timers.After(w.Now, config.NextWaveDelayMs, spawnWaveTimer, func(float64) {
		if w.Phase == component.PhaseRunning {
			s.SpawnWave(count)
		}
	})
}
