// internal/system/progression.go
package system

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/timer"
	"go-arena-shooter/internal/utils"
	"strconv"
)

// ProgressionSystem ведёт комбо, достижения, значки, подбираемые предметы
// и сундуки.
type ProgressionSystem struct {
	world          *entity.World
	events         *event.Dispatcher
	timers         *timer.Queue
	particles      *ParticleSystem
	lastBadgeCheck float64
}

func NewProgressionSystem(w *entity.World, d *event.Dispatcher, q *timer.Queue, p *ParticleSystem) *ProgressionSystem {
	return &ProgressionSystem{world: w, events: d, timers: q, particles: p, lastBadgeCheck: entity.Never}
}

// RegisterKill advances the combo. A kill arriving after the 2 s window
// starts a new combo at 1.
func (s *ProgressionSystem) RegisterKill() {
	w := s.world
	c := &w.Combo
	if w.Now-c.LastKillTime > config.ComboWindowMs {
		c.Count = 0
	}
	c.Count++
	c.Multiplier = 1 + float64(c.Count)*config.ComboStep
	c.LastKillTime = w.Now
	if c.Count > w.MaxCombo {
		w.MaxCombo = c.Count
	}
	if c.Count%config.ComboBonusEvery == 0 {
		bonus := c.Count * config.ComboBonusPerCount
		w.Gold += bonus
		s.events.Emit(event.ComboBonus, event.ComboData{Count: c.Count, Bonus: bonus})
	}
}

// DecayCombo сбрасывает комбо, если с последнего убийства прошло больше 2 с.
// Вызывается раз в тик.
func (s *ProgressionSystem) DecayCombo() {
	w := s.world
	c := &w.Combo
	if c.Count == 0 || w.Now-c.LastKillTime <= config.ComboWindowMs {
		return
	}
	if c.Count >= config.ComboBrokenNotifyAt {
		s.events.Emit(event.ComboBroken, event.ComboData{Count: c.Count})
	}
	c.Count = 0
	c.Multiplier = 1
}

// EvaluateAchievements unlocks every achievement whose predicate holds.
func (s *ProgressionSystem) EvaluateAchievements() {
	for _, a := range defs.Achievements {
		if s.world.Achievements[a.ID] {
			continue
		}
		if a.Condition(s.world.ProgressStats()) {
			s.Unlock(a.ID)
		}
	}
}

// Unlock grants an achievement and its reward once. Returns false if it was
// already unlocked or does not exist.
func (s *ProgressionSystem) Unlock(id defs.AchievementID) bool {
	w := s.world
	a, ok := defs.AchievementByID(id)
	if !ok {
		w.Log.Error("unknown achievement", "id", id)
		return false
	}
	if w.Achievements[id] {
		return false
	}
	w.Achievements[id] = true
	w.Gold += a.Reward
	w.Log.Info("achievement unlocked", "id", id, "reward", a.Reward)
	s.events.Emit(event.AchievementUnlocked, event.UnlockData{Key: string(id), Name: a.Name, Reward: a.Reward})
	return true
}

// EvaluateBadges проверяет значки не чаще раза в секунду симуляции.
func (s *ProgressionSystem) EvaluateBadges() {
	w := s.world
	if w.Now-s.lastBadgeCheck < config.BadgeCheckIntervalMs {
		return
	}
	s.lastBadgeCheck = w.Now
	stats := w.ProgressStats()
	for _, b := range defs.Badges {
		if w.Badges[b.ID] || !b.Condition(stats) {
			continue
		}
		w.Badges[b.ID] = true
		s.events.Emit(event.BadgeUnlocked, event.UnlockData{Key: strconv.Itoa(int(b.ID)), Name: b.Name})
	}
}

// SpawnPickup drops a random pickup at (x, y).
func (s *ProgressionSystem) SpawnPickup(x, y float64) {
	t := utils.Pick(s.world.Rand, defs.PickupTypes)
	if _, err := s.world.AddPickup(t, x, y); err != nil {
		return
	}
}
