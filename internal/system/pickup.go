// internal/system/pickup.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/utils"
)

// UpdatePickups ages pickups, applies the ones the player touches and drops
// the expired ones.
func (s *ProgressionSystem) UpdatePickups() {
	w := s.world
	ps := w.Pickups
	out := ps[:0]
	for _, p := range ps {
		p.Life--
		if p.DistTo(w.Player.Position) < config.PickupRadius {
			s.applyPickup(p)
			continue
		}
		if p.Life > 0 {
			out = append(out, p)
		}
	}
	clear(ps[len(out):])
	w.Pickups = out
}

func (s *ProgressionSystem) applyPickup(p *component.Pickup) {
	w := s.world
	switch p.Type {
	case defs.PickupHealth:
		w.HealPlayer(config.HealthPickupHP)
	case defs.PickupAmmo:
		w.Gold += config.AmmoPickupGold
	case defs.PickupShield:
		w.Invincible = true
		w.Player.ShieldEnd = w.Now + config.ShieldDurationMs
		s.timers.After(w.Now, config.ShieldDurationMs, "shield-off", func(now float64) {
			// Повторный подбор продлевает щит; Jackpot держит неуязвимость сам.
			if now < w.Player.ShieldEnd || w.Domain.Active == defs.DomainJackpot {
				return
			}
			w.Invincible = false
			w.Player.ShieldEnd = 0
		})
	case defs.PickupSpeed:
		w.Player.Speed = config.SpeedBoostValue
		w.Player.SpeedBoostEnd = w.Now + config.SpeedBoostMs
		s.timers.After(w.Now, config.SpeedBoostMs, "speed-off", func(now float64) {
			if now < w.Player.SpeedBoostEnd {
				return
			}
			w.Player.Speed = config.PlayerBaseSpeed
			w.Player.SpeedBoostEnd = 0
		})
	case defs.PickupBomb:
		w.Bombs[defs.BombFire]++
	}
	w.PickupsCollected++
	s.particles.Burst(p.X, p.Y, config.PickupParticleColor, 10)
	s.events.Emit(event.PickupCollected, event.PickupData{Kind: string(p.Type), X: p.X, Y: p.Y})
}

// UpdateChests opens every closed chest within reach of the player.
func (s *ProgressionSystem) UpdateChests() {
	w := s.world
	for _, c := range w.Chests {
		if c.Opened {
			continue
		}
		if c.DistTo(w.Player.Position) < config.ChestRadius {
			c.Opened = true
			s.openChest(c)
		}
	}
}

func (s *ProgressionSystem) openChest(c *component.Chest) {
	w := s.world
	idx := utils.ChooseWeighted(w.Rand, defs.ChestLoot, func(e defs.LootEntry) int { return e.Weight })
	if idx < 0 {
		return
	}
	reward := defs.ChestLoot[idx]
	data := event.ChestData{Reward: string(reward.Kind), Amount: reward.Amount}

	switch reward.Kind {
	case defs.RewardCoins:
		w.Gold += reward.Amount
	case defs.RewardHP:
		w.HealPlayer(float64(reward.Amount))
	case defs.RewardWeapon:
		id := utils.Pick(w.Rand, defs.WeaponOrder)
		if w.OwnsWeapon(id) {
			w.Gold += config.DuplicateWeaponGold
			data = event.ChestData{Reward: string(defs.RewardCoins), Amount: config.DuplicateWeaponGold}
		} else {
			w.OwnedWeapons = append(w.OwnedWeapons, id)
			data.Reward = string(id)
		}
	case defs.RewardBomb:
		w.Bombs[reward.Bomb]++
	case defs.RewardAlly:
		if _, err := w.AddAlly(reward.Ally, c.Position); err != nil {
			w.Gold += config.FullRosterGold
			data = event.ChestData{Reward: string(defs.RewardCoins), Amount: config.FullRosterGold}
		}
	}
	s.particles.Burst(c.X, c.Y, config.ChestParticleColor, 20)
	s.events.Emit(event.ChestOpened, data)
}
