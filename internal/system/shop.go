// internal/system/shop.go
package system

import (
	"fmt"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/timer"
	"slices"
	"time"
)

// Shop — покупки и экономика вне боя. Любая покупка при нехватке золота
// отклоняется без частичного списания.
type Shop struct {
	world  *entity.World
	events *event.Dispatcher
	timers *timer.Queue
}

func NewShop(w *entity.World, d *event.Dispatcher, q *timer.Queue) *Shop {
	return &Shop{world: w, events: d, timers: q}
}

func (s *Shop) charge(item string, cost int) error {
	w := s.world
	if w.Gold < cost {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientGold, item, cost, w.Gold)
	}
	w.Gold -= cost
	w.Log.Info("purchase", "item", item, "cost", cost, "gold", w.Gold)
	s.events.Emit(event.Purchase, event.PurchaseData{Item: item, Cost: cost})
	return nil
}

// BuyWeapon buys and equips a weapon.
func (s *Shop) BuyWeapon(id defs.WeaponID) error {
	w := s.world
	def, err := defs.Weapon(id)
	if err != nil {
		return err
	}
	if w.OwnsWeapon(id) {
		return fmt.Errorf("%w: %s", ErrAlreadyOwned, id)
	}
	if err := s.charge(string(id), def.Price); err != nil {
		return err
	}
	w.OwnedWeapons = append(w.OwnedWeapons, id)
	w.Player.Weapon = id
	return nil
}

// EquipWeapon switches to an owned weapon.
func (s *Shop) EquipWeapon(id defs.WeaponID) error {
	if _, err := defs.Weapon(id); err != nil {
		return err
	}
	if !s.world.OwnsWeapon(id) {
		return fmt.Errorf("%w: %s", ErrNotOwned, id)
	}
	s.world.Player.Weapon = id
	return nil
}

// HireAlly adds an ally next to the player. The roster cap is checked before
// any gold is taken.
func (s *Shop) HireAlly(t defs.AllyType) error {
	w := s.world
	def, err := defs.Ally(t)
	if err != nil {
		return err
	}
	if len(w.Allies) >= w.MaxAllies {
		return fmt.Errorf("%w (%d)", ErrAllyCapReached, w.MaxAllies)
	}
	if err := s.charge(string(t), def.Cost); err != nil {
		return err
	}
	_, err = w.AddAlly(t, w.Player.Position)
	return err
}

// BuyAvatar buys an avatar, or just selects it when already owned.
func (s *Shop) BuyAvatar(id defs.AvatarID) error {
	w := s.world
	def, err := defs.Avatar(id)
	if err != nil {
		return err
	}
	if !slices.Contains(w.OwnedAvatars, id) {
		if err := s.charge(string(id), def.Price); err != nil {
			return err
		}
		w.OwnedAvatars = append(w.OwnedAvatars, id)
	}
	w.SelectedAvatar = id
	return nil
}

// SelectClass picks the class applied at the next run start.
func (s *Shop) SelectClass(id defs.ClassID) error {
	if _, err := defs.Class(id); err != nil {
		return err
	}
	s.world.SelectedClass = id
	return nil
}

// BuyUpgrade buys one permanent stat step.
func (s *Shop) BuyUpgrade(u defs.Upgrade) error {
	w := s.world
	price, ok := defs.UpgradePrices[u]
	if !ok {
		return fmt.Errorf("%w: %q", defs.ErrUnknownUpgrade, u)
	}
	if err := s.charge("upgrade:"+string(u), price); err != nil {
		return err
	}
	switch u {
	case defs.UpgradeHP:
		w.MaxHP += config.UpgradeHPStep
	case defs.UpgradeDamage:
		w.Stats.Damage *= config.UpgradeDamageFactor
	case defs.UpgradeSpeed:
		w.Stats.Speed *= config.UpgradeSpeedFactor
	case defs.UpgradeFireRate:
		w.Stats.FireRate *= config.UpgradeFireRateFactor
	}
	return nil
}

// BuyAdminAccess unlocks the admin console at the top level.
func (s *Shop) BuyAdminAccess() error {
	w := s.world
	if w.HasAdminAccess {
		return fmt.Errorf("%w: admin access", ErrAlreadyOwned)
	}
	if err := s.charge("admin", config.AdminAccessCost); err != nil {
		return err
	}
	w.HasAdminAccess = true
	w.AdminLevel = config.MaxAdminLevel
	return nil
}

// BuyVehicle buys and mounts a vehicle; an owned one is mounted for free.
// VehicleNone dismounts.
func (s *Shop) BuyVehicle(id defs.VehicleID) error {
	w := s.world
	if id == defs.VehicleNone {
		w.Player.Vehicle = defs.VehicleNone
		return nil
	}
	def, err := defs.Vehicle(id)
	if err != nil {
		return err
	}
	if !slices.Contains(w.OwnedVehicles, id) {
		if def.AdminOnly {
			return fmt.Errorf("%w: %s", ErrNotForSale, id)
		}
		if err := s.charge(string(id), def.Price); err != nil {
			return err
		}
		w.OwnedVehicles = append(w.OwnedVehicles, id)
	}
	w.Player.Vehicle = id
	return nil
}

// ClaimDailyBonus pays 500 + 100 per streak day, at most once per 24 h of
// wall time. Returns the amount paid.
func (s *Shop) ClaimDailyBonus(now time.Time) (int, error) {
	w := s.world
	if w.DailyLastClaim != 0 {
		last := time.UnixMilli(w.DailyLastClaim)
		if wait := config.DailyBonusCooldownHour*time.Hour - now.Sub(last); wait > 0 {
			return 0, fmt.Errorf("%w: %s left", ErrBonusNotReady, wait.Round(time.Minute))
		}
	}
	bonus := config.DailyBonusBase + w.DailyStreak*config.DailyBonusPerStreak
	w.Gold += bonus
	w.DailyStreak++
	w.DailyLastClaim = now.UnixMilli()
	w.Log.Info("daily bonus", "amount", bonus, "streak", w.DailyStreak)
	s.events.Emit(event.Purchase, event.PurchaseData{Item: "daily-bonus", Cost: -bonus})
	return bonus, nil
}

// Surrender costs 10 gold and ends the run as lost after a short delay.
func (s *Shop) Surrender() error {
	w := s.world
	if w.Phase != component.PhaseRunning {
		return ErrNotRunning
	}
	if err := s.charge("surrender", config.SurrenderCost); err != nil {
		return err
	}
	s.timers.After(w.Now, config.SurrenderDelayMs, "surrender", func(float64) {
		EndRun(w, s.events, false)
	})
	return nil
}
