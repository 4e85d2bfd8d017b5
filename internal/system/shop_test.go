package system

import (
	"errors"
	"testing"
	"time"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"
)

func TestPurchaseWithoutGoldTakesNothing(t *testing.T) {
	g := newRig(t, nil)
	g.w.Gold = 50

	checks := []error{
		g.shop.BuyWeapon(defs.WeaponAK47),
		g.shop.HireAlly(defs.AllyTank),
		g.shop.BuyAvatar("crown"),
		g.shop.BuyUpgrade(defs.UpgradeDamage),
		g.shop.BuyAdminAccess(),
		g.shop.BuyVehicle(defs.VehicleSkateboard),
	}
	for i, err := range checks {
		if !errors.Is(err, ErrInsufficientGold) {
			t.Errorf("purchase %d: got %v", i, err)
		}
	}
	if g.w.Gold != 50 {
		t.Fatalf("gold = %d, nothing should be deducted", g.w.Gold)
	}
}

func TestBuyWeaponEquipsIt(t *testing.T) {
	g := newRig(t, nil)
	g.w.Gold = 1000
	if err := g.shop.BuyWeapon(defs.WeaponAK47); err != nil {
		t.Fatal(err)
	}
	if g.w.Gold != 200 || g.w.Player.Weapon != defs.WeaponAK47 || !g.w.OwnsWeapon(defs.WeaponAK47) {
		t.Fatalf("gold=%d weapon=%s", g.w.Gold, g.w.Player.Weapon)
	}
	if err := g.shop.BuyWeapon(defs.WeaponAK47); !errors.Is(err, ErrAlreadyOwned) {
		t.Fatalf("got %v", err)
	}
	if err := g.shop.EquipWeapon(defs.WeaponPistol); err != nil || g.w.Player.Weapon != defs.WeaponPistol {
		t.Fatalf("equip owned weapon: %v", err)
	}
	if err := g.shop.EquipWeapon(defs.WeaponRPG); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("got %v", err)
	}
	if err := g.shop.BuyWeapon("banana"); !errors.Is(err, defs.ErrUnknownWeapon) {
		t.Fatalf("got %v", err)
	}
}

func TestHireAllyRespectsCap(t *testing.T) {
	g := newRig(t, nil)
	g.w.Gold = 10000
	for len(g.w.Allies) < g.w.MaxAllies {
		if err := g.shop.HireAlly(defs.AllyScout); err != nil {
			t.Fatal(err)
		}
	}
	gold := g.w.Gold
	if err := g.shop.HireAlly(defs.AllyScout); !errors.Is(err, ErrAllyCapReached) {
		t.Fatalf("got %v", err)
	}
	if g.w.Gold != gold {
		t.Fatalf("rejected hire must not cost gold")
	}
}

func TestUpgradesAndClass(t *testing.T) {
	g := newRig(t, nil)
	g.w.Gold = 5000
	for _, u := range []defs.Upgrade{defs.UpgradeHP, defs.UpgradeDamage, defs.UpgradeSpeed, defs.UpgradeFireRate} {
		if err := g.shop.BuyUpgrade(u); err != nil {
			t.Fatal(err)
		}
	}
	if g.w.MaxHP != 150 || !approx(g.w.Stats.Damage, 1.1) || !approx(g.w.Stats.Speed, 1.2) || !approx(g.w.Stats.FireRate, 1.15) {
		t.Fatalf("maxhp=%v stats=%+v", g.w.MaxHP, g.w.Stats)
	}
	if g.w.Gold != 5000-500-800-600-1000 {
		t.Fatalf("gold = %d", g.w.Gold)
	}
	if err := g.shop.BuyUpgrade("luck"); !errors.Is(err, defs.ErrUnknownUpgrade) {
		t.Fatalf("got %v", err)
	}
	if err := g.shop.SelectClass(defs.ClassTank); err != nil || g.w.SelectedClass != defs.ClassTank {
		t.Fatalf("select class: %v", err)
	}
}

func TestAvatarAndVehicle(t *testing.T) {
	g := newRig(t, nil)
	g.w.Gold = 3000
	if err := g.shop.BuyAvatar("star"); err != nil {
		t.Fatal(err)
	}
	if err := g.shop.BuyAvatar(defs.DefaultAvatar); err != nil {
		t.Fatal(err)
	}
	if g.w.Gold != 2400 || g.w.SelectedAvatar != defs.DefaultAvatar {
		t.Fatalf("gold=%d selected=%s", g.w.Gold, g.w.SelectedAvatar)
	}
	if err := g.shop.BuyVehicle(defs.VehicleTank); !errors.Is(err, ErrNotForSale) {
		t.Fatalf("got %v", err)
	}
	if err := g.shop.BuyVehicle(defs.VehicleMotorcycle); err != nil {
		t.Fatal(err)
	}
	if g.w.Player.Vehicle != defs.VehicleMotorcycle || g.w.Gold != 400 {
		t.Fatalf("vehicle=%s gold=%d", g.w.Player.Vehicle, g.w.Gold)
	}
	if err := g.shop.BuyVehicle(defs.VehicleNone); err != nil || g.w.Player.Vehicle != defs.VehicleNone {
		t.Fatalf("dismount: %v", err)
	}
	if err := g.shop.BuyVehicle(defs.VehicleMotorcycle); err != nil || g.w.Gold != 400 {
		t.Fatalf("owned vehicle remounts for free: %v gold=%d", err, g.w.Gold)
	}
}

func TestBuyAdminAccess(t *testing.T) {
	g := newRig(t, nil)
	g.w.Gold = 10000
	if err := g.shop.BuyAdminAccess(); err != nil {
		t.Fatal(err)
	}
	if !g.w.HasAdminAccess || g.w.AdminLevel != 3 || g.w.Gold != 0 {
		t.Fatalf("access=%v level=%d gold=%d", g.w.HasAdminAccess, g.w.AdminLevel, g.w.Gold)
	}
	if err := g.shop.BuyAdminAccess(); !errors.Is(err, ErrAlreadyOwned) {
		t.Fatalf("got %v", err)
	}
}

func TestDailyBonusCooldownAndStreak(t *testing.T) {
	g := newRig(t, nil)
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	got, err := g.shop.ClaimDailyBonus(day)
	if err != nil || got != 500 {
		t.Fatalf("first claim: %d %v", got, err)
	}
	if _, err := g.shop.ClaimDailyBonus(day.Add(time.Hour)); !errors.Is(err, ErrBonusNotReady) {
		t.Fatalf("got %v", err)
	}
	got, err = g.shop.ClaimDailyBonus(day.Add(25 * time.Hour))
	if err != nil || got != 600 {
		t.Fatalf("second claim: %d %v", got, err)
	}
	if g.w.Gold != 1200 || g.w.DailyStreak != 2 {
		t.Fatalf("gold=%d streak=%d", g.w.Gold, g.w.DailyStreak)
	}
}

func TestSurrenderEndsRunAfterDelay(t *testing.T) {
	g := newRig(t, nil)
	if err := g.shop.Surrender(); err != nil {
		t.Fatal(err)
	}
	if g.w.Gold != 90 || g.w.Phase != component.PhaseRunning {
		t.Fatalf("gold=%d phase=%v", g.w.Gold, g.w.Phase)
	}
	g.at(800)
	if g.w.Phase != component.PhaseOver {
		t.Fatalf("phase = %v, want over", g.w.Phase)
	}
	if err := g.shop.Surrender(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("got %v", err)
	}
}

func TestSurrenderNeedsGold(t *testing.T) {
	g := newRig(t, nil)
	g.w.Gold = 5
	if err := g.shop.Surrender(); !errors.Is(err, ErrInsufficientGold) {
		t.Fatalf("got %v", err)
	}
	if g.w.Gold != 5 || g.q.Len() != 0 {
		t.Fatalf("failed surrender changed state")
	}
}

func TestBombs(t *testing.T) {
	g := newRig(t, nil)
	a := spawnAt(t, g, defs.EnemyTank, 0, 0)
	friend := spawnAt(t, g, defs.EnemyBasic, 10, 10)
	friend.Ally = true

	if err := g.bombs.Use(defs.BombSmoke); err != nil {
		t.Fatal(err)
	}
	if a.HP != 100 || friend.HP != 50 || g.w.Bombs[defs.BombSmoke] != 2 {
		t.Fatalf("smoke: hp=%v friend=%v stock=%d", a.HP, friend.HP, g.w.Bombs[defs.BombSmoke])
	}

	if err := g.bombs.Use(defs.BombFire); err != nil {
		t.Fatal(err)
	}
	if a.HP != 0 || a.Burning != 60 {
		t.Fatalf("fire: hp=%v burning=%d", a.HP, a.Burning)
	}

	a.HP = 500
	if err := g.bombs.Use(defs.BombGravity); err != nil {
		t.Fatal(err)
	}
	if !approx(a.X, 320) || !approx(a.Y, 240) || a.HP != 300 {
		t.Fatalf("gravity: (%v,%v) hp=%v", a.X, a.Y, a.HP)
	}

	if err := g.bombs.Use(defs.BombNuke); !errors.Is(err, ErrNoBombs) {
		t.Fatalf("got %v", err)
	}
	g.w.Bombs[defs.BombNuke] = 1
	if err := g.bombs.Use(defs.BombNuke); err != nil {
		t.Fatal(err)
	}
	if len(g.w.Enemies) != 0 {
		t.Fatalf("nuke should clear the field")
	}
}
