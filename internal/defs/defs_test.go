package defs

import (
	"errors"
	"strings"
	"testing"
)

func TestLookupsRejectUnknownIDs(t *testing.T) {
	if _, err := Weapon("banana"); !errors.Is(err, ErrUnknownWeapon) {
		t.Fatalf("Weapon: got %v, want ErrUnknownWeapon", err)
	}
	if _, err := Enemy("ghost"); !errors.Is(err, ErrUnknownEnemy) {
		t.Fatalf("Enemy: got %v, want ErrUnknownEnemy", err)
	}
	if _, err := Ally("priest"); !errors.Is(err, ErrUnknownAlly) {
		t.Fatalf("Ally: got %v, want ErrUnknownAlly", err)
	}
	if _, err := Domain(11); !errors.Is(err, ErrUnknownDomain) {
		t.Fatalf("Domain: got %v, want ErrUnknownDomain", err)
	}
	if err := ValidatePickup("magnet"); !errors.Is(err, ErrUnknownPickup) {
		t.Fatalf("ValidatePickup: got %v, want ErrUnknownPickup", err)
	}
}

func TestCatalogsAreComplete(t *testing.T) {
	if len(WeaponOrder) != 20 || len(WeaponLibrary) != 20 {
		t.Fatalf("expected 20 weapons, got order=%d library=%d", len(WeaponOrder), len(WeaponLibrary))
	}
	for _, id := range WeaponOrder {
		w, err := Weapon(id)
		if err != nil {
			t.Fatalf("weapon %q missing: %v", id, err)
		}
		if w.Pierce < 1 {
			t.Errorf("weapon %q has pierce %d", id, w.Pierce)
		}
	}
	for id := DomainInfiniteWhite; id <= DomainParadise; id++ {
		if _, err := Domain(id); err != nil {
			t.Fatalf("domain %d missing: %v", id, err)
		}
	}
	if len(Achievements) != 10 || len(Badges) != 20 {
		t.Fatalf("achievements=%d badges=%d", len(Achievements), len(Badges))
	}
	for _, et := range SpawnableEnemyTypes {
		if _, err := Enemy(et); err != nil {
			t.Fatalf("archetype %q missing: %v", et, err)
		}
	}
}

func TestImmunityBypassSet(t *testing.T) {
	want := map[DomainID]bool{1: true, 2: true, 4: true, 5: true}
	for id, def := range DomainLibrary {
		if def.BypassesImmunity != want[id] {
			t.Errorf("domain %d BypassesImmunity = %v", id, def.BypassesImmunity)
		}
	}
}

func TestDecodeEnemyDefinitionsOverrides(t *testing.T) {
	lib := DefaultEnemyLibrary()
	n, err := DecodeEnemyDefinitions(strings.NewReader(`[{"id":"basic","hp":75,"speed":1.2,"damage":6,"reward":7}]`), lib)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 || lib[EnemyBasic].HP != 75 {
		t.Fatalf("override not applied: n=%d basic=%+v", n, lib[EnemyBasic])
	}
	if lib[EnemyTank].HP != 150 {
		t.Fatalf("untouched archetype changed: %+v", lib[EnemyTank])
	}

	if _, err := DecodeEnemyDefinitions(strings.NewReader(`[{"id":"basic","hp":0}]`), lib); err == nil {
		t.Fatalf("expected error for non-positive hp")
	}
	if _, err := DecodeEnemyDefinitions(strings.NewReader(`{`), lib); err == nil {
		t.Fatalf("expected error for malformed json")
	}
}

func TestRollSpecialWaveFirstMatchWins(t *testing.T) {
	sw, ok := RollSpecialWave(SpecialWaves, 0.05)
	if !ok || sw.Key != "goldRush" {
		t.Fatalf("roll 0.05: got %+v ok=%v", sw, ok)
	}
	if _, ok := RollSpecialWave(SpecialWaves, 0.5); ok {
		t.Fatalf("roll 0.5 should not match")
	}
	custom := []SpecialWave{{Key: "stealth", Chance: 1, Stealth: true}}
	if sw, ok := RollSpecialWave(custom, 0.99); !ok || !sw.Stealth {
		t.Fatalf("custom table: got %+v ok=%v", sw, ok)
	}
}

func TestFirstBloodOnlyOnFirstKill(t *testing.T) {
	a, ok := AchievementByID(AchFirstBlood)
	if !ok {
		t.Fatalf("firstBlood missing")
	}
	if !a.Condition(ProgressStats{Kills: 1}) || a.Condition(ProgressStats{Kills: 2}) {
		t.Fatalf("firstBlood predicate wrong")
	}
	if a.Reward != 50 {
		t.Fatalf("firstBlood reward = %d", a.Reward)
	}
}
