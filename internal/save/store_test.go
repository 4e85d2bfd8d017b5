package save

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestLoadMissingFileGivesDefaultsWithUserID(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "none.json"), quiet())
	p, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Gold != 100 || p.MaxHP != 100 || p.SelectedClass != defs.ClassSoldier {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if p.UserID == "" {
		t.Fatalf("user id not generated")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "save.json")
	s := NewFileStore(path, quiet())
	in := DefaultProfile()
	in.UserID = "player-1"
	in.Gold = 4321
	in.OwnedWeapons = []defs.WeaponID{defs.WeaponPistol, defs.WeaponSniper}
	in.Achievements = []defs.AchievementID{defs.AchFirstBlood}
	in.Badges = []defs.BadgeID{1, 7}
	in.DailyReward = DailyReward{Streak: 3, LastClaim: 1700000000000}
	if err := s.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.UserID != "player-1" || out.Gold != 4321 || out.DailyReward != in.DailyReward {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if !slices.Equal(out.OwnedWeapons, in.OwnedWeapons) || !slices.Equal(out.Badges, in.Badges) {
		t.Fatalf("lists mismatch: %+v", out)
	}
	if out.Timestamp == 0 {
		t.Fatalf("timestamp not stamped")
	}
}

func TestDecodeFallsBackPerField(t *testing.T) {
	data := []byte(`{
		"gold": "lots",
		"kills": 12,
		"ownedWeapons": ["pistol", "railgun", "uzi"],
		"selectedClass": "wizard",
		"adminLevel": 9,
		"maxHp": null,
		"hasAdminAccess": true
	}`)
	p := Decode(data, quiet())
	if p.Gold != 100 {
		t.Fatalf("malformed gold should default, got %d", p.Gold)
	}
	if p.Kills != 12 || !p.HasAdminAccess {
		t.Fatalf("valid fields lost: %+v", p)
	}
	if !slices.Equal(p.OwnedWeapons, []defs.WeaponID{defs.WeaponPistol, defs.WeaponUzi}) {
		t.Fatalf("unknown weapon not dropped: %v", p.OwnedWeapons)
	}
	if p.SelectedClass != defs.ClassSoldier || p.AdminLevel != 0 || p.MaxHP != 100 {
		t.Fatalf("invalid fields not reset: %+v", p)
	}
}

func TestLoadBrokenFileIsNotFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := NewFileStore(path, quiet()).Load()
	if err != nil {
		t.Fatalf("broken file should not fail load: %v", err)
	}
	if p.Gold != 100 || p.UserID == "" {
		t.Fatalf("expected defaults, got %+v", p)
	}
}

func TestWorldRoundTrip(t *testing.T) {
	w := entity.NewWorld(entity.Options{})
	w.Gold = 999
	w.Wave = 7
	w.BestWave = 4
	w.Achievements[defs.AchRichMan] = true
	w.Achievements[defs.AchFirstBlood] = true
	w.Badges[3] = true
	w.OwnedVehicles = append(w.OwnedVehicles, defs.VehicleTank)

	p := FromWorld(w)
	if p.BestWave != 7 {
		t.Fatalf("BestWave = %d, want current wave 7", p.BestWave)
	}
	if !slices.Equal(p.Achievements, []defs.AchievementID{defs.AchFirstBlood, defs.AchRichMan}) {
		t.Fatalf("achievements = %v", p.Achievements)
	}

	fresh := entity.NewWorld(entity.Options{})
	p.Apply(fresh)
	if fresh.Gold != 999 || !fresh.Achievements[defs.AchRichMan] || !fresh.Badges[3] {
		t.Fatalf("profile not applied")
	}
	if !slices.Contains(fresh.OwnedVehicles, defs.VehicleTank) {
		t.Fatalf("vehicles not applied: %v", fresh.OwnedVehicles)
	}
}
