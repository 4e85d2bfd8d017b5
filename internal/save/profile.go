// internal/save/profile.go
package save

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"slices"
	"sort"
)

// DailyReward — состояние ежедневного бонуса.
type DailyReward struct {
	Streak    int   `json:"streak"`
	LastClaim int64 `json:"lastClaim"` // unix ms
}

// Profile is the progress that outlives a session.
type Profile struct {
	UserID         string               `json:"userId"`
	Gold           int                  `json:"gold"`
	Kills          int                  `json:"kills"`
	HasAdminAccess bool                 `json:"hasAdminAccess"`
	AdminLevel     int                  `json:"adminLevel"`
	OwnedAvatars   []defs.AvatarID      `json:"ownedAvatars"`
	OwnedWeapons   []defs.WeaponID      `json:"ownedWeapons"`
	OwnedVehicles  []defs.VehicleID     `json:"ownedVehicles"`
	SelectedAvatar defs.AvatarID        `json:"selectedAvatar"`
	SelectedClass  defs.ClassID         `json:"selectedClass"`
	MaxHP          float64              `json:"maxHp"`
	Achievements   []defs.AchievementID `json:"achievements"`
	Badges         []defs.BadgeID       `json:"badges"`
	MaxCombo       int                  `json:"maxCombo"`
	DailyReward    DailyReward          `json:"dailyReward"`

	BestWave         int     `json:"bestWave"`
	TotalKills       int     `json:"totalKills"`
	Wins             int     `json:"wins"`
	HardModeWins     int     `json:"hardModeWins"`
	BossesDefeated   int     `json:"bossesDefeated"`
	PickupsCollected int     `json:"pickupsCollected"`
	PlayTimeMs       float64 `json:"playTime"`
	TotalCoins       int     `json:"totalCoins"`

	Timestamp int64 `json:"timestamp"`
}

// DefaultProfile is what a first launch starts with.
func DefaultProfile() Profile {
	return Profile{
		Gold:           config.PlayerStartGold,
		OwnedAvatars:   []defs.AvatarID{defs.DefaultAvatar},
		OwnedWeapons:   []defs.WeaponID{defs.WeaponPistol},
		SelectedAvatar: defs.DefaultAvatar,
		SelectedClass:  defs.ClassSoldier,
		MaxHP:          config.PlayerStartHP,
	}
}

// FromWorld captures the persistent part of a session.
func FromWorld(w *entity.World) Profile {
	p := Profile{
		Gold:             w.Gold,
		Kills:            w.Kills,
		HasAdminAccess:   w.HasAdminAccess,
		AdminLevel:       w.AdminLevel,
		OwnedAvatars:     slices.Clone(w.OwnedAvatars),
		OwnedWeapons:     slices.Clone(w.OwnedWeapons),
		OwnedVehicles:    slices.Clone(w.OwnedVehicles),
		SelectedAvatar:   w.SelectedAvatar,
		SelectedClass:    w.SelectedClass,
		MaxHP:            w.MaxHP,
		MaxCombo:         w.MaxCombo,
		DailyReward:      DailyReward{Streak: w.DailyStreak, LastClaim: w.DailyLastClaim},
		BestWave:         max(w.BestWave, w.Wave),
		TotalKills:       w.TotalKills,
		Wins:             w.Wins,
		HardModeWins:     w.HardModeWins,
		BossesDefeated:   w.BossesDefeated,
		PickupsCollected: w.PickupsCollected,
		PlayTimeMs:       w.PlayTimeMs,
		TotalCoins:       w.TotalCoins,
	}
	for id, ok := range w.Achievements {
		if ok {
			p.Achievements = append(p.Achievements, id)
		}
	}
	for id, ok := range w.Badges {
		if ok {
			p.Badges = append(p.Badges, id)
		}
	}
	// Порядок карт случаен, а файл должен быть стабильным.
	slices.Sort(p.Achievements)
	sort.Slice(p.Badges, func(i, j int) bool { return p.Badges[i] < p.Badges[j] })
	return p
}

// Apply loads the profile into a fresh world.
func (p Profile) Apply(w *entity.World) {
	w.Gold = p.Gold
	w.Kills = p.Kills
	w.HasAdminAccess = p.HasAdminAccess
	w.AdminLevel = p.AdminLevel
	w.OwnedAvatars = slices.Clone(p.OwnedAvatars)
	w.OwnedWeapons = slices.Clone(p.OwnedWeapons)
	w.OwnedVehicles = slices.Clone(p.OwnedVehicles)
	w.SelectedAvatar = p.SelectedAvatar
	w.SelectedClass = p.SelectedClass
	w.MaxHP = p.MaxHP
	w.HP = p.MaxHP
	w.MaxCombo = p.MaxCombo
	w.DailyStreak = p.DailyReward.Streak
	w.DailyLastClaim = p.DailyReward.LastClaim
	w.BestWave = p.BestWave
	w.TotalKills = p.TotalKills
	w.Wins = p.Wins
	w.HardModeWins = p.HardModeWins
	w.BossesDefeated = p.BossesDefeated
	w.PickupsCollected = p.PickupsCollected
	w.PlayTimeMs = p.PlayTimeMs
	w.TotalCoins = p.TotalCoins
	for _, id := range p.Achievements {
		w.Achievements[id] = true
	}
	for _, id := range p.Badges {
		w.Badges[id] = true
	}
}
