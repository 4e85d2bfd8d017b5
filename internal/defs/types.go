// internal/defs/types.go
package defs

import "errors"

// Catalog lookup errors. Unknown ids are precondition violations: callers
// must reject the entity instead of proceeding with zero-value stats.
var (
	ErrUnknownWeapon  = errors.New("unknown weapon id")
	ErrUnknownEnemy   = errors.New("unknown enemy type")
	ErrUnknownAlly    = errors.New("unknown ally type")
	ErrUnknownDomain  = errors.New("unknown domain id")
	ErrUnknownPickup  = errors.New("unknown pickup type")
	ErrUnknownBomb    = errors.New("unknown bomb type")
	ErrUnknownVehicle = errors.New("unknown vehicle id")
	ErrUnknownAvatar  = errors.New("unknown avatar id")
	ErrUnknownClass   = errors.New("unknown class id")
	ErrUnknownUpgrade = errors.New("unknown upgrade")
)

// ProgressStats is the read-only view of a session that achievement and
// badge predicates are evaluated against.
type ProgressStats struct {
	Kills            int
	KillStreak       int
	MaxCombo         int
	Wave             int
	BestWave         int
	WavesSurvived    int
	TotalDamageDealt float64
	Allies           int
	WeaponsWithKills int
	OwnedWeapons     int
	Headshots        int
	Criticals        int
	Gold             int
	TotalCoins       int
	BossesDefeated   int
	Wins             int
	HardModeWins     int
	PickupsCollected int
	PlayTimeSec      float64
	NoDamageRun      bool
}
