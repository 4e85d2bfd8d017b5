// internal/defs/pickups.go
package defs

import "fmt"

// PickupType identifies a ground pickup effect.
type PickupType string

const (
	PickupHealth PickupType = "health"
	PickupAmmo   PickupType = "ammo"
	PickupShield PickupType = "shield"
	PickupSpeed  PickupType = "speed"
	PickupBomb   PickupType = "bomb"
)

// PickupTypes is the uniform roll order for drops.
var PickupTypes = []PickupType{PickupHealth, PickupAmmo, PickupShield, PickupSpeed, PickupBomb}

// ValidatePickup reports an error for ids outside PickupTypes.
func ValidatePickup(t PickupType) error {
	for _, p := range PickupTypes {
		if p == t {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownPickup, t)
}

// BombType identifies a throwable bomb.
type BombType string

const (
	BombSmoke   BombType = "smoke"
	BombFire    BombType = "fire"
	BombGravity BombType = "gravity"
	BombNuke    BombType = "nuke"
)

// BombDefinition describes a bomb's area effect.
type BombDefinition struct {
	ID          BombType
	Damage      float64
	BurnTicks   int
	Pull        float64 // доля пути к центру поля
	ClearsField bool
	StartStock  int
}

var BombLibrary = map[BombType]BombDefinition{
	BombSmoke:   {ID: BombSmoke, Damage: 50, StartStock: 3},
	BombFire:    {ID: BombFire, Damage: 100, BurnTicks: 60, StartStock: 3},
	BombGravity: {ID: BombGravity, Damage: 200, Pull: 0.8, StartStock: 1},
	BombNuke:    {ID: BombNuke, ClearsField: true},
}

// BombOrder is the hotkey order (Z, X, C, V).
var BombOrder = []BombType{BombSmoke, BombFire, BombGravity, BombNuke}

// Bomb looks up a bomb definition.
func Bomb(t BombType) (BombDefinition, error) {
	def, ok := BombLibrary[t]
	if !ok {
		return BombDefinition{}, fmt.Errorf("%w: %q", ErrUnknownBomb, t)
	}
	return def, nil
}
