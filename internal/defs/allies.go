// internal/defs/allies.go
package defs

import "fmt"

// AllyType identifies a hireable companion.
type AllyType string

const (
	AllyMedic  AllyType = "medic"
	AllyGunner AllyType = "gunner"
	AllyTank   AllyType = "tank"
	AllyScout  AllyType = "scout"
)

// AllyDefinition holds catalog data for an ally.
type AllyDefinition struct {
	ID           AllyType
	Name         string
	MaxHP        float64
	BulletDamage float64 // урон выстрела до AI-множителя
	Cost         int
	Heals        bool
}

var AllyLibrary = map[AllyType]AllyDefinition{
	AllyMedic:  {ID: AllyMedic, Name: "Medic", MaxHP: 100, BulletDamage: 8, Cost: 200, Heals: true},
	AllyGunner: {ID: AllyGunner, Name: "Gunner", MaxHP: 150, BulletDamage: 15, Cost: 350},
	AllyTank:   {ID: AllyTank, Name: "Tank", MaxHP: 300, BulletDamage: 10, Cost: 500},
	AllyScout:  {ID: AllyScout, Name: "Scout", MaxHP: 100, BulletDamage: 8, Cost: 250},
}

// Ally looks up an ally definition.
func Ally(t AllyType) (AllyDefinition, error) {
	def, ok := AllyLibrary[t]
	if !ok {
		return AllyDefinition{}, fmt.Errorf("%w: %q", ErrUnknownAlly, t)
	}
	return def, nil
}
