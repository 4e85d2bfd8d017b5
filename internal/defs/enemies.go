// internal/defs/enemies.go
package defs

import "fmt"

// EnemyType identifies an enemy archetype.
type EnemyType string

const (
	EnemyBasic   EnemyType = "basic"
	EnemyFast    EnemyType = "fast"
	EnemyTank    EnemyType = "tank"
	EnemyBrute   EnemyType = "brute"
	EnemySpecter EnemyType = "specter"
	EnemyBoss    EnemyType = "boss"

	// Союзные "враги", порождённые доменами.
	EnemyShadow    EnemyType = "shadow"
	EnemyDeathFish EnemyType = "death-fish"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID     EnemyType `json:"id"`
	Name   string    `json:"name"`
	HP     float64   `json:"hp"`
	Speed  float64   `json:"speed"`
	Damage float64   `json:"damage"`
	Reward int       `json:"reward"`
}

// SpawnableEnemyTypes are the types a regular round draws from, uniformly.
var SpawnableEnemyTypes = []EnemyType{EnemyBasic, EnemyFast, EnemyTank, EnemyBrute, EnemySpecter, EnemyBoss}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
var EnemyLibrary = DefaultEnemyLibrary()

// DefaultEnemyLibrary returns a fresh copy of the built-in archetypes.
func DefaultEnemyLibrary() map[EnemyType]EnemyDefinition {
	return map[EnemyType]EnemyDefinition{
		EnemyBasic:     {ID: EnemyBasic, Name: "Grunt", HP: 50, Speed: 1, Damage: 5, Reward: 5},
		EnemyFast:      {ID: EnemyFast, Name: "Runner", HP: 30, Speed: 2, Damage: 3, Reward: 8},
		EnemyTank:      {ID: EnemyTank, Name: "Tank", HP: 150, Speed: 0.5, Damage: 10, Reward: 15},
		EnemyBrute:     {ID: EnemyBrute, Name: "Brute", HP: 200, Speed: 1.5, Damage: 15, Reward: 20},
		EnemySpecter:   {ID: EnemySpecter, Name: "Specter", HP: 80, Speed: 2.5, Damage: 8, Reward: 25},
		EnemyBoss:      {ID: EnemyBoss, Name: "Overlord", HP: 300, Speed: 0.8, Damage: 20, Reward: 50},
		EnemyShadow:    {ID: EnemyShadow, Name: "Shadow", HP: 200, Speed: 3, Damage: 20},
		EnemyDeathFish: {ID: EnemyDeathFish, Name: "Death Fish", HP: 100, Speed: 4, Damage: 30},
	}
}

// Enemy looks up an enemy archetype.
func Enemy(t EnemyType) (EnemyDefinition, error) {
	def, ok := EnemyLibrary[t]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("%w: %q", ErrUnknownEnemy, t)
	}
	return def, nil
}
