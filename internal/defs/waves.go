// internal/defs/waves.go
package defs

// SpecialWave описывает модификатор волны. Проверяется одним общим броском:
// побеждает первая запись, для которой roll < Chance.
type SpecialWave struct {
	Key        string
	Name       string
	Chance     float64
	Multiplier float64 // множитель награды за волну; 0 оставляет 1
	EnemyCount int     // 0 не меняет размер волны
	Stealth    bool
}

// SpecialWaves is the default modifier table, in roll order.
var SpecialWaves = []SpecialWave{
	{Key: "goldRush", Name: "GOLD RUSH", Chance: 0.15, Multiplier: 2.5},
	{Key: "berserk", Name: "BERSERK MODE", Chance: 0.1, EnemyCount: 10},
	{Key: "speedBoost", Name: "SPEED BOOST", Chance: 0.12},
	{Key: "doubleXP", Name: "DOUBLE MULTIPLIER", Chance: 0.1, Multiplier: 2},
	{Key: "stealth", Name: "STEALTH WAVE", Chance: 0.08, Stealth: true},
}

// RollSpecialWave returns the first table entry matching roll.
func RollSpecialWave(table []SpecialWave, roll float64) (SpecialWave, bool) {
	for _, sw := range table {
		if roll < sw.Chance {
			return sw, true
		}
	}
	return SpecialWave{}, false
}
