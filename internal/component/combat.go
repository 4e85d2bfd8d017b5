// internal/component/combat.go
package component

// Combo — серия убийств в окне 2 секунды.
type Combo struct {
	Count        int
	Multiplier   float64
	LastKillTime float64
}

// NewCombo returns an empty combo.
func NewCombo() Combo {
	return Combo{Multiplier: 1}
}
