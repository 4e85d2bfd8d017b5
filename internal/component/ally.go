// internal/component/ally.go
package component

import "go-arena-shooter/internal/defs"

// Ally — нанятый компаньон. Остаётся в списке даже при HP = 0.
type Ally struct {
	ID ID
	Position
	Type     defs.AllyType
	HP       float64
	MaxHP    float64
	LastHeal float64
	LastShot float64
}

// Active reports whether the ally counts toward the live roster.
func (a *Ally) Active() bool { return a.HP > 0 }
