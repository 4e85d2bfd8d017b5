// internal/component/domain.go
package component

import "go-arena-shooter/internal/defs"

// GravityPoint притягивает всех врагов с постоянной силой.
type GravityPoint struct {
	Position
	Strength float64
}

// DomainState — глобальное состояние способностей. Активен не более чем
// один домен.
type DomainState struct {
	Active           defs.DomainID
	Timer            float64 // оставшиеся мс
	JackpotCarryover float64 // секунды
	JackpotKills     int     // убийства на момент старта Jackpot
	MeteorAccum      float64

	GravityPoint *GravityPoint
	ZeroGravity  bool
	DomainImmune bool
	EnemyNoCast  bool
	HealOnKill   float64
}

// IsActive reports whether any domain is running.
func (d *DomainState) IsActive() bool { return d.Active != defs.DomainNone }
