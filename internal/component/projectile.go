// internal/component/projectile.go
package component

import "go-arena-shooter/internal/defs"

// Bullet представляет летящий снаряд.
type Bullet struct {
	ID ID
	Position
	Velocity
	Damage       float64
	Pierce       int
	Weapon       defs.WeaponID
	Lifetime     float64 // мс, растёт фиксированным шагом
	IsAllyBullet bool
}
