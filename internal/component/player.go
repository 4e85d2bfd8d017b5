// internal/component/player.go
package component

import "go-arena-shooter/internal/defs"

// Player — управляемый персонаж.
type Player struct {
	Position
	Speed          float64 // базовая скорость ходьбы
	Angle          float64 // направление прицела, радианы
	Size           float64
	Weapon         defs.WeaponID
	Vehicle        defs.VehicleID
	LastDamageTime float64 // мс симуляции, для кулдауна урона
	LastShot       float64
	SpeedBoostEnd  float64 // 0: ускорения нет
	ShieldEnd      float64 // 0: щита нет
}

// PlayerStats — постоянные множители из магазина улучшений.
type PlayerStats struct {
	Damage   float64
	Speed    float64
	FireRate float64
}

// DefaultPlayerStats returns neutral multipliers.
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{Damage: 1, Speed: 1, FireRate: 1}
}
