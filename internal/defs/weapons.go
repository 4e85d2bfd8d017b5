// internal/defs/weapons.go
package defs

import "fmt"

// WeaponID identifies a weapon or any other bullet owner.
type WeaponID string

const (
	WeaponPistol          WeaponID = "pistol"
	WeaponDualBeretta     WeaponID = "dual-beretta"
	WeaponRevolver        WeaponID = "revolver"
	WeaponUzi             WeaponID = "uzi"
	WeaponAK47            WeaponID = "ak47"
	WeaponShotgun         WeaponID = "shotgun"
	WeaponAutoShotgun     WeaponID = "auto-shotgun"
	WeaponMinigun         WeaponID = "minigun"
	WeaponSniper          WeaponID = "sniper"
	WeaponAntiMaterial    WeaponID = "anti-material"
	WeaponGrenadeLauncher WeaponID = "grenade-launcher"
	WeaponRPG             WeaponID = "rpg"
	WeaponFlamethrower    WeaponID = "flamethrower"
	WeaponToxicSpitter    WeaponID = "toxic-spitter"
	WeaponClusterLauncher WeaponID = "cluster-launcher"
	WeaponLaserRifle      WeaponID = "laser-rifle"
	WeaponPlasmaGun       WeaponID = "plasma-gun"
	WeaponTeslaCannon     WeaponID = "tesla-cannon"
	WeaponGravityGun      WeaponID = "gravity-gun"
	WeaponBlackHoleGun    WeaponID = "black-hole-gun"

	// Владельцы снарядов, которых нет в магазине.
	OwnerAlly       WeaponID = "ally"
	OwnerLaserSlash WeaponID = "laser-slash"
	OwnerMeteor     WeaponID = "meteor"
)

// WeaponCategory groups weapons in the shop.
type WeaponCategory string

const (
	CategoryBallistic WeaponCategory = "ballistic"
	CategoryHeavy     WeaponCategory = "heavy"
	CategoryExplosive WeaponCategory = "explosive"
	CategorySciFi     WeaponCategory = "scifi"
)

// InfiniteAmmo marks a weapon that never runs dry.
const InfiniteAmmo = -1

// WeaponDefinition holds the static stats of a weapon. Velocities are tuned
// per tick, not per second.
type WeaponDefinition struct {
	ID             WeaponID       `json:"id"`
	Name           string         `json:"name"`
	Damage         float64        `json:"damage"`
	FireRateMs     float64        `json:"fire_rate_ms"` // минимальный интервал между выстрелами
	Ammo           int            `json:"ammo"`
	Speed          float64        `json:"speed"`
	Spread         float64        `json:"spread"`
	Pierce         int            `json:"pierce"`
	BulletsPerShot int            `json:"bullets_per_shot,omitempty"`
	SlowPlayer     float64        `json:"slow_player,omitempty"`
	Category       WeaponCategory `json:"category"`
	Price          int            `json:"price"`

	// Cosmetic specials carried in the catalog; the simulation does not model them.
	Explosive  float64 `json:"explosive,omitempty"`
	Homing     bool    `json:"homing,omitempty"`
	Burn       float64 `json:"burn,omitempty"`
	Range      float64 `json:"range,omitempty"`
	Poison     float64 `json:"poison,omitempty"`
	ArmorBreak float64 `json:"armor_break,omitempty"`
	Cluster    int     `json:"cluster,omitempty"`
	Accumulate float64 `json:"accumulate,omitempty"`
	EMP        bool    `json:"emp,omitempty"`
	Chain      int     `json:"chain,omitempty"`
	Pull       float64 `json:"pull,omitempty"`
	Push       float64 `json:"push,omitempty"`
	BlackHole  float64 `json:"black_hole,omitempty"`
}

// Shots returns how many bullets one trigger pull emits.
func (w WeaponDefinition) Shots() int {
	if w.BulletsPerShot <= 0 {
		return 1
	}
	return w.BulletsPerShot
}

// MoveFactor returns the player speed multiplier while carrying the weapon.
func (w WeaponDefinition) MoveFactor() float64 {
	if w.SlowPlayer <= 0 {
		return 1
	}
	return w.SlowPlayer
}

// WeaponOrder is the catalog order used for random rolls and the shop.
var WeaponOrder = []WeaponID{
	WeaponPistol, WeaponDualBeretta, WeaponRevolver, WeaponUzi, WeaponAK47,
	WeaponShotgun, WeaponAutoShotgun, WeaponMinigun, WeaponSniper, WeaponAntiMaterial,
	WeaponGrenadeLauncher, WeaponRPG, WeaponFlamethrower, WeaponToxicSpitter, WeaponClusterLauncher,
	WeaponLaserRifle, WeaponPlasmaGun, WeaponTeslaCannon, WeaponGravityGun, WeaponBlackHoleGun,
}

// WeaponLibrary is the library of all weapon definitions, mapped by their ID.
var WeaponLibrary = map[WeaponID]WeaponDefinition{
	WeaponPistol:      {ID: WeaponPistol, Name: "Pistol", Damage: 10, FireRateMs: 400, Ammo: InfiniteAmmo, Speed: 8, Spread: 0.05, Pierce: 1, Category: CategoryBallistic},
	WeaponDualBeretta: {ID: WeaponDualBeretta, Name: "Dual Berettas", Damage: 8, FireRateMs: 200, Ammo: 200, Speed: 10, Spread: 0.1, Pierce: 1, BulletsPerShot: 2, Category: CategoryBallistic, Price: 300},
	WeaponRevolver:    {ID: WeaponRevolver, Name: "Revolver", Damage: 50, FireRateMs: 1000, Ammo: 36, Speed: 12, Pierce: 2, Category: CategoryBallistic, Price: 400},
	WeaponUzi:         {ID: WeaponUzi, Name: "Uzi", Damage: 6, FireRateMs: 100, Ammo: 500, Speed: 8, Spread: 0.15, Pierce: 1, Category: CategoryBallistic, Price: 500},
	WeaponAK47:        {ID: WeaponAK47, Name: "AK-47", Damage: 25, FireRateMs: 150, Ammo: 300, Speed: 11, Spread: 0.08, Pierce: 2, Category: CategoryBallistic, Price: 800},

	WeaponShotgun:      {ID: WeaponShotgun, Name: "Shotgun", Damage: 15, FireRateMs: 600, Ammo: 50, Speed: 8, Spread: 0.3, Pierce: 1, BulletsPerShot: 8, Category: CategoryHeavy, Price: 700},
	WeaponAutoShotgun:  {ID: WeaponAutoShotgun, Name: "Auto-Shotgun", Damage: 12, FireRateMs: 200, Ammo: 80, Speed: 8, Spread: 0.25, Pierce: 1, BulletsPerShot: 6, Category: CategoryHeavy, Price: 1200},
	WeaponMinigun:      {ID: WeaponMinigun, Name: "Minigun", Damage: 8, FireRateMs: 50, Ammo: 1000, Speed: 12, Spread: 0.12, Pierce: 1, SlowPlayer: 0.5, Category: CategoryHeavy, Price: 1500},
	WeaponSniper:       {ID: WeaponSniper, Name: "Sniper", Damage: 100, FireRateMs: 1500, Ammo: 30, Speed: 20, Pierce: 10, Category: CategoryHeavy, Price: 1500},
	WeaponAntiMaterial: {ID: WeaponAntiMaterial, Name: "Anti-Material Rifle", Damage: 200, FireRateMs: 2000, Ammo: 15, Speed: 25, Pierce: 999, Category: CategoryHeavy, Price: 3000},

	WeaponGrenadeLauncher: {ID: WeaponGrenadeLauncher, Name: "Grenade Launcher", Damage: 80, FireRateMs: 800, Ammo: 30, Speed: 7, Spread: 0.05, Pierce: 1, Explosive: 100, Category: CategoryExplosive, Price: 1800},
	WeaponRPG:             {ID: WeaponRPG, Name: "RPG-7", Damage: 150, FireRateMs: 1500, Ammo: 10, Speed: 9, Pierce: 1, Explosive: 150, Homing: true, Category: CategoryExplosive, Price: 2500},
	WeaponFlamethrower:    {ID: WeaponFlamethrower, Name: "Flamethrower", Damage: 5, FireRateMs: 50, Ammo: 500, Speed: 5, Spread: 0.2, Pierce: 999, Burn: 2, Range: 200, Category: CategoryExplosive, Price: 2000},
	WeaponToxicSpitter:    {ID: WeaponToxicSpitter, Name: "Toxic Spitter", Damage: 3, FireRateMs: 100, Ammo: 300, Speed: 6, Spread: 0.15, Pierce: 999, Poison: 1, ArmorBreak: 0.5, Category: CategoryExplosive, Price: 1600},
	WeaponClusterLauncher: {ID: WeaponClusterLauncher, Name: "Cluster Launcher", Damage: 60, FireRateMs: 1000, Ammo: 20, Speed: 8, Pierce: 1, Cluster: 5, Category: CategoryExplosive, Price: 2800},

	WeaponLaserRifle:   {ID: WeaponLaserRifle, Name: "Laser Rifle", Damage: 2, FireRateMs: 30, Ammo: 999, Speed: 30, Pierce: 999, Accumulate: 1.5, Category: CategorySciFi, Price: 3500},
	WeaponPlasmaGun:    {ID: WeaponPlasmaGun, Name: "Plasma Gun", Damage: 40, FireRateMs: 400, Ammo: 100, Speed: 10, Spread: 0.05, Pierce: 3, EMP: true, Category: CategorySciFi, Price: 4000},
	WeaponTeslaCannon:  {ID: WeaponTeslaCannon, Name: "Tesla Cannon", Damage: 20, FireRateMs: 500, Ammo: 50, Speed: 15, Pierce: 1, Chain: 5, Category: CategorySciFi, Price: 4500},
	WeaponGravityGun:   {ID: WeaponGravityGun, Name: "Gravity Gun", Damage: 30, FireRateMs: 300, Ammo: 80, Speed: 8, Pierce: 1, Pull: 200, Push: 300, Category: CategorySciFi, Price: 5000},
	WeaponBlackHoleGun: {ID: WeaponBlackHoleGun, Name: "Black Hole Gun", Damage: 999, FireRateMs: 3000, Ammo: 3, Speed: 5, Pierce: 1, BlackHole: 300, Category: CategorySciFi, Price: 9000},
}

// Weapon looks up a weapon definition.
func Weapon(id WeaponID) (WeaponDefinition, error) {
	def, ok := WeaponLibrary[id]
	if !ok {
		return WeaponDefinition{}, fmt.Errorf("%w: %q", ErrUnknownWeapon, id)
	}
	return def, nil
}
