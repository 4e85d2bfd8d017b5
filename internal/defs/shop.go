// internal/defs/shop.go
package defs

import (
	"fmt"
	"image/color"
)

// VehicleID identifies a mount that replaces the player's walking speed.
type VehicleID string

const (
	VehicleNone       VehicleID = ""
	VehicleSkateboard VehicleID = "skateboard"
	VehicleMotorcycle VehicleID = "motorcycle"
	VehicleMechSuit   VehicleID = "mech-suit"
	VehicleTank       VehicleID = "tank"
	VehicleHelicopter VehicleID = "helicopter"
)

type VehicleDefinition struct {
	ID          VehicleID
	Speed       float64
	HP          int
	Price       int
	WeaponBonus float64
	Flying      bool
	// Недоступен в магазине, только через админ-консоль.
	AdminOnly bool
}

var VehicleLibrary = map[VehicleID]VehicleDefinition{
	VehicleSkateboard: {ID: VehicleSkateboard, Speed: 8, Price: 500},
	VehicleMotorcycle: {ID: VehicleMotorcycle, Speed: 10, HP: 200, Price: 2000},
	VehicleMechSuit:   {ID: VehicleMechSuit, Speed: 3, HP: 1000, Price: 10000, WeaponBonus: 2},
	VehicleTank:       {ID: VehicleTank, Speed: 2, HP: 2000, WeaponBonus: 3, AdminOnly: true},
	VehicleHelicopter: {ID: VehicleHelicopter, Speed: 12, HP: 500, Flying: true, AdminOnly: true},
}

// Vehicle looks up a vehicle definition.
func Vehicle(id VehicleID) (VehicleDefinition, error) {
	def, ok := VehicleLibrary[id]
	if !ok {
		return VehicleDefinition{}, fmt.Errorf("%w: %q", ErrUnknownVehicle, id)
	}
	return def, nil
}

// AvatarID is a cosmetic player shape.
type AvatarID string

type AvatarDefinition struct {
	ID     AvatarID
	Symbol string
	Color  color.RGBA
	Price  int
}

const DefaultAvatar AvatarID = "square"

// AvatarOrder lists avatars in shop order.
var AvatarOrder = []AvatarID{
	"square", "triangle", "circle", "diamond", "star", "cube",
	"hexagon", "pentagon", "oval", "crescent", "heart", "crown",
}

var AvatarLibrary = map[AvatarID]AvatarDefinition{
	"square":   {ID: "square", Symbol: "▪", Color: color.RGBA{0, 255, 0, 255}},
	"triangle": {ID: "triangle", Symbol: "▲", Color: color.RGBA{255, 0, 0, 255}, Price: 200},
	"circle":   {ID: "circle", Symbol: "●", Color: color.RGBA{0, 136, 255, 255}, Price: 200},
	"diamond":  {ID: "diamond", Symbol: "◆", Color: color.RGBA{255, 255, 0, 255}, Price: 400},
	"star":     {ID: "star", Symbol: "★", Color: color.RGBA{255, 0, 255, 255}, Price: 600},
	"cube":     {ID: "cube", Symbol: "▣", Color: color.RGBA{0, 255, 255, 255}, Price: 600},
	"hexagon":  {ID: "hexagon", Symbol: "⬡", Color: color.RGBA{255, 136, 0, 255}, Price: 800},
	"pentagon": {ID: "pentagon", Symbol: "⬠", Color: color.RGBA{255, 0, 136, 255}, Price: 800},
	"oval":     {ID: "oval", Symbol: "⬯", Color: color.RGBA{0, 255, 136, 255}, Price: 1000},
	"crescent": {ID: "crescent", Symbol: "☽", Color: color.RGBA{255, 0, 255, 255}, Price: 1500},
	"heart":    {ID: "heart", Symbol: "♥", Color: color.RGBA{255, 20, 147, 255}, Price: 2000},
	"crown":    {ID: "crown", Symbol: "♔", Color: color.RGBA{255, 221, 0, 255}, Price: 5000},
}

// Avatar looks up an avatar definition.
func Avatar(id AvatarID) (AvatarDefinition, error) {
	def, ok := AvatarLibrary[id]
	if !ok {
		return AvatarDefinition{}, fmt.Errorf("%w: %q", ErrUnknownAvatar, id)
	}
	return def, nil
}

// ClassID is the player class chosen before a run.
type ClassID string

const (
	ClassSoldier  ClassID = "soldier"
	ClassSniper   ClassID = "sniper"
	ClassTank     ClassID = "tank"
	ClassAssassin ClassID = "assassin"
)

type ClassDefinition struct {
	ID          ClassID
	Name        string
	HPBonus     int
	DamageBonus float64
	SpeedBonus  float64
}

var ClassLibrary = map[ClassID]ClassDefinition{
	ClassSoldier:  {ID: ClassSoldier, Name: "Soldier", HPBonus: 50, DamageBonus: 1.2, SpeedBonus: 1},
	ClassSniper:   {ID: ClassSniper, Name: "Sniper", HPBonus: 0, DamageBonus: 1, SpeedBonus: 1},
	ClassTank:     {ID: ClassTank, Name: "Brawler", HPBonus: 200, DamageBonus: 1, SpeedBonus: 0.8},
	ClassAssassin: {ID: ClassAssassin, Name: "Assassin", HPBonus: -30, DamageBonus: 1.5, SpeedBonus: 2},
}

// Class looks up a class definition.
func Class(id ClassID) (ClassDefinition, error) {
	def, ok := ClassLibrary[id]
	if !ok {
		return ClassDefinition{}, fmt.Errorf("%w: %q", ErrUnknownClass, id)
	}
	return def, nil
}

// Upgrade identifies a permanent stat purchase.
type Upgrade string

const (
	UpgradeHP       Upgrade = "hp"
	UpgradeDamage   Upgrade = "damage"
	UpgradeSpeed    Upgrade = "speed"
	UpgradeFireRate Upgrade = "firerate"
)

// UpgradePrices are shop prices for upgrades.
var UpgradePrices = map[Upgrade]int{
	UpgradeHP:       500,
	UpgradeDamage:   800,
	UpgradeSpeed:    600,
	UpgradeFireRate: 1000,
}
