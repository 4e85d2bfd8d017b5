// internal/defs/domains.go
package defs

import (
	"fmt"
	"image/color"
)

// DomainID identifies one of the ten global abilities. Zero means none.
type DomainID int

const (
	DomainNone DomainID = iota
	DomainInfiniteWhite
	DomainBladeStorm
	DomainShadowAbyss
	DomainJackpot
	DomainParasite
	DomainGravityTree
	DomainDeathOcean
	DomainVolcano
	DomainCourt
	DomainParadise
)

// DomainDefinition is the static record of a domain. Behavior lives in the
// system package.
type DomainDefinition struct {
	ID         DomainID
	Name       string
	DurationMs float64
	Color      color.RGBA
	// BypassesImmunity: эффект срабатывает даже под иммунитетом Court of Justice.
	BypassesImmunity bool
}

var DomainLibrary = map[DomainID]DomainDefinition{
	DomainInfiniteWhite: {ID: DomainInfiniteWhite, Name: "Infinite White", DurationMs: 10000, Color: color.RGBA{255, 255, 255, 255}, BypassesImmunity: true},
	DomainBladeStorm:    {ID: DomainBladeStorm, Name: "Blade Storm", DurationMs: 8000, Color: color.RGBA{255, 0, 0, 255}, BypassesImmunity: true},
	DomainShadowAbyss:   {ID: DomainShadowAbyss, Name: "Shadow Abyss", DurationMs: 15000, Color: color.RGBA{26, 0, 26, 255}},
	DomainJackpot:       {ID: DomainJackpot, Name: "Jackpot Death", DurationMs: 40000, Color: color.RGBA{255, 255, 0, 255}, BypassesImmunity: true},
	DomainParasite:      {ID: DomainParasite, Name: "Parasite Transform", DurationMs: 12000, Color: color.RGBA{0, 255, 0, 255}, BypassesImmunity: true},
	DomainGravityTree:   {ID: DomainGravityTree, Name: "Gravity Tree", DurationMs: 10000, Color: color.RGBA{136, 0, 255, 255}},
	DomainDeathOcean:    {ID: DomainDeathOcean, Name: "Death Ocean", DurationMs: 15000, Color: color.RGBA{0, 136, 255, 255}},
	DomainVolcano:       {ID: DomainVolcano, Name: "Volcano Eruption", DurationMs: 12000, Color: color.RGBA{255, 68, 0, 255}},
	DomainCourt:         {ID: DomainCourt, Name: "Court of Justice", DurationMs: 20000, Color: color.RGBA{255, 255, 255, 255}},
	DomainParadise:      {ID: DomainParadise, Name: "Paradise Garden", DurationMs: 15000, Color: color.RGBA{255, 136, 255, 255}},
}

// Domain looks up a domain definition.
func Domain(id DomainID) (DomainDefinition, error) {
	def, ok := DomainLibrary[id]
	if !ok {
		return DomainDefinition{}, fmt.Errorf("%w: %d", ErrUnknownDomain, id)
	}
	return def, nil
}

func (id DomainID) String() string {
	if def, ok := DomainLibrary[id]; ok {
		return def.Name
	}
	return fmt.Sprintf("domain(%d)", int(id))
}
