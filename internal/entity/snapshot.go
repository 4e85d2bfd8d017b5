// internal/entity/snapshot.go
package entity

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"
)

// Snapshot — копия всего позиционируемого состояния на один тик.
// Рендер и сетевые наблюдатели читают только её.
type Snapshot struct {
	Now         float64               `msgpack:"now"`
	Phase       component.Phase       `msgpack:"phase"`
	Wave        int                   `msgpack:"wave"`
	Round       int                   `msgpack:"round"`
	WaveWon     bool                  `msgpack:"wave_won"`
	Gold        int                   `msgpack:"gold"`
	Kills       int                   `msgpack:"kills"`
	HP          float64               `msgpack:"hp"`
	MaxHP       float64               `msgpack:"max_hp"`
	Combo       int                   `msgpack:"combo"`
	Multiplier  float64               `msgpack:"mult"`
	Domain      defs.DomainID         `msgpack:"domain"`
	DomainTimer float64               `msgpack:"domain_timer"`
	Invincible  bool                  `msgpack:"invincible"`
	Player      component.Player      `msgpack:"player"`
	Avatar      defs.AvatarID         `msgpack:"avatar"`
	Allies      []component.Ally      `msgpack:"allies"`
	Enemies     []component.Enemy     `msgpack:"enemies"`
	Bullets     []component.Bullet    `msgpack:"bullets"`
	Particles   []component.Particle  `msgpack:"particles"`
	Pickups     []component.Pickup    `msgpack:"pickups"`
	Chests      []component.Chest     `msgpack:"chests"`
	Gravity     *component.Position   `msgpack:"gravity,omitempty"`
	Bombs       map[defs.BombType]int `msgpack:"bombs"`
}

// Snapshot copies the world for read-only consumers.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Now:         w.Now,
		Phase:       w.Phase,
		Wave:        w.Wave,
		Round:       w.RoundInWave,
		WaveWon:     w.WaveWon,
		Gold:        w.Gold,
		Kills:       w.Kills,
		HP:          w.HP,
		MaxHP:       w.MaxHP,
		Combo:       w.Combo.Count,
		Multiplier:  w.Combo.Multiplier,
		Domain:      w.Domain.Active,
		DomainTimer: w.Domain.Timer,
		Invincible:  w.Invincible || w.GodMode,
		Player:      w.Player,
		Avatar:      w.SelectedAvatar,
		Allies:      copyAll(w.Allies),
		Enemies:     copyAll(w.Enemies),
		Bullets:     copyAll(w.Bullets),
		Particles:   copyAll(w.Particles),
		Pickups:     copyAll(w.Pickups),
		Chests:      copyAll(w.Chests),
		Bombs:       make(map[defs.BombType]int, len(w.Bombs)),
	}
	if gp := w.Domain.GravityPoint; gp != nil {
		p := gp.Position
		s.Gravity = &p
	}
	for k, v := range w.Bombs {
		s.Bombs[k] = v
	}
	return s
}

func copyAll[T any](src []*T) []T {
	out := make([]T, len(src))
	for i, p := range src {
		out[i] = *p
	}
	return out
}
