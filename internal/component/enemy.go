// internal/component/enemy.go
package component

import "go-arena-shooter/internal/defs"

// ID — идентификатор сущности внутри одной сессии.
type ID uint64

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID ID
	Position
	Type    defs.EnemyType
	HP      float64
	MaxHP   float64
	Speed   float64
	Damage  float64
	Reward  int
	Size    float64
	Ally    bool // обращён или призван доменом, не атакует игрока
	Frozen  bool
	Stunned bool
	Hidden  bool // стелс-волна
	IsBoss  bool
	Burning int // тики горения
}

// Hostile reports whether the enemy still fights the player.
func (e *Enemy) Hostile() bool { return !e.Ally }

// ApplyDamage subtracts hp, never below zero.
func (e *Enemy) ApplyDamage(dmg float64) {
	e.HP -= dmg
	if e.HP < 0 {
		e.HP = 0
	}
}
