// internal/component/pickup.go
package component

import "go-arena-shooter/internal/defs"

// Pickup lies on the ground until touched or until Life runs out.
type Pickup struct {
	ID ID
	Position
	Type defs.PickupType
	Life int
}

// Chest opens once on contact.
type Chest struct {
	ID ID
	Position
	Opened bool
}
