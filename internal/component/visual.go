// internal/component/visual.go
package component

import "image/color"

// Particle — косметическая частица, живёт Life тиков.
type Particle struct {
	Position
	Velocity
	Color color.RGBA
	Life  int
}
