// component/movement.go
package component

import "math"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// DistTo returns the euclidean distance to another position.
func (p Position) DistTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Velocity — смещение за один тик
type Velocity struct {
	VX, VY float64
}
