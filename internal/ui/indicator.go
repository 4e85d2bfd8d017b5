// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DomainIndicator — круг цвета активного домена; дуга показывает остаток времени.
type DomainIndicator struct {
	X, Y   float32
	Radius float32
}

func NewDomainIndicator(x, y, radius float32) *DomainIndicator {
	return &DomainIndicator{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор. left — доля оставшегося времени в [0, 1].
func (i *DomainIndicator) Draw(screen *ebiten.Image, c color.RGBA, left float64) {
	vector.DrawFilledCircle(screen, i.X, i.Y, i.Radius, color.RGBA{c.R, c.G, c.B, 120}, true)

	left = math.Max(0, math.Min(1, left))
	if left == 0 {
		return
	}
	var p vector.Path
	start := float32(-math.Pi / 2)
	p.Arc(i.X, i.Y, i.Radius+3, start, start+float32(2*math.Pi*left), vector.Clockwise)
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 3})
	for j := range vs {
		vs[j].SrcX, vs[j].SrcY = 1, 1
		vs[j].ColorR = float32(c.R) / 0xff
		vs[j].ColorG = float32(c.G) / 0xff
		vs[j].ColorB = float32(c.B) / 0xff
		vs[j].ColorA = 1
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
