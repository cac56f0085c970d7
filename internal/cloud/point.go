package cloud

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/pointmorph/internal/layout"
)

// Anchors holds a point's target position for each layout kind.
type Anchors struct {
	Phyllotaxis layout.Vec
	Grid        layout.Vec
	Wave        layout.Vec
	Spiral      layout.Vec
}

// At returns the anchor for kind k. Unknown kinds are a programming error.
func (a *Anchors) At(k layout.Kind) layout.Vec {
	switch k {
	case layout.Phyllotaxis:
		return a.Phyllotaxis
	case layout.Grid:
		return a.Grid
	case layout.Wave:
		return a.Wave
	case layout.Spiral:
		return a.Spiral
	}
	panic("cloud: anchor for unknown layout " + k.String())
}

// Set stores v as the anchor for kind k.
func (a *Anchors) Set(k layout.Kind, v layout.Vec) {
	switch k {
	case layout.Phyllotaxis:
		a.Phyllotaxis = v
	case layout.Grid:
		a.Grid = v
	case layout.Wave:
		a.Wave = v
	case layout.Spiral:
		a.Spiral = v
	default:
		panic("cloud: anchor for unknown layout " + k.String())
	}
}

// Valid reports whether every anchor is finite.
func (a *Anchors) Valid() bool {
	return a.Phyllotaxis.IsFinite() && a.Grid.IsFinite() && a.Wave.IsFinite() && a.Spiral.IsFinite()
}

// Point is one member of the cloud. Index is its position in the set.
type Point struct {
	X, Y    float64
	Anchors Anchors
	Color   colorful.Color
}

func (p *Point) Pos() layout.Vec { return layout.Vec{X: p.X, Y: p.Y} }
