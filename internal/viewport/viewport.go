// Package viewport maps normalized layout coordinates to pixel space.
//
// The unit disk is scaled by half the smaller viewport dimension and
// centered, so every layout fits regardless of aspect ratio. Nothing is
// cached: callers pass the current size on every call.
package viewport

import (
	"math"

	"github.com/san-kum/pointmorph/internal/layout"
)

// Size is a viewport in pixels.
type Size struct {
	Width, Height float64
}

// Scale is half the smaller dimension.
func (s Size) Scale() float64 {
	return math.Min(s.Width, s.Height) / 2
}

// Center is the pixel position of the normalized origin.
func (s Size) Center() (float64, float64) {
	return s.Width / 2, s.Height / 2
}

// Project converts a normalized position to pixels.
func (s Size) Project(v layout.Vec) (float64, float64) {
	return Project(v.X, v.Y, s.Width, s.Height)
}

// Unproject is the inverse of Project. A zero-area viewport maps to the origin.
func (s Size) Unproject(px, py float64) layout.Vec {
	scale := s.Scale()
	if scale == 0 {
		return layout.Vec{}
	}
	cx, cy := s.Center()
	return layout.Vec{X: (px - cx) / scale, Y: (py - cy) / scale}
}

// Project maps (x, y) into a w×h viewport.
func Project(x, y, w, h float64) (float64, float64) {
	scale := math.Min(w, h) / 2
	return w/2 + x*scale, h/2 + y*scale
}
