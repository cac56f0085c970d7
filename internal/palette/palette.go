// Package palette assigns perceptual colors to points by relative index.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrUnknownScale = errors.New("palette: unknown color scale")

// Scale is a continuous color scale sampled at evenly spaced stops.
type Scale struct {
	Name  string
	stops []colorful.Color
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Stops sampled from the matplotlib scales at t = 0, 0.1, ..., 1.
var (
	Viridis = Scale{Name: "viridis", stops: []colorful.Color{
		rgb(68, 1, 84), rgb(72, 36, 117), rgb(65, 68, 135), rgb(53, 95, 141),
		rgb(42, 120, 142), rgb(33, 145, 140), rgb(34, 168, 132), rgb(68, 191, 112),
		rgb(122, 209, 81), rgb(189, 223, 38), rgb(253, 231, 37),
	}}

	Plasma = Scale{Name: "plasma", stops: []colorful.Color{
		rgb(13, 8, 135), rgb(65, 4, 157), rgb(106, 0, 168), rgb(143, 13, 164),
		rgb(177, 42, 144), rgb(204, 71, 120), rgb(225, 100, 98), rgb(242, 132, 75),
		rgb(252, 166, 54), rgb(252, 206, 37), rgb(240, 249, 33),
	}}

	Inferno = Scale{Name: "inferno", stops: []colorful.Color{
		rgb(0, 0, 4), rgb(22, 11, 57), rgb(66, 10, 104), rgb(106, 23, 110),
		rgb(147, 38, 103), rgb(188, 55, 84), rgb(221, 81, 58), rgb(243, 120, 25),
		rgb(252, 165, 10), rgb(246, 215, 70), rgb(252, 255, 164),
	}}

	Magma = Scale{Name: "magma", stops: []colorful.Color{
		rgb(0, 0, 4), rgb(20, 14, 54), rgb(59, 15, 112), rgb(100, 26, 128),
		rgb(140, 41, 129), rgb(183, 55, 121), rgb(222, 73, 104), rgb(247, 112, 92),
		rgb(254, 159, 109), rgb(254, 207, 146), rgb(252, 253, 191),
	}}

	scales = map[string]Scale{
		Viridis.Name: Viridis,
		Plasma.Name:  Plasma,
		Inferno.Name: Inferno,
		Magma.Name:   Magma,
	}
)

// Default is the scale used when none is configured.
var Default = Viridis

// Get returns a scale by name.
func Get(name string) (Scale, error) {
	s, ok := scales[strings.ToLower(name)]
	if !ok {
		return Scale{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScale, name, Names())
	}
	return s, nil
}

// Names lists the registered scales.
func Names() []string {
	names := make([]string, 0, len(scales))
	for n := range scales {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// At returns the color at t, clamped to [0, 1]. Neighbouring stops are
// blended in CIE L*a*b*.
func (s Scale) At(t float64) colorful.Color {
	last := len(s.stops) - 1
	if t <= 0 {
		return s.stops[0]
	}
	if t >= 1 {
		return s.stops[last]
	}

	pos := t * float64(last)
	lo := int(pos)
	frac := pos - float64(lo)
	if frac == 0 {
		return s.stops[lo]
	}
	return s.stops[lo].BlendLab(s.stops[lo+1], frac).Clamped()
}

// ColorFor is the color of point index among n points.
func (s Scale) ColorFor(index, n int) colorful.Color {
	if n <= 0 {
		return s.stops[0]
	}
	return s.At(float64(index) / float64(n))
}

// Samples returns k colors evenly spaced over the scale, endpoints included.
func (s Scale) Samples(k int) []color.RGBA {
	out := make([]color.RGBA, k)
	for i := range out {
		t := 0.0
		if k > 1 {
			t = float64(i) / float64(k-1)
		}
		out[i] = ToRGBA(s.At(t))
	}
	return out
}

// ColorFor uses the default scale.
func ColorFor(index, n int) colorful.Color {
	return Default.ColorFor(index, n)
}

// ToRGBA converts to an opaque 8-bit color.
func ToRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
