package layout

import (
	"fmt"
	"math"
)

// Vec is a normalized 2D position.
type Vec struct {
	X, Y float64
}

// IsFinite reports whether both components are finite.
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// PositionFunc maps an index in [0, n) to its position.
type PositionFunc func(i int) Vec

// goldenAngle is π(3 − √5), the angular step between sunflower seeds.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Generate returns the position function for kind over n points.
func Generate(k Kind, n int) (PositionFunc, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	if n < MinCount(k) {
		return nil, fmt.Errorf("%w: %s needs at least %d points, got %d", ErrDegenerateSize, k, MinCount(k), n)
	}

	switch k {
	case Phyllotaxis:
		return NewPhyllotaxis(n), nil
	case Grid:
		return NewGrid(n), nil
	case Wave:
		return NewWave(n), nil
	default:
		return NewSpiral(n), nil
	}
}

// NewPhyllotaxis places point i at radius √(i/n) and angle i·goldenAngle.
func NewPhyllotaxis(n int) PositionFunc {
	fn := float64(n)
	return func(i int) Vec {
		r := math.Sqrt(float64(i) / fn)
		sin, cos := math.Sincos(float64(i) * goldenAngle)
		return Vec{r * cos, r * sin}
	}
}

// NewGrid fills rows of round(√n) cells starting at (-0.8, -0.8).
func NewGrid(n int) PositionFunc {
	rowLength := int(math.Round(math.Sqrt(float64(n))))
	cell := 1.6 / float64(rowLength)
	return func(i int) Vec {
		return Vec{
			-0.8 + cell*float64(i%rowLength),
			-0.8 + cell*float64(i/rowLength),
		}
	}
}

// NewWave spreads points evenly over x in [-1, 1] on a three-period sine.
// Requires n >= 2.
func NewWave(n int) PositionFunc {
	xScale := 2 / float64(n-1)
	return func(i int) Vec {
		x := -1 + float64(i)*xScale
		return Vec{x, math.Sin(x*math.Pi*3) * 0.3}
	}
}

// NewSpiral winds five turns out to unit radius. Requires n >= 2.
func NewSpiral(n int) PositionFunc {
	last := float64(n - 1)
	return func(i int) Vec {
		t := math.Sqrt(float64(i) / last)
		sin, cos := math.Sincos(t * math.Pi * 10)
		return Vec{t * cos, t * sin}
	}
}

// Sample evaluates kind at every index in [0, n).
func Sample(k Kind, n int) ([]Vec, error) {
	pos, err := Generate(k, n)
	if err != nil {
		return nil, err
	}
	out := make([]Vec, n)
	for i := range out {
		out[i] = pos(i)
	}
	return out, nil
}
