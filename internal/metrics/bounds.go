package metrics

import (
	"math"
	"time"

	"github.com/san-kum/pointmorph/internal/layout"
)

// Bounds is the share of frames in which every position stayed finite and
// inside the square of half-width limit.
type Bounds struct {
	name       string
	limit      float64
	violations int
	samples    int
}

func NewBounds(limit float64) *Bounds {
	return &Bounds{
		name:  "bounds",
		limit: limit,
	}
}

func (b *Bounds) Name() string { return b.name }

func (b *Bounds) Observe(pos []layout.Vec, _ time.Duration) {
	b.samples++
	for _, p := range pos {
		if !p.IsFinite() || math.Abs(p.X) > b.limit || math.Abs(p.Y) > b.limit {
			b.violations++
			break
		}
	}
}

func (b *Bounds) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Bounds) Reset() {
	b.violations = 0
	b.samples = 0
}
