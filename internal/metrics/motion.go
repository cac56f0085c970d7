package metrics

import (
	"math"
	"time"

	"github.com/san-kum/pointmorph/internal/layout"
)

// Motion is the mean distance a point moved during the last observed frame.
// It is zero while the animation holds on a layout.
type Motion struct {
	name string
	prev []layout.Vec
	last float64
	peak float64
}

func NewMotion() *Motion {
	return &Motion{name: "motion"}
}

func (m *Motion) Name() string { return m.name }

// Observe compares pos to the previous frame. A change in point count
// restarts the comparison.
func (m *Motion) Observe(pos []layout.Vec, _ time.Duration) {
	if len(m.prev) != len(pos) || len(pos) == 0 {
		m.prev = append(m.prev[:0], pos...)
		m.last = 0
		return
	}

	sum := 0.0
	for i, p := range pos {
		sum += math.Hypot(p.X-m.prev[i].X, p.Y-m.prev[i].Y)
	}
	m.last = sum / float64(len(pos))
	m.peak = math.Max(m.peak, m.last)
	copy(m.prev, pos)
}

func (m *Motion) Value() float64 { return m.last }

// Peak is the largest per-frame value seen since Reset.
func (m *Motion) Peak() float64 { return m.peak }

func (m *Motion) Reset() {
	m.prev = m.prev[:0]
	m.last = 0
	m.peak = 0
}
