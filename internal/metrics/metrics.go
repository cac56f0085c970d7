// Package metrics observes a running animation one frame at a time.
package metrics

import (
	"time"

	"github.com/san-kum/pointmorph/internal/layout"
)

// Metric accumulates a value over observed frames. pos holds the normalized
// positions after the frame and dt the time since the previous one.
type Metric interface {
	Name() string
	Observe(pos []layout.Vec, dt time.Duration)
	Value() float64
	Reset()
}

// Set observes several metrics together.
type Set []Metric

func (s Set) Observe(pos []layout.Vec, dt time.Duration) {
	for _, m := range s {
		m.Observe(pos, dt)
	}
}

func (s Set) Reset() {
	for _, m := range s {
		m.Reset()
	}
}

// Values maps metric names to their current values.
func (s Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, m := range s {
		out[m.Name()] = m.Value()
	}
	return out
}
