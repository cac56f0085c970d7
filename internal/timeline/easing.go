package timeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// Easing reshapes a linear fraction in [0, 1].
type Easing func(f float64) float64

// Linear is the identity easing.
func Linear(f float64) float64 { return f }

// Only curves that start at 0, end at 1 and never leave [0, 1] are
// registered; elastic, back and bounce overshoot.
var easings = map[string]ease.TweenFunc{
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-quart":     ease.InQuart,
	"out-quart":    ease.OutQuart,
	"in-out-quart": ease.InOutQuart,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-circ":      ease.InCirc,
	"out-circ":     ease.OutCirc,
	"in-out-circ":  ease.InOutCirc,
}

// ParseEasing resolves an easing by name. "" and "linear" are [Linear].
func ParseEasing(name string) (Easing, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "linear" {
		return Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownEasing, name, EasingNames())
	}
	return tween(fn), nil
}

// tween adapts a gween curve over the unit interval.
func tween(fn ease.TweenFunc) Easing {
	return func(f float64) float64 {
		switch {
		case f <= 0:
			return 0
		case f >= 1:
			return 1
		}
		return clamp01(float64(fn(float32(f), 0, 1, 1)))
	}
}

// EasingNames lists every accepted easing name.
func EasingNames() []string {
	names := make([]string, 0, len(easings)+1)
	names = append(names, "linear")
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names[1:])
	return names
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
