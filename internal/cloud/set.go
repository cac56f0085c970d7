package cloud

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/san-kum/pointmorph/internal/layout"
	"github.com/san-kum/pointmorph/internal/palette"
)

// Set is the point set manager. The zero value is not usable; call NewSet.
type Set struct {
	points atomic.Pointer[[]Point]
	scale  palette.Scale
}

// NewSet returns an empty set colored by scale.
func NewSet(scale palette.Scale) *Set {
	s := &Set{scale: scale}
	empty := []Point{}
	s.points.Store(&empty)
	return s
}

// SetCount resizes the set to n points. An unchanged count is a no-op.
// On error the previous points are left untouched.
func (s *Set) SetCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if n == s.Count() {
		return nil
	}

	points, err := s.build(n)
	if err != nil {
		return fmt.Errorf("set count %d: %w", n, err)
	}
	s.points.Store(&points)
	return nil
}

// build allocates n points with colors and anchors, positioned at the origin.
func (s *Set) build(n int) ([]Point, error) {
	if least := layout.MinCountAll(); n < least {
		return nil, fmt.Errorf("%w: need at least %d points, got %d", layout.ErrDegenerateSize, least, n)
	}

	points := make([]Point, n)
	for i := range points {
		points[i].Color = s.scale.ColorFor(i, n)
	}
	if err := PopulateAnchors(points, n); err != nil {
		return nil, err
	}
	return points, nil
}

// Points returns the live slice. Callers may mutate positions only.
func (s *Set) Points() []Point {
	return *s.points.Load()
}

func (s *Set) Count() int {
	return len(*s.points.Load())
}

func (s *Set) Scale() palette.Scale { return s.scale }

// ParseCount parses a point count typed by a user. Fractions and
// non-positive values are rejected.
func ParseCount(text string) (int, error) {
	text = strings.TrimSpace(text)
	n, err := strconv.Atoi(text)
	if err != nil {
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr == nil && f == math.Trunc(f) && f >= 1 && f <= math.MaxInt32 {
			return int(f), nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, text)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	return n, nil
}
