package cloud

import (
	"errors"
	"fmt"

	"github.com/san-kum/pointmorph/internal/layout"
)

var (
	// ErrInvalidCount indicates a non-positive or non-integer point count.
	ErrInvalidCount = errors.New("cloud: invalid point count")

	// ErrNonFiniteAnchor indicates a layout produced NaN or Inf.
	ErrNonFiniteAnchor = errors.New("cloud: non-finite anchor")
)

// AnchorError reports the point and layout of a bad anchor.
type AnchorError struct {
	Index int
	Kind  layout.Kind
	Value layout.Vec
}

func (e *AnchorError) Error() string {
	return fmt.Sprintf("%v: point %d layout %s = (%g, %g)", ErrNonFiniteAnchor, e.Index, e.Kind, e.Value.X, e.Value.Y)
}

func (e *AnchorError) Unwrap() error {
	return ErrNonFiniteAnchor
}
