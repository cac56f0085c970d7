package timeline

import (
	"fmt"
	"strings"

	"github.com/san-kum/pointmorph/internal/layout"
)

// Rotation is the cyclic order of layouts the animation moves through.
// Kinds may repeat.
type Rotation []layout.Kind

// DefaultRotation returns to the sunflower between each of the other shapes
// except the last pair.
var DefaultRotation = Rotation{
	layout.Phyllotaxis,
	layout.Spiral,
	layout.Phyllotaxis,
	layout.Grid,
	layout.Wave,
}

// ParseRotation builds a rotation from layout names.
func ParseRotation(names []string) (Rotation, error) {
	if len(names) == 0 {
		return nil, ErrEmptyRotation
	}
	r := make(Rotation, len(names))
	for i, name := range names {
		k, err := layout.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("rotation[%d]: %w", i, err)
		}
		r[i] = k
	}
	return r, nil
}

// Names returns the layout names in order.
func (r Rotation) Names() []string {
	names := make([]string, len(r))
	for i, k := range r {
		names[i] = k.String()
	}
	return names
}

func (r Rotation) String() string {
	return strings.Join(r.Names(), " → ")
}

// next returns the index after i, wrapping to 0.
func (r Rotation) next(i int) int {
	return (i + 1) % len(r)
}
