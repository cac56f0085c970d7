package layout

import (
	"fmt"
	"strings"
)

// Kind selects one of the fixed layouts.
type Kind int

const (
	Phyllotaxis Kind = iota
	Grid
	Wave
	Spiral
)

// NumKinds is the number of layout kinds.
const NumKinds = 4

var kindNames = [NumKinds]string{
	Phyllotaxis: "phyllotaxis",
	Grid:        "grid",
	Wave:        "wave",
	Spiral:      "spiral",
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) Valid() bool { return k >= 0 && k < NumKinds }

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{Phyllotaxis, Grid, Wave, Spiral}
}

// ParseKind resolves a layout name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Names returns the layout names in declaration order.
func Names() []string {
	names := make([]string, NumKinds)
	copy(names, kindNames[:])
	return names
}

// MinCount is the smallest point count the kind's generator accepts.
// Wave and Spiral divide by n-1.
func MinCount(k Kind) int {
	switch k {
	case Wave, Spiral:
		return 2
	default:
		return 1
	}
}

// MinCountAll is the smallest count every kind accepts.
func MinCountAll() int {
	m := 1
	for _, k := range Kinds() {
		if c := MinCount(k); c > m {
			m = c
		}
	}
	return m
}
