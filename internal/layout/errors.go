package layout

import "errors"

var (
	// ErrDegenerateSize indicates a point count the layout cannot place
	// without producing non-finite coordinates.
	ErrDegenerateSize = errors.New("layout: degenerate layout size")

	// ErrUnknownKind indicates a layout kind outside the enumeration.
	ErrUnknownKind = errors.New("layout: unknown layout kind")
)
