package timeline

import "errors"

var (
	ErrInvalidSteps  = errors.New("timeline: number of steps must be positive")
	ErrEmptyRotation = errors.New("timeline: rotation order is empty")
	ErrInvalidShare  = errors.New("timeline: transition share must be in (0, 1]")
	ErrUnknownEasing = errors.New("timeline: unknown easing")
)
