package timeline

import (
	"fmt"

	"github.com/san-kum/pointmorph/internal/cloud"
	"github.com/san-kum/pointmorph/internal/layout"
)

const (
	DefaultSteps = 120
	// DefaultShare is the part of a cycle spent moving between layouts.
	DefaultShare = 0.8
)

// Timeline is the transition scheduler state. Not safe for concurrent use.
type Timeline struct {
	numSteps int
	share    float64
	rotation Rotation
	easing   Easing

	step  int
	index int
}

// Option configures a Timeline.
type Option func(*Timeline) error

// WithShare sets the transition share of each cycle.
func WithShare(share float64) Option {
	return func(t *Timeline) error {
		if !(share > 0 && share <= 1) {
			return fmt.Errorf("%w: %v", ErrInvalidShare, share)
		}
		t.share = share
		return nil
	}
}

// WithEasing shapes the fraction. nil means linear.
func WithEasing(e Easing) Option {
	return func(t *Timeline) error {
		if e == nil {
			e = Linear
		}
		t.easing = e
		return nil
	}
}

// New returns a timeline at step 0 of the first rotation entry.
func New(numSteps int, rotation Rotation, opts ...Option) (*Timeline, error) {
	if numSteps < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSteps, numSteps)
	}
	if len(rotation) == 0 {
		return nil, ErrEmptyRotation
	}
	for i, k := range rotation {
		if !k.Valid() {
			return nil, fmt.Errorf("rotation[%d]: %w: %d", i, layout.ErrUnknownKind, int(k))
		}
	}

	t := &Timeline{
		numSteps: numSteps,
		share:    DefaultShare,
		rotation: append(Rotation(nil), rotation...),
		easing:   Linear,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Advance moves one step. Completing a cycle moves to the next rotation entry.
func (t *Timeline) Advance() {
	t.step = (t.step + 1) % t.numSteps
	if t.step == 0 {
		t.index = t.rotation.next(t.index)
	}
}

// Fraction is the eased progress through the current transition, in [0, 1].
func (t *Timeline) Fraction() float64 {
	return clamp01(t.easing(t.linear(t.step)))
}

// linear is min(1, step / (numSteps·share)).
func (t *Timeline) linear(step int) float64 {
	return clamp01(float64(step) / (float64(t.numSteps) * t.share))
}

// Pair returns the layouts being interpolated from and to.
func (t *Timeline) Pair() (current, next layout.Kind) {
	return t.rotation[t.index], t.rotation[t.rotation.next(t.index)]
}

// Apply sets every point's position between its anchors for the current pair.
func (t *Timeline) Apply(points []cloud.Point) {
	cur, next := t.Pair()
	f := t.Fraction()
	for i := range points {
		p := &points[i]
		a, b := p.Anchors.At(cur), p.Anchors.At(next)
		p.X = Lerp(a.X, b.X, f)
		p.Y = Lerp(a.Y, b.Y, f)
	}
}

// Tick advances one step and applies the new fraction.
func (t *Timeline) Tick(points []cloud.Point) {
	t.Advance()
	t.Apply(points)
}

// Curve returns the fraction at each step of one cycle.
func (t *Timeline) Curve() []float64 {
	out := make([]float64, t.numSteps)
	for s := range out {
		out[s] = clamp01(t.easing(t.linear(s)))
	}
	return out
}

func (t *Timeline) Step() int          { return t.step }
func (t *Timeline) NumSteps() int      { return t.numSteps }
func (t *Timeline) Index() int         { return t.index }
func (t *Timeline) Share() float64     { return t.share }
func (t *Timeline) Rotation() Rotation { return append(Rotation(nil), t.rotation...) }

// CycleLength is the number of ticks to visit every rotation entry once.
func (t *Timeline) CycleLength() int { return t.numSteps * len(t.rotation) }

// Lerp interpolates linearly from a to b.
func Lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}
