package morph

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/pointmorph/internal/cloud"
	"github.com/san-kum/pointmorph/internal/layout"
	"github.com/san-kum/pointmorph/internal/palette"
	"github.com/san-kum/pointmorph/internal/timeline"
	"github.com/san-kum/pointmorph/internal/viewport"
)

// Options configures an Engine.
type Options struct {
	Count    int
	NumSteps int
	Share    float64
	Rotation timeline.Rotation
	Easing   timeline.Easing
	Scale    palette.Scale
}

func DefaultOptions() Options {
	return Options{
		Count:    1000,
		NumSteps: timeline.DefaultSteps,
		Share:    timeline.DefaultShare,
		Rotation: timeline.DefaultRotation,
		Easing:   timeline.Linear,
		Scale:    palette.Default,
	}
}

// Pixel is a point projected into a viewport.
type Pixel struct {
	Index int
	X, Y  float64
	Color colorful.Color
}

// Status is a snapshot of the timeline for display.
type Status struct {
	Count    int
	Step     int
	NumSteps int
	Index    int
	Current  layout.Kind
	Next     layout.Kind
	Fraction float64
}

type Engine struct {
	set *cloud.Set
	tl  *timeline.Timeline
}

// New builds the point set and timeline. Positions start at the origin
// until the first Tick.
func New(opts Options) (*Engine, error) {
	if opts.Scale.Name == "" {
		opts.Scale = palette.Default
	}

	tl, err := timeline.New(opts.NumSteps, opts.Rotation,
		timeline.WithShare(opts.Share),
		timeline.WithEasing(opts.Easing),
	)
	if err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}

	set := cloud.NewSet(opts.Scale)
	if err := set.SetCount(opts.Count); err != nil {
		return nil, err
	}

	return &Engine{set: set, tl: tl}, nil
}

// SetCount resizes the point set; see [cloud.Set.SetCount].
func (e *Engine) SetCount(n int) error {
	return e.set.SetCount(n)
}

// Tick advances the timeline one step and updates every position.
func (e *Engine) Tick() {
	e.tl.Tick(e.set.Points())
}

// Points projects the current positions into a w×h viewport.
func (e *Engine) Points(w, h float64) []Pixel {
	return e.AppendPoints(nil, w, h)
}

// AppendPoints is Points reusing dst's storage.
func (e *Engine) AppendPoints(dst []Pixel, w, h float64) []Pixel {
	pts := e.set.Points()
	dst = dst[:0]
	for i := range pts {
		px, py := viewport.Project(pts[i].X, pts[i].Y, w, h)
		dst = append(dst, Pixel{Index: i, X: px, Y: py, Color: pts[i].Color})
	}
	return dst
}

// Positions returns the normalized positions in index order.
func (e *Engine) Positions() []layout.Vec {
	pts := e.set.Points()
	out := make([]layout.Vec, len(pts))
	for i := range pts {
		out[i] = pts[i].Pos()
	}
	return out
}

// Point returns a copy of point i.
func (e *Engine) Point(i int) cloud.Point {
	return e.set.Points()[i]
}

func (e *Engine) Status() Status {
	cur, next := e.tl.Pair()
	return Status{
		Count:    e.set.Count(),
		Step:     e.tl.Step(),
		NumSteps: e.tl.NumSteps(),
		Index:    e.tl.Index(),
		Current:  cur,
		Next:     next,
		Fraction: e.tl.Fraction(),
	}
}

func (e *Engine) Count() int                  { return e.set.Count() }
func (e *Engine) Scale() palette.Scale        { return e.set.Scale() }
func (e *Engine) Timeline() *timeline.Timeline { return e.tl }
