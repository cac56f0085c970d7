package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/san-kum/pointmorph/internal/layout"
	"github.com/san-kum/pointmorph/internal/morph"
	"github.com/san-kum/pointmorph/internal/viewport"
)

const DefaultBackground = "#0a0a0a"

// SVGOptions controls frame rendering. Zero values pick defaults.
type SVGOptions struct {
	Radius     int
	Background string
	Title      string
}

// DotRadius scales the dot size with the viewport.
func DotRadius(width, height int) int {
	r := int(math.Round(viewport.Size{Width: float64(width), Height: float64(height)}.Scale() * 0.012))
	if r < 1 {
		r = 1
	}
	return r
}

// WriteSVG writes one frame of pixels in a width×height document.
func WriteSVG(w io.Writer, pixels []morph.Pixel, width, height int, opts SVGOptions) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("export: invalid svg size %dx%d", width, height)
	}
	if opts.Radius < 1 {
		opts.Radius = DotRadius(width, height)
	}
	if opts.Background == "" {
		opts.Background = DefaultBackground
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Rect(0, 0, width, height, "fill:"+opts.Background)
	canvas.Gstyle("stroke:none")
	for _, p := range pixels {
		canvas.Circle(round(p.X), round(p.Y), opts.Radius, "fill:"+p.Color.Hex())
	}
	canvas.Gend()
	canvas.End()
	return nil
}

// Trace records the normalized position of point index after every tick of
// one full rotation, starting from the engine's current state.
func Trace(eng *morph.Engine, index int) ([]layout.Vec, error) {
	if index < 0 || index >= eng.Count() {
		return nil, fmt.Errorf("export: point %d out of range [0, %d)", index, eng.Count())
	}

	ticks := eng.Timeline().CycleLength()
	path := make([]layout.Vec, 0, ticks)
	for i := 0; i < ticks; i++ {
		eng.Tick()
		p := eng.Point(index)
		path = append(path, p.Pos())
	}
	return path, nil
}

// WriteTrace draws the path from Trace as a polyline in the point's color.
func WriteTrace(w io.Writer, eng *morph.Engine, index, width, height int) error {
	path, err := Trace(eng, index)
	if err != nil {
		return err
	}
	stroke := eng.Point(index).Color.Hex()
	size := viewport.Size{Width: float64(width), Height: float64(height)}

	xs := make([]int, len(path))
	ys := make([]int, len(path))
	for i, v := range path {
		px, py := size.Project(v)
		xs[i], ys[i] = round(px), round(py)
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(fmt.Sprintf("point %d", index))
	canvas.Rect(0, 0, width, height, "fill:"+DefaultBackground)
	canvas.Polyline(xs, ys, "fill:none;stroke-width:1.5;stroke:"+stroke)
	if len(xs) > 0 {
		canvas.Circle(xs[0], ys[0], DotRadius(width, height), "fill:"+stroke)
	}
	canvas.End()
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}
