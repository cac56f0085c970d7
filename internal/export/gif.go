package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"

	"github.com/san-kum/pointmorph/internal/morph"
	"github.com/san-kum/pointmorph/internal/palette"
)

var background = color.RGBA{R: 10, G: 10, B: 10, A: 255}

// paletteSize excludes the background entry.
const paletteSize = 255

// GIFOptions controls GIF rendering.
type GIFOptions struct {
	Width, Height int
	// Delay per frame in hundredths of a second.
	Delay  int
	Radius int
}

// Recorder accumulates frames into a GIF. Point colors are quantized to
// samples of the color scale by relative index.
type Recorder struct {
	opts    GIFOptions
	palette color.Palette
	frames  []*image.Paletted
}

func NewRecorder(scale palette.Scale, opts GIFOptions) *Recorder {
	if opts.Delay < 1 {
		opts.Delay = 2
	}
	if opts.Radius < 1 {
		opts.Radius = DotRadius(opts.Width, opts.Height)
	}

	pal := make(color.Palette, 0, paletteSize+1)
	pal = append(pal, background)
	for _, c := range scale.Samples(paletteSize) {
		pal = append(pal, c)
	}
	return &Recorder{opts: opts, palette: pal}
}

// Add draws pixels as one frame. Pixels must come from a viewport of the
// recorder's size.
func (r *Recorder) Add(pixels []morph.Pixel) {
	img := image.NewPaletted(image.Rect(0, 0, r.opts.Width, r.opts.Height), r.palette)
	n := len(pixels)
	for _, p := range pixels {
		idx := uint8(1 + int(math.Round(float64(p.Index)/float64(n)*(paletteSize-1))))
		r.dot(img, round(p.X), round(p.Y), idx)
	}
	r.frames = append(r.frames, img)
}

func (r *Recorder) dot(img *image.Paletted, cx, cy int, idx uint8) {
	rad := r.opts.Radius
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			if dx*dx+dy*dy > rad*rad {
				continue
			}
			x, y := cx+dx, cy+dy
			if image.Pt(x, y).In(img.Rect) {
				img.SetColorIndex(x, y, idx)
			}
		}
	}
}

func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) Reset() { r.frames = r.frames[:0] }

// Encode writes the frames as a looping GIF.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("export: no frames recorded")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.opts.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

// WriteGIF ticks the engine frames times, capturing every nth tick.
func WriteGIF(w io.Writer, eng *morph.Engine, frames, every int, opts GIFOptions) error {
	if opts.Width < 1 || opts.Height < 1 {
		return fmt.Errorf("export: invalid gif size %dx%d", opts.Width, opts.Height)
	}
	if every < 1 {
		every = 1
	}

	rec := NewRecorder(eng.Scale(), opts)
	loop := morph.NewLoop(eng, 1)
	var buf []morph.Pixel
	loop.RunFrames(frames, func(frame int) {
		if frame%every != 0 {
			return
		}
		buf = eng.AppendPoints(buf, float64(opts.Width), float64(opts.Height))
		rec.Add(buf)
	})
	return rec.Encode(w)
}
