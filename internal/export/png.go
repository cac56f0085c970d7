package export

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/san-kum/pointmorph/internal/morph"
	"github.com/san-kum/pointmorph/internal/palette"
	"golang.org/x/image/vector"
)

// PNGOptions controls raster frame rendering. Zero values pick defaults.
type PNGOptions struct {
	Radius float64
}

// WritePNG rasterizes one frame as anti-aliased dots over the background.
func WritePNG(w io.Writer, pixels []morph.Pixel, width, height int, opts PNGOptions) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("export: invalid png size %dx%d", width, height)
	}
	if opts.Radius <= 0 {
		opts.Radius = float64(DotRadius(width, height))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	d := int(math.Ceil(2*opts.Radius)) + 3
	mask := image.NewAlpha(image.Rect(0, 0, d, d))
	z := vector.NewRasterizer(d, d)
	for _, p := range pixels {
		x0 := int(math.Floor(p.X-opts.Radius)) - 1
		y0 := int(math.Floor(p.Y-opts.Radius)) - 1

		z.Reset(d, d)
		z.DrawOp = draw.Src
		circle(z, float32(p.X-float64(x0)), float32(p.Y-float64(y0)), float32(opts.Radius))
		z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

		src := &image.Uniform{C: palette.ToRGBA(p.Color)}
		draw.DrawMask(img, image.Rect(x0, y0, x0+d, y0+d), src, image.Point{}, mask, image.Point{}, draw.Over)
	}
	return png.Encode(w, img)
}

// circle adds a closed circle of four cubic arcs to z.
func circle(z *vector.Rasterizer, cx, cy, r float32) {
	const k = 0.5522847
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k*r, cx+k*r, cy+r, cx, cy+r)
	z.CubeTo(cx-k*r, cy+r, cx-r, cy+k*r, cx-r, cy)
	z.CubeTo(cx-r, cy-k*r, cx-k*r, cy-r, cx, cy-r)
	z.CubeTo(cx+k*r, cy-r, cx+r, cy-k*r, cx+r, cy)
	z.ClosePath()
}
