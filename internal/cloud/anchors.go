package cloud

import (
	"github.com/san-kum/pointmorph/internal/layout"
)

// anchorChunk is the smallest slice of points worth a goroutine.
const anchorChunk = 4096

// PopulateAnchors fills every point's anchors for a set of n points.
// len(points) is normally n; it may be smaller when filling a prefix.
func PopulateAnchors(points []Point, n int) error {
	var gens [layout.NumKinds]layout.PositionFunc
	for _, k := range layout.Kinds() {
		fn, err := layout.Generate(k, n)
		if err != nil {
			return err
		}
		gens[k] = fn
	}

	ParallelFor(len(points), anchorChunk, func(start, end int) {
		for i := start; i < end; i++ {
			a := &points[i].Anchors
			for k, fn := range gens {
				a.Set(layout.Kind(k), fn(i))
			}
		}
	})

	for i := range points {
		if points[i].Anchors.Valid() {
			continue
		}
		for _, k := range layout.Kinds() {
			if v := points[i].Anchors.At(k); !v.IsFinite() {
				return &AnchorError{Index: i, Kind: k, Value: v}
			}
		}
	}
	return nil
}
