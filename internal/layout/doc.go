// Package layout provides the parametric point layouts a cloud morphs between.
//
// Each layout maps a point index to a position in a normalized coordinate
// space (roughly [-1, 1] on both axes):
//
//   - [Phyllotaxis]: golden-angle sunflower disk
//   - [Grid]: square grid spanning [-0.8, 0.8]
//   - [Wave]: sine curve across x in [-1, 1]
//   - [Spiral]: Archimedean-like spiral bounded to unit radius
//
// Generators are pure functions of (kind, n, i). Positions must be
// regenerated whenever n changes.
//
// # Example
//
//	pos, err := layout.Generate(layout.Grid, 100)
//	if err != nil {
//	    return err
//	}
//	v := pos(99) // {0.64, 0.64}
package layout
