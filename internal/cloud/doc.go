// Package cloud owns the live point set of a morphing point cloud.
//
// The package defines the point record and the anchor cache:
//
//   - [Point]: current position, per-layout anchors and a fixed color
//   - [Anchors]: one precomputed target per [layout.Kind]
//   - [Set]: the point set manager, resized with [Set.SetCount]
//
// Anchors are computed once per point count, so per-frame interpolation
// never evaluates layout geometry.
//
// # Thread Safety
//
// [Set.SetCount] builds a complete replacement slice before publishing it,
// so a reader that loaded the previous slice keeps a consistent view.
// Positions inside a slice are written by the animation tick and must only
// be read between ticks.
package cloud
