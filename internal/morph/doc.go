// Package morph is the core a UI shell drives once per animation frame.
//
// An [Engine] ties together the point set, the transition timeline and the
// viewport projection behind three calls:
//
//   - [Engine.SetCount]: resize the point set
//   - [Engine.Tick]: advance one frame and move every point
//   - [Engine.Points]: pixel positions and colors for a viewport
//
// A [Loop] owns the repeating frame task. It checks its stop flag before
// every frame, so a shell that calls [Loop.Stop] on teardown never sees
// another tick.
//
// # Example
//
//	eng, _ := morph.New(morph.DefaultOptions())
//	loop := morph.NewLoop(eng, 60)
//	go loop.Run(ctx)
//	defer loop.Stop()
//
// # Thread Safety
//
// Engine methods other than SetCount must be called from one goroutine.
// SetCount publishes a fully built point set, so it may race with Tick.
package morph
