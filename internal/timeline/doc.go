// Package timeline drives the layout-to-layout transitions of a point cloud.
//
// A [Timeline] is a two-counter state machine. Each call to [Timeline.Advance]
// moves step forward by one, wrapping at the configured number of steps; each
// wrap moves the rotation index to the next pair of layouts. The
// interpolation fraction rises linearly over the first part of a cycle
// (80% by default) and then holds at 1, so every transition ends with a
// pause on the resting layout.
//
//	tl, _ := timeline.New(120, timeline.DefaultRotation)
//	for frame := range frames {
//	    tl.Tick(set.Points())
//	}
package timeline
