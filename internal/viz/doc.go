// Package viz is the terminal shell for a morphing point cloud.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: frame-driven view that ticks a [morph.Engine]
//   - [Canvas]: Braille pixel canvas with a color per cell
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single step while paused
//	+/-   - Grow/shrink the point count by 25%
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//	Q     - Quit
//
// # Recording
//
// G starts capturing frames; pressing it again (or quitting) writes them to
// the configured GIF path.
package viz
