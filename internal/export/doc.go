// Package export renders point cloud frames to image files.
//
//   - [WriteSVG]: a single frame, one circle per point
//   - [WritePNG]: the same frame rasterized with anti-aliased dots
//   - [Recorder] / [WriteGIF]: an animated GIF of consecutive frames
//   - [Trace] / [WriteTrace]: the path of one point through a full rotation
package export
