package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/pointmorph/internal/morph"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of braille cells. Each cell keeps the color of the last
// dot drawn into it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]colorful.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid and clears it. Sizes below 1 are clamped.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Colors = make([][]colorful.Color, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]colorful.Color, w)
	}
	c.Clear()
}

// SubSize is the canvas size in dots.
func (c *Canvas) SubSize() (int, int) {
	return c.Width * 2, c.Height * 4
}

// Set lights the dot at (x, y) in dot coordinates and reports whether it
// was inside the canvas.
func (c *Canvas) Set(x, y int, col colorful.Color) bool {
	if x < 0 || y < 0 {
		return false
	}

	col0 := x / 2
	row := y / 4
	if col0 >= c.Width || row >= c.Height {
		return false
	}

	c.Grid[row][col0] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col0] = col
	return true
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// Plot draws pixels projected onto the dot grid, rounding to the nearest
// dot. It returns the number of points that landed inside.
func (c *Canvas) Plot(pixels []morph.Pixel) int {
	drawn := 0
	for _, p := range pixels {
		if c.Set(int(math.Round(p.X)), int(math.Round(p.Y)), p.Color) {
			drawn++
		}
	}
	return drawn
}

// String renders the canvas without color.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render renders the canvas with each cell in its dot color. Runs of equal
// color share one style.
func (c *Canvas) Render() string {
	var b strings.Builder
	for r, row := range c.Grid {
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && sameRun(row, c.Colors[r], start, i) {
				continue
			}
			b.WriteString(c.span(r, start, i))
			start = i
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// sameRun reports whether cell i continues the run beginning at start.
func sameRun(row []rune, colors []colorful.Color, start, i int) bool {
	if row[i] == blank && row[start] == blank {
		return true
	}
	return row[i] != blank && row[start] != blank && colors[i] == colors[start]
}

func (c *Canvas) span(r, start, end int) string {
	text := string(c.Grid[r][start:end])
	if c.Grid[r][start] == blank {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Colors[r][start].Hex())).Render(text)
}
