package viz

import (
	"math"
	"strings"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/track"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
const brailleBase = 0x2800

var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells. Pixel coordinates address the dots,
// so a canvas of Width x Height cells is (Width*2) x (Height*4) pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Pixels returns the canvas size in dots.
func (c *Canvas) Pixels() (w, h int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) cell(x, y int) (row, col int, bit rune, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, 0, false
	}
	return row, col, pixelMap[y%4][x%2], true
}

// Set lights one dot. Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if row, col, bit, ok := c.cell(x, y); ok {
		c.Grid[row][col] |= bit
	}
}

func (c *Canvas) Unset(x, y int) {
	if row, col, bit, ok := c.cell(x, y); ok {
		c.Grid[row][col] &^= bit
	}
}

func (c *Canvas) IsSet(x, y int) bool {
	row, col, bit, ok := c.cell(x, y)
	return ok && c.Grid[row][col]&bit != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Mark draws a small cross centred on (x, y).
func (c *Canvas) Mark(x, y int) {
	c.DrawLine(x-1, y, x+1, y)
	c.DrawLine(x, y-1, x, y+1)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Viewport maps world coordinates onto canvas pixels, y pointing up.
type Viewport struct {
	Min, Max dynamo.Point
	W, H     int
}

// NewViewport fits pts into c with a margin of pad times the extent on
// each side.
func NewViewport(c *Canvas, pts []dynamo.Point, pad float64) Viewport {
	lo, hi := track.Bounds(pts)
	if hi.X-lo.X == 0 {
		lo.X, hi.X = lo.X-0.5, hi.X+0.5
	}
	if hi.Y-lo.Y == 0 {
		lo.Y, hi.Y = lo.Y-0.5, hi.Y+0.5
	}
	dx, dy := (hi.X-lo.X)*pad, (hi.Y-lo.Y)*pad
	w, h := c.Pixels()
	return Viewport{
		Min: dynamo.Point{X: lo.X - dx, Y: lo.Y - dy},
		Max: dynamo.Point{X: hi.X + dx, Y: hi.Y + dy},
		W:   w,
		H:   h,
	}
}

func (v Viewport) Project(p dynamo.Point) (x, y int) {
	fx := (p.X - v.Min.X) / (v.Max.X - v.Min.X) * float64(v.W-1)
	fy := (v.Max.Y - p.Y) / (v.Max.Y - v.Min.Y) * float64(v.H-1)
	return int(math.Round(fx)), int(math.Round(fy))
}

// Polyline joins consecutive points with straight lines.
func (c *Canvas) Polyline(v Viewport, pts []dynamo.Point) {
	for i := 1; i < len(pts); i++ {
		x0, y0 := v.Project(pts[i-1])
		x1, y1 := v.Project(pts[i])
		c.DrawLine(x0, y0, x1, y1)
	}
}
