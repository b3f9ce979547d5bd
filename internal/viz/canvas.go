package viz

// blank is the empty braille cell. Each cell holds 2x4 dots:
//
//	1 4
//	2 5
//	3 6
//	7 8
const blank rune = 0x2800

var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille raster: Width x Height terminal cells, each two dots
// wide and four tall.
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

// dot locates the cell and bit for a dot, or reports false when it falls
// off the canvas.
func (c *Canvas) dot(x, y int) (*rune, rune, bool) {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return nil, 0, false
	}
	return &c.Grid[y/4][x/2], pixelMap[y%4][x%2], true
}

// Set lights the dot at (x, y) in sub-pixel coordinates. The canvas is
// Width*2 by Height*4 dots.
func (c *Canvas) Set(x, y int) {
	if cell, bit, ok := c.dot(x, y); ok {
		*cell |= bit
	}
}

func (c *Canvas) Unset(x, y int) {
	if cell, bit, ok := c.dot(x, y); ok {
		*cell = blank | (*cell &^ bit)
	}
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	cell, bit, ok := c.dot(x, y)
	return ok && *cell&bit != 0
}

func (c *Canvas) Clear() {
	for _, row := range c.Grid {
		for j := range row {
			row[j] = blank
		}
	}
}

// Dots returns the canvas size in sub-pixels.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

// DrawLine draws a Bresenham line between two dots.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, sx := span(x0, x1)
	dy, sy := span(y0, y1)
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

// span returns the distance from a to b and the unit step towards b.
func span(a, b int) (int, int) {
	if b < a {
		return a - b, -1
	}
	return b - a, 1
}

// FillRect lights every dot in the inclusive rectangle.
func (c *Canvas) FillRect(x0, y0, x1, y1 int) {
	x0, x1 = min(x0, x1), max(x0, x1)
	y0, y1 = min(y0, y1), max(y0, y1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Set(x, y)
		}
	}
}

// Cross marks a struck target: a small X centred on (x, y).
func (c *Canvas) Cross(x, y int) {
	c.DrawLine(x-1, y-1, x+1, y+1)
	c.DrawLine(x-1, y+1, x+1, y-1)
}

// Lines returns one string per row.
func (c *Canvas) Lines() []string {
	out := make([]string, len(c.Grid))
	for i, row := range c.Grid {
		out[i] = string(row)
	}
	return out
}
