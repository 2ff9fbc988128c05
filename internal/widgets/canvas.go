package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Canvas is a fixed grid of cells for free-form drawing: rings, orbits,
// connector lines. Wide glyphs occupy two cells.
type Canvas struct {
	// Blank styles empty cells.
	Blank lipgloss.Style

	width, height int
	cells         [][]cell
}

type cell struct {
	glyph string
	style lipgloss.Style
	cont  bool // right half of a wide glyph
}

func NewCanvas(width, height int) *Canvas {
	width, height = max(0, width), max(0, height)
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
	}
	return &Canvas{width: width, height: height, cells: cells}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Set draws one glyph at (x, y). Glyphs that do not fit are dropped.
func (c *Canvas) Set(x, y int, glyph string, style lipgloss.Style) int {
	w := runewidth.StringWidth(glyph)
	if w == 0 || y < 0 || y >= c.height || x < 0 || x+w > c.width {
		return w
	}
	c.clear(x, y)
	c.cells[y][x] = cell{glyph: glyph, style: style}
	for i := 1; i < w; i++ {
		c.clear(x+i, y)
		c.cells[y][x+i] = cell{cont: true}
	}
	return w
}

// clear removes a glyph overlapping (x, y), including the other half of a
// wide glyph.
func (c *Canvas) clear(x, y int) {
	row := c.cells[y]
	if row[x].cont {
		for i := x - 1; i >= 0; i-- {
			if !row[i].cont {
				row[i] = cell{}
				break
			}
			row[i] = cell{}
		}
	}
	for i := x + 1; i < c.width && row[i].cont; i++ {
		row[i] = cell{}
	}
	row[x] = cell{}
}

// Text writes s starting at (x, y). Zero-width runes (variation selectors,
// joiners) stay attached to the glyph before them.
func (c *Canvas) Text(x, y int, s string, style lipgloss.Style) {
	for _, glyph := range Glyphs(s) {
		x += c.Set(x, y, glyph, style)
	}
}

// Glyphs splits s into display glyphs.
func Glyphs(s string) []string {
	var out []string
	joined := false
	for _, r := range s {
		if len(out) > 0 && (joined || attaches(r)) {
			out[len(out)-1] += string(r)
		} else {
			out = append(out, string(r))
		}
		joined = r == '\u200d'
	}
	return out
}

// CenterText writes s centered on column cx.
func (c *Canvas) CenterText(cx, y int, s string, style lipgloss.Style) {
	c.Text(cx-runewidth.StringWidth(s)/2, y, s, style)
}

// Line draws a straight line of glyph between two points.
func (c *Canvas) Line(x0, y0, x1, y1 int, glyph string, style lipgloss.Style) {
	for _, p := range LinePath(x0, y0, x1, y1) {
		c.Set(p[0], p[1], glyph, style)
	}
}

// LinePath lists the cells of a straight line from (x0, y0) to (x1, y1),
// endpoints included.
func LinePath(x0, y0, x1, y1 int) [][2]int {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	var out [][2]int
	err := dx + dy
	for {
		out = append(out, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return out
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Block pastes a multi-line string at (x, y).
func (c *Canvas) Block(x, y int, block string, style lipgloss.Style) {
	for i, line := range strings.Split(block, "\n") {
		c.Text(x, y+i, line, style)
	}
}

func (c *Canvas) String() string {
	lines := make([]string, c.height)
	var b strings.Builder
	for y, row := range c.cells {
		b.Reset()
		blanks := 0
		flush := func() {
			if blanks > 0 {
				b.WriteString(c.Blank.Render(strings.Repeat(" ", blanks)))
				blanks = 0
			}
		}
		for _, cl := range row {
			switch {
			case cl.cont:
			case cl.glyph == "":
				blanks++
			default:
				flush()
				b.WriteString(cl.style.Render(cl.glyph))
			}
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// attaches reports runes drawn as part of the preceding glyph.
func attaches(r rune) bool {
	switch {
	case r >= 0xFE00 && r <= 0xFE0F, r >= 0x1F3FB && r <= 0x1F3FF:
		return true
	}
	return runewidth.RuneWidth(r) == 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
