package intro

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/slides/internal/anim"
	"github.com/jask/slides/internal/scene"
	"github.com/jask/slides/internal/widgets"
)

// HintText invites the click while the gate is closed.
const HintText = "(Click the doors to enter)"

const (
	background = "#0f2027"
	wallHex    = "#2c5364"
	trimHex    = "#4facfe"
	windowHex  = "#add8e6"
	crossHex   = "#e74c3c"
	lightHex   = "#ffffff"
	doorHex    = "#34495e"
	handleHex  = "#ecf0f1"
)

// The scene is drawn in a 600×450 view box.
const viewW, viewH = 600.0, 450.0

const hintFade = 500 * time.Millisecond

// View draws the gate into width×height cells at now.
func (g *Gate) View(width, height int, now time.Time) string {
	c := widgets.NewCanvas(width, height)
	c.Blank = lipgloss.NewStyle().Background(lipgloss.Color(background))
	g.doors = rect{}
	if width <= 0 || height <= 0 {
		return c.String()
	}

	pr := fitProjection(width, height)
	var rise float64
	if g.mounted {
		rise = anim.Tween(0, 1, RiseDuration, anim.EaseOut).Value(now.Sub(g.mountAt))
	}
	zoom := g.value(zoomID, now)
	if g.phase == Opened {
		zoom = 1
	}
	pr.scale = 1 + (ZoomScale-1)*zoom
	alpha := 1 - zoom

	g.doors = pr.cells(box{250, 250, 100, 150})
	if alpha > 0.02 {
		g.drawBuilding(c, pr, rise*alpha, 100*(1-rise))
		drawDoors(c, pr, alpha, g.value(doorsID, now))
	}
	if g.phase == Closed && g.mounted {
		hint := anim.Fade(hintFade, anim.EaseOut).After(HintDelay).Value(now.Sub(g.mountAt))
		if hint > 0.02 {
			y := min(height-1, int(pr.oy+pr.ky*viewH)+1)
			c.CenterText(width/2, y, HintText, paint(lightHex, hint*0.5))
		}
	}
	return c.String()
}

func (g *Gate) value(id string, now time.Time) float64 {
	v, _ := g.timeline.Value(id, now)
	return v
}

// drawBuilding draws the hospital dy units below its resting place.
func (g *Gate) drawBuilding(c *widgets.Canvas, pr projection, alpha, dy float64) {
	if alpha <= 0.02 {
		return
	}
	wall := pr.cells(box{150, 100 + dy, 300, 300})
	fill(c, wall, "█", paint(wallHex, alpha))
	trim := paint(trimHex, alpha)
	fill(c, rect{wall.x, wall.y, wall.w, 1}, "█", trim)
	fill(c, rect{wall.x, wall.y, 1, wall.h}, "█", trim)
	fill(c, rect{wall.x + wall.w - 1, wall.y, 1, wall.h}, "█", trim)

	pane := paint(tint(wallHex, windowHex, 0.3), alpha)
	for _, w := range []box{{180, 130, 40, 40}, {380, 130, 40, 40}, {180, 200, 40, 40}, {380, 200, 40, 40}} {
		w.y += dy
		fill(c, pr.cells(w), "▒", pane)
	}
	cross := paint(crossHex, alpha)
	fill(c, pr.cells(box{285, 40 + dy, 30, 80}), "█", cross)
	fill(c, pr.cells(box{260, 65 + dy, 80, 30}), "█", cross)

	// text does not scale, so it goes once the zoom is under way
	if pr.scale < 1.5 {
		x, y := pr.point(300, 180+dy)
		sign := lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(tint(wallHex, lightHex, alpha))).
			Background(lipgloss.Color(tint(background, wallHex, alpha)))
		c.CenterText(round(x), round(y), g.sign, sign)
	}
}

// drawDoors draws the light behind the doors and the two halves slid travel
// units apart.
func drawDoors(c *widgets.Canvas, pr projection, alpha, travel float64) {
	fill(c, pr.cells(box{250, 250, 100, 150}), "█", paint(lightHex, alpha))
	door := paint(doorHex, alpha)
	fill(c, pr.cells(box{250 - travel, 250, 50, 150}), "▓", door)
	fill(c, pr.cells(box{300 + travel, 250, 50, 150}), "▓", door)
	handle := paint(handleHex, alpha)
	for _, hx := range []float64{290 - travel, 310 + travel} {
		x, y := pr.point(hx, 325)
		c.Set(round(x), round(y), "•", handle)
	}
}

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return r.w > 0 && r.h > 0 && x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// box is a rectangle in view box units.
type box struct{ x, y, w, h float64 }

// projection maps view box units onto cells, scaled about the view box
// center.
type projection struct {
	ox, oy float64
	kx, ky float64
	scale  float64
}

// fitProjection centers the view box, leaving two rows for the hint. Cells
// are about twice as tall as they are wide.
func fitProjection(width, height int) projection {
	rows := float64(max(0, min(height-2, 22)))
	cols := float64(width)
	if cols > rows*8/3 {
		cols = rows * 8 / 3
	} else {
		rows = cols * 3 / 8
	}
	return projection{
		ox:    (float64(width) - cols) / 2,
		oy:    math.Max(0, (float64(height-2)-rows)/2),
		kx:    cols / viewW,
		ky:    rows / viewH,
		scale: 1,
	}
}

func (p projection) point(x, y float64) (float64, float64) {
	sx := viewW/2 + (x-viewW/2)*p.scale
	sy := viewH/2 + (y-viewH/2)*p.scale
	return p.ox + sx*p.kx, p.oy + sy*p.ky
}

func (p projection) cells(b box) rect {
	x0, y0 := p.point(b.x, b.y)
	x1, y1 := p.point(b.x+b.w, b.y+b.h)
	r := rect{x: round(x0), y: round(y0)}
	r.w = max(1, round(x1)-r.x)
	r.h = max(1, round(y1)-r.y)
	return r
}

// fill paints r, clipped to the canvas.
func fill(c *widgets.Canvas, r rect, glyph string, st lipgloss.Style) {
	x0, y0 := max(0, r.x), max(0, r.y)
	x1, y1 := min(c.Width(), r.x+r.w), min(c.Height(), r.y+r.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Set(x, y, glyph, st)
		}
	}
}

func paint(hex string, alpha float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(tint(background, hex, alpha))).
		Background(lipgloss.Color(background))
}

// tint returns the hex colour t of the way from one colour to another.
func tint(from, to string, t float64) string {
	if c, ok := scene.Blend(from, to, t).(lipgloss.Color); ok {
		return string(c)
	}
	return to
}

func round(v float64) int { return int(math.Round(v)) }
