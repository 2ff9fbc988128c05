package layouts

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/slides/internal/anim"
	"github.com/jask/slides/internal/scene"
	"github.com/jask/slides/internal/widgets"
)

// canvas returns a w×h canvas whose empty cells carry the slide background.
func canvas(f scene.Frame, w, h int) *widgets.Canvas {
	c := widgets.NewCanvas(w, h)
	c.Blank = f.Bg()
	return c
}

type arcPaint struct {
	arc   anim.Arc
	drawn float64
	color lipgloss.TerminalColor
}

// ring paints a donut centred on c between inner and outer radius, in rows.
// Cells are about twice as tall as wide, so column distances are halved.
// Earlier arcs win where arcs overlap.
func ring(f scene.Frame, c *widgets.Canvas, outer, inner float64, arcs []arcPaint) {
	cx, cy := float64(c.Width()-1)/2, float64(c.Height()-1)/2
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			dx, dy := (float64(x)-cx)/2, float64(y)-cy
			if d := math.Hypot(dx, dy); d > outer || d < inner {
				continue
			}
			deg := anim.AngleOf(dx, dy)
			for _, a := range arcs {
				if a.arc.Covers(deg, a.drawn) {
					c.Set(x, y, "█", f.Bg().Foreground(a.color))
					break
				}
			}
		}
	}
}

// track is a full faint ring drawn under the segments.
func track(f scene.Frame) arcPaint {
	return arcPaint{arc: anim.Arc{Sweep: 360}, drawn: 1, color: scene.Blend(f.Background, white, 0.12*f.Alpha)}
}

// orbitRing dots a circle of radii (rx, ry) around the canvas centre. The
// dash pattern turns with rotation degrees.
func orbitRing(c *widgets.Canvas, rx, ry, rotation float64, glyph string, st lipgloss.Style) {
	cx, cy := float64(c.Width()-1)/2, float64(c.Height()-1)/2
	for deg := 0.0; deg < 360; deg += 4 {
		if int(math.Floor((deg-rotation)/20))%2 != 0 {
			continue
		}
		rad := (deg - 90) * math.Pi / 180
		c.Set(int(math.Round(cx+rx*math.Cos(rad))), int(math.Round(cy+ry*math.Sin(rad))), glyph, st)
	}
}

// bezier evaluates the cubic curve through p0..p3 at t.
func bezier(p0, p1, p2, p3 anim.Point, t float64) anim.Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return anim.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// sampleBezier returns n+1 points along the curve.
func sampleBezier(p0, p1, p2, p3 anim.Point, n int) []anim.Point {
	out := make([]anim.Point, n+1)
	for i := range out {
		out[i] = bezier(p0, p1, p2, p3, float64(i)/float64(n))
	}
	return out
}

// toCells maps points of a vw×vh view box (y down) onto a w×h canvas.
func toCells(pts []anim.Point, vw, vh float64, w, h int) [][2]int {
	out := make([][2]int, len(pts))
	for i, p := range pts {
		out[i] = [2]int{
			int(math.Round(p.X / vw * float64(w-1))),
			int(math.Round(p.Y / vh * float64(h-1))),
		}
	}
	return out
}

// trace draws the first drawn fraction of the polyline through pts. Dashed
// lines leave every other pair of cells empty. glyph picks the glyph for a
// cell from the step that reached it.
func trace(c *widgets.Canvas, pts [][2]int, drawn float64, dashed bool, glyph func(dx, dy int) string, st lipgloss.Style) {
	var cells [][2]int
	for i := 1; i < len(pts); i++ {
		path := widgets.LinePath(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1])
		if len(cells) > 0 {
			path = path[1:]
		}
		cells = append(cells, path...)
	}
	n := int(anim.Clamp01(drawn)*float64(len(cells)) + 0.5)
	for i := 0; i < n; i++ {
		if dashed && (i/2)%2 == 1 {
			continue
		}
		dx, dy := 1, 0
		if i > 0 {
			dx, dy = cells[i][0]-cells[i-1][0], cells[i][1]-cells[i-1][1]
		}
		c.Set(cells[i][0], cells[i][1], glyph(dx, dy), st)
	}
}

func dot(int, int) string { return "•" }

// stroke picks a box-drawing glyph for the direction of travel.
func stroke(dx, dy int) string {
	switch {
	case dy == 0:
		return "━"
	case dx == 0:
		return "┃"
	case dx*dy > 0:
		return "╲"
	default:
		return "╱"
	}
}
