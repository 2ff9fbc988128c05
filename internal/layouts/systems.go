package layouts

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/slides/internal/anim"
	"github.com/jask/slides/internal/deck"
	"github.com/jask/slides/internal/scene"
	"github.com/jask/slides/internal/widgets"
)

// Orbit rings turn once every outerTurn and innerTurn, in opposite directions.
const (
	outerTurn = 20 * time.Second
	innerTurn = 15 * time.Second
)

func (b *builder) VisitUsage(l *deck.UsageLayout) {
	b.header(b.slide.Title, accent, l.Heading, "")
	left, right := placeBenefits(l.Benefits)
	benefit := func(bf *deck.Benefit, key string, delay float64) scene.Element {
		if bf == nil {
			return scene.Element{}
		}
		return scene.Element{Key: key, Width: 26, Enter: ease(0.8, delay), Draw: func(f scene.Frame) string {
			return card(f, iconText(bf.Icon, bf.Title), bf.Text, accent, f.Width)
		}}
	}
	var hub scene.Element
	if len(l.Modules) > 0 {
		hub = scene.Element{Key: "hub", Enter: ease(0.8, 0), Draw: func(f scene.Frame) string {
			return moduleHub(f, l.Modules)
		}}
	}
	b.spaced(2, benefit(left, "benefit-left", 1.0), hub, benefit(right, "benefit-right", 1.2))
	if e := l.Efficiency; e != nil {
		b.row(scene.Element{Key: "efficiency", Enter: ease(0.8, 1.5), Draw: func(f scene.Frame) string {
			title := iconText("⚡", e.Title) + "  " + e.Value + e.Suffix
			return card(f, title, e.Text, success, min(f.Width, 80))
		}})
	}
}

// placeBenefits puts the benefits marked right on the right and fills the
// left side first otherwise. Extra entries are dropped.
func placeBenefits(bs []deck.Benefit) (left, right *deck.Benefit) {
	for i := range bs {
		bf := &bs[i]
		switch {
		case bf.Position == "right" && right == nil:
			right = bf
		case left == nil && bf.Position != "right":
			left = bf
		case right == nil:
			right = bf
		case left == nil:
			left = bf
		}
	}
	return left, right
}

// moduleHub draws the modules in orbit around the core, with two dashed
// rings turning against each other.
func moduleHub(f scene.Frame, modules []deck.Module) string {
	w, h := max(20, min(f.Width, 64)), 17
	c := canvas(f, w, h)
	ry := float64(h-1)/2 - 1
	rx := math.Min(ry*2.4, float64(w)/2-8)
	turn := func(period time.Duration) float64 {
		return 360 * float64(f.Mounted%period) / float64(period)
	}
	orbitRing(c, rx, ry, turn(outerTurn), "·", f.Fg(muted))
	orbitRing(c, rx*0.45, ry*0.45, -turn(innerTurn), "∙", f.Fg(accent))
	cx, cy := (w-1)/2, (h-1)/2
	c.CenterText(cx, cy, "CORE", f.Fg(accent).Bold(true))

	for i, p := range anim.Orbit(len(modules), 1) {
		m := modules[i]
		sub := f.With(spring(0.2 + 0.1*float64(i)))
		if !sub.Visible() {
			continue
		}
		x := cx + int(math.Round(p.X*rx))
		y := cy + int(math.Round(p.Y*ry))
		c.CenterText(x, y, iconText(m.Icon, m.DisplayName()), sub.Fg(or(m.Color, white)))
	}
	return c.String()
}

// operationalBars is the sample census drawn in the operational report.
var operationalBars = []widgets.ChartPoint{
	{Label: "Mon", Value: 60},
	{Label: "Tue", Value: 80},
	{Label: "Wed", Value: 40},
	{Label: "Thu", Value: 90},
}

// revenueLine is the sample revenue trend, in a 250×100 view box.
var revenueLine = []anim.Point{{X: 0, Y: 80}, {X: 50, Y: 60}, {X: 100, Y: 70}, {X: 150, Y: 30}, {X: 200, Y: 40}, {X: 250, Y: 10}}

func (b *builder) VisitReporting(l *deck.ReportingLayout) {
	b.header(b.slide.Title, "#00b09b", l.Heading, "")
	var operational, financial scene.Element
	if r := l.Operational; r != nil {
		operational = scene.Element{Key: "operational", Enter: ease(0.8, 0.2), Draw: func(f scene.Frame) string {
			chart := widgets.Chart{
				Data:  operationalBars,
				Grown: math.Max(0.01, f.Progress(ease(1, 0.5))),
				Color: f.Color(or(r.Color, accent)),
			}.Render(max(1, f.Width-4), len(operationalBars))
			return card(f, iconText(r.Icon, r.Title), r.Desc+"\n\n"+chart, or(r.Color, accent), f.Width)
		}}
	}
	if r := l.Financial; r != nil {
		financial = scene.Element{Key: "financial", Enter: ease(0.8, 0.4), Draw: func(f scene.Frame) string {
			w, h := max(2, f.Width-4), 5
			c := canvas(f, w, h)
			drawn := f.Progress(anim.Tween(0, 1, 2*time.Second, anim.EaseInOut).After(time.Second))
			trace(c, toCells(revenueLine, 250, 100, w, h), drawn, false, dot, f.Fg(or(r.Color, accent)))
			return card(f, iconText(r.Icon, r.Title), r.Desc+"\n\n"+c.String(), or(r.Color, accent), f.Width)
		}}
	}
	b.spaced(3, operational, financial)
	if s := l.Strategy; s != nil {
		b.row(scene.Element{Key: "strategy", Enter: ease(0.8, 2.0), Draw: func(f scene.Frame) string {
			lines := []string{f.Fg("#FDC830").Bold(true).Render(iconText("💎", s.Title)), ""}
			for i, it := range s.Items {
				sub := f.With(ease(0.5, 2.3+0.3*float64(i)))
				lines = append(lines, shown(sub, sub.Fg(success).Render("✓ ")+fit(sub.Fg(white), it, max(1, min(f.Width, 80)-2))))
			}
			return stack(f, lipgloss.Left, lines...)
		}})
	}
}

func (b *builder) VisitDatabase(l *deck.DatabaseLayout) {
	const teal = "#64ffda"
	b.header(b.slide.Title, teal, l.Heading, "")
	var growth, servers, strategy scene.Element
	if g := l.Challenge; g != nil {
		growth = scene.Element{Key: "growth", Enter: ease(0.8, 0), Draw: func(f scene.Frame) string {
			fill := f.Value(anim.Tween(0.1, 0.85, secs(1.5), anim.EaseOut).After(secs(0.5)))
			return stack(f, lipgloss.Left,
				f.Fg(teal).Bold(true).Render(g.Value),
				f.Fg(white).Render(g.Label),
				widgets.Bar(f.Width, fill, f.Color(teal), scene.Blend(f.Background, white, 0.15*f.Alpha)),
				fit(f.Fg(muted), g.Text, f.Width),
			)
		}}
	}
	servers = scene.Element{Key: "servers", Width: 16, Enter: ease(0.6, 0.8), Draw: func(f scene.Frame) string {
		lines := make([]string, 4)
		for i := range lines {
			sub := f.With(ease(0.4, 1.0+0.2*float64(i)))
			lines[i] = shown(sub, sub.Fg(muted).Render("▕▤▤▤▤▤▏ ")+sub.Fg(success).Render("●"))
		}
		return stack(f, lipgloss.Center, lines...)
	}}
	if s := l.Strategy; s != nil {
		strategy = scene.Element{Key: "strategy", Enter: ease(0.8, 1.8), Draw: func(f scene.Frame) string {
			return card(f, iconText(s.Icon, s.Title), s.Text, teal, f.Width)
		}}
	}
	b.spaced(3, growth, servers, strategy)

	shields := make([]scene.Element, len(l.Integrity))
	for i, bd := range l.Integrity {
		shields[i] = scene.Element{
			Key:   fmt.Sprintf("integrity-%d", i),
			Enter: ease(0.6, 2.2+0.3*float64(i)),
			Draw: func(f scene.Frame) string {
				return card(f, "", iconText(bd.Icon, bd.Title), teal, f.Width)
			},
		}
	}
	b.row(shields...)
	if l.Objective != "" {
		b.row(scene.Element{Key: "objective", Enter: ease(1, 3.0), Draw: func(f scene.Frame) string {
			w := min(f.Width, 96)
			text := f.Fg(teal).Bold(true).Render("OBJECTIVE: ") + fit(f.Fg(white), l.Objective, max(1, w-11))
			n := int(anim.Clamp01(f.P) * 0.9 * float64(w))
			flow := f.Fg(teal).Render(strings.Repeat("━", n) + "▶")
			return stack(f, lipgloss.Left, text, flow)
		}})
	}
}

func (b *builder) VisitSecurity(l *deck.SecurityLayout) {
	b.header(b.slide.Title, "#00ff87", l.Heading, "")
	n := len(l.Measures)
	column := func(key string, from, to int, delay float64) scene.Element {
		if from >= to {
			return scene.Element{}
		}
		return scene.Element{Key: key, Enter: ease(0.6, delay), Draw: func(f scene.Frame) string {
			var blocks []string
			for i := from; i < to; i++ {
				m := l.Measures[i]
				sub := f.With(ease(0.6, delay+0.2*float64(i-from)))
				blocks = append(blocks, shown(sub, card(sub, iconText(m.Icon, m.Title), m.Text, or(m.Color, accent), f.Width)))
			}
			return stack(f, lipgloss.Left, blocks...)
		}}
	}
	vault := scene.Element{
		Key:   "vault",
		Width: 20,
		Enter: anim.Tween(0, 1, secs(0.8), anim.Spring).After(secs(0.8)),
		Draw: func(f scene.Frame) string {
			icon := or(l.CoreIcon, "🔒")
			return widgets.Card{
				Body:   lipgloss.PlaceHorizontal(f.Width-4, lipgloss.Center, icon) + "\n\n" + lipgloss.PlaceHorizontal(f.Width-4, lipgloss.Center, "VAULT"),
				Accent: f.Color("#00ff87"),
				Text:   f.Color(white),
				Fill:   lipgloss.Color(f.Background),
				Thick:  true,
			}.Render(f.Width, 7)
		},
	}
	b.spaced(3, column("measures-left", 0, min(2, n), 0.2), vault, column("measures-right", 2, min(4, n), 0.6))

	var extra []scene.Element
	for i := 4; i < n; i++ {
		m := l.Measures[i]
		extra = append(extra, scene.Element{
			Key:   fmt.Sprintf("measure-%d", i),
			Enter: ease(0.6, 1.0+0.2*float64(i-4)),
			Draw: func(f scene.Frame) string {
				return card(f, iconText(m.Icon, m.Title), m.Text, or(m.Color, accent), f.Width)
			},
		})
	}
	b.row(extra...)
}
