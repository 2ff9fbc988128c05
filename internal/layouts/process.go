package layouts

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/slides/internal/anim"
	"github.com/jask/slides/internal/deck"
	"github.com/jask/slides/internal/scene"
)

func (b *builder) VisitSelection(l *deck.SelectionLayout) {
	b.header(b.slide.Title, "#f72585", l.Heading, "")
	var steps, scoring scene.Element
	if len(l.Steps) > 0 {
		steps = scene.Element{Key: "steps", Enter: spring(0), Draw: func(f scene.Frame) string {
			var blocks []string
			for i, s := range l.Steps {
				sub := f.With(spring(0.4 * float64(i)))
				blocks = append(blocks, shown(sub, card(sub, strings.TrimSpace(s.ID+"  "+s.Title), s.Desc, accent, f.Width)))
			}
			return stack(f, lipgloss.Left, blocks...)
		}}
	}
	if sc := l.Scoring; sc != nil && len(sc.Data) > 0 {
		scoring = scene.Element{Key: "scoring", Width: 34, Enter: ease(0.6, 0.6), Draw: func(f scene.Frame) string {
			return scoringRing(f, sc)
		}}
	}
	b.spaced(4, steps, scoring)
	if l.Committee != "" {
		b.row(scene.Element{Key: "committee", Enter: ease(0.8, 2.5), Draw: func(f scene.Frame) string {
			return card(f, "", "👥 "+l.Committee, "#4cc9f0", min(f.Width, 96))
		}})
	}
}

// scoringRing draws the weighted segments as a ring, each sweeping in after
// the previous one, with a legend below.
func scoringRing(f scene.Frame, sc *deck.Scoring) string {
	values := make([]float64, len(sc.Data))
	for i, s := range sc.Data {
		values[i] = s.Value
	}
	arcs := anim.Ring(values)
	paints := make([]arcPaint, 0, len(arcs)+1)
	for i, a := range arcs {
		drawn := f.Progress(anim.Tween(0, 1, time.Second, anim.EaseOut).After(secs(1 + 0.3*float64(i))))
		paints = append(paints, arcPaint{arc: a, drawn: drawn, color: f.Color(or(sc.Data[i].Color, accent))})
	}
	paints = append(paints, track(f))

	c := canvas(f, 27, 13)
	ring(f, c, 6, 4, paints)
	c.CenterText(c.Width()/2, c.Height()/2, "100%", f.Fg(white).Bold(true))

	lines := []string{fit(f.Fg(white).Bold(true), sc.Title, f.Width), c.String()}
	for i, s := range sc.Data {
		sub := f.With(ease(0.5, 1.5+0.2*float64(i)))
		entry := sub.Fg(or(s.Color, accent)).Render("■") + sub.Fg(white).Render(fmt.Sprintf(" %s %g%%", s.Label, s.Value))
		lines = append(lines, shown(sub, entry))
	}
	return stack(f, lipgloss.Center, lines...)
}

func (b *builder) VisitRoadmap(l *deck.RoadmapLayout) {
	b.header(b.slide.Title, "#ff9f43", l.Heading, "")
	if l.Strategy != "" {
		b.row(scene.Element{Key: "strategy", Enter: ease(0.8, 0.2), Draw: func(f scene.Frame) string {
			return card(f, "", "🛡️ "+l.Strategy, danger, min(f.Width, 90))
		}})
	}
	n := len(l.Phases)
	if n == 0 {
		return
	}
	b.row(scene.Element{
		Key:   "timeline",
		Enter: anim.Tween(0, 1, secs(2.5), anim.EaseInOut),
		Draw: func(f scene.Frame) string {
			c := canvas(f, f.Width, 2)
			for x := 0; x < int(anim.Clamp01(f.P)*float64(f.Width)); x++ {
				c.Set(x, 0, "━", f.Fg(muted))
			}
			for i, x := range columnCenters(f.Width, n, 2) {
				hex := or(l.Phases[i].Color, accent)
				if d := f.With(spring(0.5 + 0.6*float64(i))); d.Visible() {
					c.Set(x, 0, "●", d.Fg(hex))
				}
				if d := f.With(ease(0.3, 0.7+0.6*float64(i))); d.Visible() {
					c.Set(x, 1, "│", d.Fg(hex))
				}
			}
			return c.String()
		},
	})
	els := make([]scene.Element, n)
	for i, p := range l.Phases {
		els[i] = scene.Element{
			Key:   fmt.Sprintf("phase-%d", i),
			Enter: spring(0.8 + 0.6*float64(i)),
			Draw: func(f scene.Frame) string {
				title := strings.TrimSpace(p.Step + " " + iconText(p.Icon, p.Title))
				return card(f, title, p.Text, or(p.Color, accent), f.Width)
			},
		}
	}
	b.row(els...)
}

const tapHint = "Tap to Reveal 👆"

// VisitChallenges lays each challenge on its own row. Clicking a row toggles
// the solution beside it.
func (b *builder) VisitChallenges(l *deck.ChallengesLayout) {
	b.header(b.slide.Title, danger, l.Heading, "")
	for i, p := range l.Pairs {
		toggle := func(e *scene.Ephemeral) { e.Reveal.Toggle(i) }
		challenge := scene.Element{
			Key:     fmt.Sprintf("challenge-%d", i),
			Enter:   ease(0.5, 0.2*float64(i)),
			OnClick: toggle,
		}
		if !b.eph.Reveal.Revealed(i) {
			challenge.Draw = func(f scene.Frame) string {
				return card(f, iconText(p.Challenge.Icon, p.Challenge.Title), tapHint, danger, f.Width)
			}
			b.row(challenge)
			continue
		}
		challenge.Width = 40
		challenge.Draw = func(f scene.Frame) string {
			return card(f, iconText(p.Challenge.Icon, p.Challenge.Title), "", danger, f.Width)
		}
		solution := scene.Element{
			Key:     fmt.Sprintf("solution-%d", i),
			Width:   60,
			Enter:   anim.Tween(0, 1, secs(0.6), anim.Spring),
			OnClick: toggle,
			Draw: func(f scene.Frame) string {
				return card(f, "SOLUTION APPLIED", iconText(p.Solution.Icon, p.Solution.Text), success, f.Width)
			},
		}
		b.row(challenge, solution)
	}
}

func (b *builder) VisitTraining(l *deck.TrainingLayout) {
	b.header(b.slide.Title, "#f1c40f", l.Heading, "")
	roles := make([]scene.Element, len(l.Roles))
	for i, r := range l.Roles {
		roles[i] = scene.Element{
			Key:   fmt.Sprintf("role-%d", i),
			Enter: spring(0.2 + 0.2*float64(i)),
			Draw: func(f scene.Frame) string {
				return card(f, iconText(r.Icon, r.Title), "", accent, f.Width)
			},
		}
	}
	b.row(roles...)

	method := func(i int, delay float64) scene.Element {
		if i >= len(l.Methods) {
			return scene.Element{}
		}
		m := l.Methods[i]
		return scene.Element{Key: fmt.Sprintf("method-%d", i), Enter: ease(0.8, delay), Draw: func(f scene.Frame) string {
			return card(f, iconText(m.Icon, m.Title), m.Text, or(m.Color, accent), f.Width)
		}}
	}
	var volume scene.Element
	if l.Volume != "" {
		volume = scene.Element{Key: "volume", Width: 30, Enter: ease(0.6, 0.8), Draw: func(f scene.Frame) string {
			return volumeRing(f, l.Volume, l.VolumeLabel)
		}}
	}
	b.spaced(3, method(0, 0.8), volume, method(1, 1.0))
	var more []scene.Element
	for i := 2; i < len(l.Methods); i++ {
		more = append(more, method(i, 1.2+0.2*float64(i-2)))
	}
	b.row(more...)
	if l.Support != "" {
		b.row(scene.Element{Key: "support", Enter: ease(0.8, 1.5), Draw: func(f scene.Frame) string {
			return card(f, "", "🛠️ SUPPORT: "+l.Support, "#e67e22", min(f.Width, 100))
		}})
	}
}

// volumeRing is a three-quarter ring around the training volume.
func volumeRing(f scene.Frame, volume, caption string) string {
	drawn := f.Progress(anim.Tween(0, 1, 2*time.Second, anim.EaseOut).After(time.Second))
	c := canvas(f, 25, 11)
	ring(f, c, 5, 3.6, []arcPaint{
		{arc: anim.Arc{Sweep: 270}, drawn: drawn, color: f.Color(accent)},
		track(f),
	})
	if num := f.With(spring(1.2)); num.Visible() {
		c.CenterText(c.Width()/2, c.Height()/2-1, volume, num.Fg(white).Bold(true))
		c.CenterText(c.Width()/2, c.Height()/2+1, "HOURS", num.Fg(muted))
	}
	lines := []string{c.String()}
	if caption != "" {
		lines = append(lines, fit(f.Fg(muted).Align(lipgloss.Center), caption, f.Width))
	}
	return stack(f, lipgloss.Center, lines...)
}

var (
	riseCurve = [4]anim.Point{{X: 0, Y: 200}, {X: 150, Y: 200}, {X: 250, Y: 50}, {X: 500, Y: 20}}
	fallCurve = [4]anim.Point{{X: 0, Y: 50}, {X: 150, Y: 50}, {X: 350, Y: 180}, {X: 500, Y: 220}}
)

func (b *builder) VisitAcceptance(l *deck.AcceptanceLayout) {
	b.header(b.slide.Title, "#a8ffc3", l.Heading, "")
	var metrics, drivers scene.Element
	if len(l.Metrics) > 0 {
		metrics = scene.Element{Key: "metrics", Width: 26, Enter: ease(0.6, 0), Draw: func(f scene.Frame) string {
			return badgeList(f, "Input Metrics", l.Metrics, func(i int) anim.Spec { return ease(0.5, 0.3*float64(i)) })
		}}
	}
	if len(l.Drivers) > 0 {
		drivers = scene.Element{Key: "drivers", Width: 28, Enter: ease(0.6, 1.5), Draw: func(f scene.Frame) string {
			return badgeList(f, "Drivers of Acceptance", l.Drivers, func(i int) anim.Spec { return ease(0.5, 1.5+0.3*float64(i)) })
		}}
	}
	graph := scene.Element{Key: "trends", Enter: ease(0.6, 0.3), Draw: func(f scene.Frame) string {
		return trendGraph(f, l.Trends)
	}}
	b.spaced(3, metrics, graph, drivers)
	if l.Outcome != "" {
		b.row(scene.Element{Key: "outcome", Enter: ease(0.8, 3.2), Draw: func(f scene.Frame) string {
			return card(f, "KEY OUTCOME", l.Outcome, "#a8ffc3", min(f.Width, 100))
		}})
	}
}

// trendGraph draws usage rising and errors falling, then marks the peak.
func trendGraph(f scene.Frame, t *deck.Trends) string {
	w, h := max(8, min(f.Width, 56)), 10
	c := canvas(f, w, h)
	fall := f.Progress(anim.Tween(0, 1, secs(2.5), anim.EaseInOut).After(secs(0.8)))
	rise := f.Progress(anim.Tween(0, 1, secs(2.5), anim.EaseInOut).After(secs(0.5)))
	trace(c, toCells(sampleBezier(fallCurve[0], fallCurve[1], fallCurve[2], fallCurve[3], 48), 500, 250, w, h), fall, true, dot, f.Fg("#ff9f43"))
	pts := toCells(sampleBezier(riseCurve[0], riseCurve[1], riseCurve[2], riseCurve[3], 48), 500, 250, w, h)
	trace(c, pts, rise, false, dot, f.Fg(success))
	if star := f.With(spring(3.0)); star.Visible() {
		end := pts[len(pts)-1]
		c.Set(end[0]-1, end[1], "⭐", star.Bg())
	}
	lines := []string{c.String()}
	if t != nil {
		lines = append(lines, "", f.Fg(success).Bold(true).Render(t.Heading), fit(f.Fg(white), t.Text, w))
	}
	return stack(f, lipgloss.Center, lines...)
}

// badgeList is a titled column of icon badges entering one by one.
func badgeList(f scene.Frame, title string, badges []deck.Badge, item func(int) anim.Spec) string {
	lines := []string{f.Fg(muted).Bold(true).Render(strings.ToUpper(title)), ""}
	for i, bd := range badges {
		sub := f.With(item(i))
		lines = append(lines, shown(sub, card(sub, "", iconText(bd.Icon, bd.Title), accent, f.Width)))
	}
	return stack(f, lipgloss.Left, lines...)
}
