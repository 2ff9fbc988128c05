package layouts

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/slides/internal/anim"
	"github.com/jask/slides/internal/deck"
	"github.com/jask/slides/internal/scene"
	"github.com/jask/slides/internal/widgets"
)

const tagline = "PROJECT CASE STUDY"

func (b *builder) VisitTitle(l *deck.TitleLayout) {
	title := b.slide.Title
	b.row(scene.Element{Key: "tagline", Enter: textUp(0), Draw: func(f scene.Frame) string {
		return f.Fg(accent).Bold(true).Render(letterSpaced(tagline))
	}})
	if title != "" {
		b.row(scene.Element{Key: "title", Enter: textUp(0.2), Draw: func(f scene.Frame) string {
			return fit(f.Fg(white).Bold(true).Align(lipgloss.Center), title, min(f.Width, 72))
		}})
	}
	b.row(scene.Element{
		Key:   "ecg",
		Enter: anim.Tween(0, 1, 2*time.Second, anim.EaseInOut).After(secs(0.4)),
		Draw: func(f scene.Frame) string {
			return ecg(f, min(f.Width, 64), 5)
		},
	})
	if l.Highlight != "" {
		b.row(scene.Element{
			Key:   "highlight",
			Enter: anim.Tween(0, 1, secs(1.2), anim.CircOut).After(secs(0.6)),
			Draw: func(f scene.Frame) string {
				return shimmer(f, l.Highlight)
			},
		})
	}
	if l.Subtitle != "" {
		b.row(scene.Element{Key: "subtitle", Enter: textUp(0.9), Draw: func(f scene.Frame) string {
			return fit(f.Fg(muted).Align(lipgloss.Center), l.Subtitle, min(f.Width, 72))
		}})
	}
}

// ecgTrace is a flat line with one heartbeat spike, in an 800×4 view box.
var ecgTrace = []anim.Point{{X: 0, Y: 2}, {X: 300, Y: 2}, {X: 315, Y: 0}, {X: 330, Y: 4}, {X: 345, Y: 1}, {X: 360, Y: 2}, {X: 800, Y: 2}}

// ecg draws the heartbeat line left to right as the element enters.
func ecg(f scene.Frame, w, h int) string {
	c := canvas(f, w, h)
	trace(c, toCells(ecgTrace, 800, 4, w, h), f.P, false, stroke, f.Fg(accent))
	return c.String()
}

// shimmer draws s with a bright band sweeping across it.
func shimmer(f scene.Frame, s string) string {
	glyphs := widgets.Glyphs(s)
	band := int(f.Mounted/(60*time.Millisecond)) % (len(glyphs) + 12)
	var sb strings.Builder
	for i, g := range glyphs {
		hex := accent
		if d := i - band + 6; d >= -2 && d <= 2 {
			hex = "#e0f7ff"
		}
		sb.WriteString(f.Fg(hex).Bold(true).Render(g))
	}
	return sb.String()
}

func (b *builder) VisitGrid(l *deck.GridLayout) {
	b.header("", "", b.slide.Title, "")
	if len(l.Cards) == 0 {
		return
	}
	core := l.Cards[0]
	b.row(scene.Element{
		Key:   "core",
		Width: 60,
		Enter: anim.Tween(0, 1, secs(1.5), anim.Spring),
		Draw: func(f scene.Frame) string {
			return widgets.Card{
				Title:  iconText(core.Icon, strings.ToUpper(core.Label)),
				Body:   gridBody(core),
				Accent: f.Color(accent),
				Text:   f.Color(white),
				Fill:   lipgloss.Color(f.Background),
				Thick:  true,
			}.Render(f.Width, 0)
		},
	})
	subs := l.Cards[1:]
	if len(subs) == 0 {
		return
	}
	b.row(scene.Element{Key: "connectors", Enter: ease(1, 0.5), Draw: func(f scene.Frame) string {
		return connectors(f, len(subs))
	}})
	els := make([]scene.Element, len(subs))
	for i, c := range subs {
		els[i] = scene.Element{
			Key:   fmt.Sprintf("card-%d", i),
			Enter: spring(0.8 + 0.2*float64(i)),
			Draw: func(f scene.Frame) string {
				return card(f, iconText(c.Icon, c.Label), gridBody(c), accent, f.Width)
			},
		}
	}
	b.row(els...)
}

func gridBody(c deck.GridCard) string {
	if len(c.List) > 0 {
		return bullets("•", c.List)
	}
	return c.Text
}

// connectors draws the wiring from the core card down to n sub-cards,
// spreading outward from the centre as P grows.
func connectors(f scene.Frame, n int) string {
	c := canvas(f, f.Width, 3)
	st := f.Fg(accent)
	centers := columnCenters(f.Width, n, 2)
	mid := f.Width / 2
	if f.P <= 0 {
		return c.String()
	}
	c.Set(mid, 0, "│", st)
	left := mid - int(f.P*float64(mid-centers[0]))
	right := mid + int(f.P*float64(centers[n-1]-mid))
	for x := left; x <= right; x++ {
		c.Set(x, 1, "─", st)
	}
	for _, x := range centers {
		if x >= left && x <= right {
			c.Set(x, 2, "│", st)
		}
	}
	return c.String()
}

func (b *builder) VisitStats(l *deck.StatsLayout) {
	b.header("", "", b.slide.Title, l.Subtitle)
	if dr := l.DualRole; dr != nil {
		b.row(scene.Element{Key: "dual-role", Enter: ease(0.6, 0.2), Draw: func(f scene.Frame) string {
			title := iconText("⚕️", dr.Title) + "   ACADEMIC + CLINICAL"
			return card(f, title, dr.Desc, "#c471ed", min(f.Width, 90))
		}})
	}
	els := make([]scene.Element, len(l.Stats))
	for i, s := range l.Stats {
		els[i] = scene.Element{
			Key:     fmt.Sprintf("stat-%d", i),
			Enter:   ease(0.6, 0.3+0.15*float64(i)),
			Counter: &scene.CounterSpec{From: 0, To: s.Value, Duration: anim.CounterDuration},
			Draw: func(f scene.Frame) string {
				return card(f, iconText(s.Icon, s.Label), fmt.Sprintf("%d%s", f.Count, s.Suffix), accent, f.Width)
			},
		}
	}
	b.row(els...)
}

func (b *builder) VisitConvergence(l *deck.ConvergenceLayout) {
	b.header(b.slide.Title, accent, l.Heading, "")
	els := make([]scene.Element, len(l.Domains))
	for i, d := range l.Domains {
		els[i] = scene.Element{
			Key:   fmt.Sprintf("domain-%d", i),
			Enter: spring(0.2 * float64(i)),
			Draw: func(f scene.Frame) string {
				return card(f, iconText(d.Icon, d.Title), d.Text, or(d.Accent, accent), f.Width)
			},
		}
	}
	b.row(els...)
	if l.Takeaway != "" {
		b.row(scene.Element{
			Key:   "takeaway",
			Enter: anim.Tween(0, 1, secs(0.8), anim.EaseOut).After(secs(1.2)),
			Draw: func(f scene.Frame) string {
				text := fit(f.Fg(white), "💡 "+l.Takeaway, min(f.Width, 90))
				w := lipgloss.Width(text)
				rule := f.Fg(accent).Render(strings.Repeat("━", int(anim.Clamp01(f.P)*float64(w))))
				return stack(f, lipgloss.Center, text, rule)
			},
		})
	}
}

func (b *builder) VisitDichotomy(l *deck.DichotomyLayout) {
	rows := 0
	for _, s := range []*deck.Side{l.LeftSide, l.RightSide} {
		if s != nil {
			rows = max(rows, len(s.Items))
		}
	}
	var left, divider, right scene.Element
	if s := l.LeftSide; s != nil {
		left = scene.Element{Key: "left", Enter: ease(0.8, 0), Draw: func(f scene.Frame) string {
			return side(f, s, func(i int) anim.Spec { return spring(0.5 + 0.2*float64(i)) })
		}}
	}
	if s := l.RightSide; s != nil {
		right = scene.Element{Key: "right", Enter: ease(0.8, 0.3), Draw: func(f scene.Frame) string {
			return side(f, s, func(i int) anim.Spec { return ease(0.8, 0.8+0.2*float64(i)) })
		}}
	}
	if l.LeftSide != nil && l.RightSide != nil {
		divider = scene.Element{
			Key:   "divider",
			Width: 1,
			Enter: anim.Tween(0, 1, secs(1.5), anim.EaseInOut),
			Draw: func(f scene.Frame) string {
				h := 2 + 3*rows
				n := int(anim.Clamp01(f.P) * float64(h))
				lines := make([]string, h)
				for i := range lines {
					if i < n {
						lines[i] = f.Fg(muted).Render("│")
					} else {
						lines[i] = pad(f, 1)
					}
				}
				return strings.Join(lines, "\n")
			},
		}
	}
	b.spaced(3, left, divider, right)
}

// side draws one pane of a dichotomy; item gives each entry's entrance.
func side(f scene.Frame, s *deck.Side, item func(int) anim.Spec) string {
	hex := or(s.Accent, accent)
	w := max(1, f.Width)
	lines := []string{fit(f.Fg(hex).Bold(true), iconText(s.Icon, s.Heading), w), ""}
	for i, it := range s.Items {
		sub := f.With(item(i))
		st := sub.Fg(white)
		if it.Highlight {
			st = sub.Fg(hex).Bold(true)
		}
		lines = append(lines, shown(sub, fit(st, iconText(it.Icon, it.Text), w)), "")
	}
	return stack(f, lipgloss.Left, lines...)
}
