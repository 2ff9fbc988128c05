package layouts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/slides/internal/anim"
	"github.com/jask/slides/internal/deck"
	"github.com/jask/slides/internal/scene"
	"github.com/jask/slides/internal/widgets"
)

func (b *builder) VisitInsights(l *deck.InsightsLayout) {
	b.header(b.slide.Title, "#f1c40f", l.Heading, "")
	els := make([]scene.Element, len(l.Points))
	for i, p := range l.Points {
		els[i] = scene.Element{
			Key:   fmt.Sprintf("point-%d", i),
			Enter: spring(0.3 + 0.2*float64(i)),
			Draw: func(f scene.Frame) string {
				return card(f, pointTitle(p), p.Text, or(p.Color, accent), f.Width)
			},
		}
	}
	b.row(els...)
}

func pointTitle(p deck.Point) string {
	return strings.TrimSpace(p.ID + "  " + iconText(p.Icon, p.Title))
}

// Node slots of the nexus, in fallback order.
var nexusSlots = []string{"top-left", "top-right", "bottom"}

const nexusCyan = "#00f2fe"

// VisitNexus draws three nodes wired to a central core. Points land in the
// slot their Position names, or the first free slot.
func (b *builder) VisitNexus(l *deck.NexusLayout) {
	b.header(b.slide.Title, nexusCyan, l.Heading, "")
	slots, extra := assignSlots(l.Points)
	node := func(slot string, delay float64) scene.Element {
		p, ok := slots[slot]
		if !ok {
			return scene.Element{}
		}
		return scene.Element{Key: "node-" + slot, Width: 40, Enter: ease(0.8, delay), Draw: func(f scene.Frame) string {
			return card(f, pointTitle(p), p.Text, or(p.Color, nexusCyan), f.Width)
		}}
	}
	b.spaced(24, node("top-left", 0.8), node("top-right", 1.1))
	_, left := slots["top-left"]
	_, right := slots["top-right"]
	_, bottom := slots["bottom"]
	b.row(scene.Element{
		Key:   "core",
		Enter: anim.Tween(0, 1, secs(0.8), anim.Spring).After(secs(0.2)),
		Draw: func(f scene.Frame) string {
			return nexusCore(f, l.CoreText, left, right, bottom)
		},
	})
	b.row(node("bottom", 1.4))

	els := make([]scene.Element, len(extra))
	for i, p := range extra {
		els[i] = scene.Element{
			Key:   fmt.Sprintf("point-%d", i),
			Enter: ease(0.8, 1.7+0.2*float64(i)),
			Draw: func(f scene.Frame) string {
				return card(f, pointTitle(p), p.Text, or(p.Color, nexusCyan), f.Width)
			},
		}
	}
	b.row(els...)
}

func assignSlots(points []deck.Point) (map[string]deck.Point, []deck.Point) {
	slots := map[string]deck.Point{}
	var pending []deck.Point
	for _, p := range points {
		if _, taken := slots[p.Position]; !taken && isNexusSlot(p.Position) {
			slots[p.Position] = p
			continue
		}
		pending = append(pending, p)
	}
	var extra []deck.Point
	for _, p := range pending {
		placed := false
		for _, s := range nexusSlots {
			if _, taken := slots[s]; !taken {
				slots[s] = p
				placed = true
				break
			}
		}
		if !placed {
			extra = append(extra, p)
		}
	}
	return slots, extra
}

func isNexusSlot(s string) bool {
	for _, slot := range nexusSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// nexusCore draws the core with dashed feed lines towards the nodes that
// are present.
func nexusCore(f scene.Frame, text string, left, right, bottom bool) string {
	w, h := f.Width, 7
	c := canvas(f, w, h)
	mid, row := w/2, h/2
	label := iconText("🧠", or(text, "CORE"))
	half := lipgloss.Width(label)/2 + 2
	line := f.Fg(nexusCyan)
	feed := func(on bool, x0, y0, x1, y1 int, delay float64) {
		if !on {
			return
		}
		drawn := f.Progress(ease(1, delay))
		trace(c, [][2]int{{x0, y0}, {x1, y1}}, drawn, true, stroke, line)
	}
	feed(left, mid-32, 0, mid-half, row, 0.5)
	feed(right, mid+32, 0, mid+half, row, 0.8)
	feed(bottom, mid, row+1, mid, h-1, 1.1)

	box := widgets.Card{Body: label, Accent: f.Color(nexusCyan), Text: f.Color(white), Fill: lipgloss.Color(f.Background), Thick: true}.
		Render(lipgloss.Width(label)+4, 0)
	bw := lipgloss.Width(box)
	return widgets.PlaceAt(c.String(), box, mid-bw/2, row-1, w, h)
}

const defaultFinale = "THANK YOU"

// VisitConclusion grows the monolith between the module columns. A click
// anywhere fires the finale curtain, once per mount.
func (b *builder) VisitConclusion(l *deck.ConclusionLayout) {
	b.header(b.slide.Title, muted, l.Heading, l.Summary)
	modules := func(key string, ms []deck.Module, delay float64) scene.Element {
		if len(ms) == 0 {
			return scene.Element{}
		}
		return scene.Element{Key: key, Width: 28, Enter: ease(0.6, delay), Draw: func(f scene.Frame) string {
			var blocks []string
			for i, m := range ms {
				sub := f.With(ease(0.6, delay+0.3*float64(i)))
				blocks = append(blocks, shown(sub, card(sub, iconText(m.Icon, m.DisplayName()), "", or(m.Color, accent), f.Width)))
			}
			return stack(f, lipgloss.Left, blocks...)
		}}
	}
	monolith := scene.Element{
		Key:   "monolith",
		Width: 10,
		Enter: anim.Tween(0, 1, secs(1.5), anim.EaseInOut).After(secs(0.2)),
		Draw: func(f scene.Frame) string {
			const height = 9
			n := int(anim.Clamp01(f.P) * height)
			shades := scene.Gradient([]string{"#ffffff", "#434343"}, height)
			lines := make([]string, height)
			for i := range lines {
				if i < height-n {
					lines[i] = pad(f, f.Width)
					continue
				}
				fade := scene.Blend(f.Background, hexOf(shades[i]), f.Alpha)
				lines[i] = f.Bg().Foreground(fade).Render(strings.Repeat("█", f.Width))
			}
			return strings.Join(lines, "\n")
		},
	}
	b.spaced(4, modules("modules-left", l.LeftModules, 1.0), monolith, modules("modules-right", l.RightModules, 1.2))
	if cta := l.CTA; cta != nil {
		b.row(scene.Element{Key: "cta", Enter: ease(0.8, 2.5), Draw: func(f scene.Frame) string {
			return card(f, cta.Heading, cta.Text, "#f09819", min(f.Width, 96))
		}})
	}

	b.scene.OnClick = func(e *scene.Ephemeral) { e.Finale.Fire() }
	if !b.eph.Finale.Fired() {
		return
	}
	message := or(l.FinalMessage, defaultFinale)
	b.scene.Overlay = &scene.Element{
		Key:   "finale",
		Enter: anim.Fade(secs(1.5), anim.EaseInOut),
		Draw: func(f scene.Frame) string {
			if !f.Visible() {
				return ""
			}
			text := f.Fg(white).Bold(true).Render(letterSpaced(message))
			return lipgloss.Place(f.Width, f.Height, lipgloss.Center, lipgloss.Center, text)
		},
	}
}

// hexOf returns the hex form of a colour built by scene.Blend or Gradient.
func hexOf(c lipgloss.TerminalColor) string {
	if hex, ok := c.(lipgloss.Color); ok {
		return string(hex)
	}
	return white
}
