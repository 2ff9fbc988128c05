// Package layouts turns each slide variant into the scene it shows.
//
// Allowed here:
// - one strategy per layout variant, selected through deck.Visitor
// - click handlers that mutate the mount's ephemeral state
//
// Not allowed here:
// - clocks, counters, or mount bookkeeping (the stage owns those)
// - navigation
package layouts

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/slides/internal/anim"
	"github.com/jask/slides/internal/deck"
	"github.com/jask/slides/internal/scene"
	"github.com/jask/slides/internal/widgets"
)

// MaxWidth caps how wide a slide's content grows on large terminals.
const MaxWidth = 110

const (
	white   = "#ffffff"
	muted   = "#a6adc8"
	accent  = "#4facfe"
	success = "#43e97b"
	danger  = "#ff6b6b"
)

// Build returns the scene of s for its current ephemeral state. A slide
// without a known layout yields an empty scene on its background.
func Build(s deck.Slide, eph *scene.Ephemeral) scene.Scene {
	sc := scene.Scene{Background: s.Background(), MaxWidth: MaxWidth}
	if s.Layout == nil {
		return sc
	}
	if eph == nil {
		eph = scene.NewEphemeral()
	}
	s.Layout.Accept(&builder{slide: s, eph: eph, scene: &sc})
	return sc
}

type builder struct {
	slide deck.Slide
	eph   *scene.Ephemeral
	scene *scene.Scene
}

// row appends a section. Elements without a Draw func are omitted, so
// strategies can pass the zero Element for a missing sub-record.
func (b *builder) row(els ...scene.Element) {
	b.spaced(0, els...)
}

func (b *builder) spaced(gap int, els ...scene.Element) {
	var keep []scene.Element
	for _, el := range els {
		if el.Draw == nil {
			continue
		}
		el.Draw = hidden(el.Draw)
		keep = append(keep, el)
	}
	if len(keep) == 0 {
		return
	}
	b.scene.Sections = append(b.scene.Sections, scene.Section{Elements: keep, Gap: gap})
}

// header adds the small label, the heading and an optional subtitle.
func (b *builder) header(label, labelHex, heading, sub string) {
	if label == "" && heading == "" && sub == "" {
		return
	}
	b.row(scene.Element{Key: "header", Enter: textUp(0), Draw: func(f scene.Frame) string {
		w := min(f.Width, 90)
		var lines []string
		if label != "" {
			lines = append(lines, fit(f.Fg(labelHex).Bold(true), strings.ToUpper(label), w))
		}
		if heading != "" {
			lines = append(lines, fit(f.Fg(white).Bold(true), heading, w))
		}
		if sub != "" {
			lines = append(lines, fit(f.Fg(muted).Align(lipgloss.Center), sub, w))
		}
		return stack(f, lipgloss.Center, lines...)
	}})
}

func secs(s float64) time.Duration { return time.Duration(s * float64(time.Second)) }

// textUp is the headline entrance.
func textUp(delay float64) anim.Spec {
	return anim.Tween(0, 1, time.Second, anim.CircOut).After(secs(delay))
}

func spring(delay float64) anim.Spec {
	return anim.Tween(0, 1, secs(0.8), anim.Spring).After(secs(delay))
}

func ease(d, delay float64) anim.Spec {
	return anim.Tween(0, 1, secs(d), anim.EaseOut).After(secs(delay))
}

// hidden blanks an element until it is visible so rows keep their size while
// it fades in.
func hidden(draw func(scene.Frame) string) func(scene.Frame) string {
	return func(f scene.Frame) string {
		return shown(f, draw(f))
	}
}

// shown returns block, or a background-filled block of the same size when f
// is not visible.
func shown(f scene.Frame, block string) string {
	if f.Visible() || block == "" {
		return block
	}
	lines := strings.Split(block, "\n")
	row := pad(f, lipgloss.Width(block))
	for i := range lines {
		lines[i] = row
	}
	return strings.Join(lines, "\n")
}

func pad(f scene.Frame, n int) string {
	if n <= 0 {
		return ""
	}
	return f.Bg().Render(strings.Repeat(" ", n))
}

// fit renders s in st, wrapping at w cells when it is wider.
func fit(st lipgloss.Style, s string, w int) string {
	if w > 0 && lipgloss.Width(s) > w {
		return st.Width(w).Render(s)
	}
	return st.Render(s)
}

// stack joins lines into one block aligned at pos, padding with the slide
// background.
func stack(f scene.Frame, pos lipgloss.Position, lines ...string) string {
	var all []string
	for _, l := range lines {
		all = append(all, strings.Split(l, "\n")...)
	}
	w := 0
	for _, l := range all {
		w = max(w, lipgloss.Width(l))
	}
	for i, l := range all {
		gap := w - lipgloss.Width(l)
		left := int(float64(gap) * float64(pos))
		all[i] = pad(f, left) + l + pad(f, gap-left)
	}
	return strings.Join(all, "\n")
}

func card(f scene.Frame, title, body, hex string, w int) string {
	return widgets.Card{
		Title:  title,
		Body:   body,
		Accent: f.Color(hex),
		Text:   f.Color(white),
		Fill:   lipgloss.Color(f.Background),
	}.Render(w, 0)
}

func iconText(icon, text string) string {
	return strings.TrimSpace(icon + " " + text)
}

func or(hex, fallback string) string {
	if hex == "" {
		return fallback
	}
	return hex
}

func bullets(mark string, items []string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = mark + " " + it
	}
	return strings.Join(lines, "\n")
}

// letterSpaced puts a space between the letters of s.
func letterSpaced(s string) string {
	return strings.Join(widgets.Glyphs(s), " ")
}

// columnCenters returns the centre column of each of n equal-width cells
// sharing width with gap cells between them, the way scene rows share it.
func columnCenters(width, n, gap int) []int {
	if n <= 0 {
		return nil
	}
	widths := widgets.SplitWidths(max(0, width-gap*(n-1)), n, nil)
	out := make([]int, n)
	x := 0
	for i, w := range widths {
		out[i] = x + w/2
		x += w + gap
	}
	return out
}
