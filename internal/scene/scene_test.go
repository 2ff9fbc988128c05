package scene

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/slides/internal/anim"
)

type fullFramer struct{ alpha float64 }

func (f fullFramer) Frame(el *Element, width, height int) Frame {
	return Frame{Alpha: f.alpha, Fade: 1, P: 1, Width: width, Height: height, Background: "#000000"}
}

func text(key, s string) Element {
	return Element{Key: key, Draw: func(Frame) string { return s }}
}

func TestRevealToggle(t *testing.T) {
	t.Parallel()

	r := NewReveal()
	require.False(t, r.Revealed(2))
	require.True(t, r.Toggle(2))
	require.True(t, r.Revealed(2))
	require.False(t, r.Revealed(1))
	require.Equal(t, 1, r.Count())
	require.False(t, r.Toggle(2))
	require.False(t, r.Revealed(2))

	r.Toggle(0)
	r.Toggle(3)
	r.Reset()
	require.Zero(t, r.Count())
}

func TestTriggerIsOneShot(t *testing.T) {
	t.Parallel()

	var tr Trigger
	require.False(t, tr.Fired())
	require.True(t, tr.Fire())
	require.False(t, tr.Fire())
	require.True(t, tr.Fired())
}

func TestEphemeralIsFresh(t *testing.T) {
	t.Parallel()

	a := NewEphemeral()
	a.Reveal.Toggle(1)
	a.Finale.Fire()
	b := NewEphemeral()
	require.False(t, b.Reveal.Revealed(1))
	require.False(t, b.Finale.Fired())
}

func TestEntranceDefaultsToEntered(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, Element{}.Entrance().Value(0))
	e := Element{Enter: anim.Fade(time.Second, anim.Linear)}
	require.Equal(t, 0.0, e.Entrance().Value(0))
}

func TestRenderCentersSections(t *testing.T) {
	t.Parallel()

	s := Scene{Background: "#000000", Sections: []Section{
		{Elements: []Element{text("a", "AAAA")}},
		{Elements: []Element{text("b", "BB"), text("c", "CC")}, Gap: 2},
	}}
	out, regions := s.Render(20, 7, fullFramer{alpha: 1})
	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 7)
	for _, l := range lines {
		require.Equal(t, 20, lipgloss.Width(l))
	}

	require.Len(t, regions, 3)
	a, b, c := regions[0], regions[1], regions[2]
	assert.Equal(t, Region{Key: "a", X: 8, Y: 2, W: 4, H: 1, Visible: true}, a)
	assert.Equal(t, 7, b.X)
	assert.Equal(t, 4, b.Y)
	assert.Equal(t, 11, c.X)
	assert.Contains(t, lines[2], "AAAA")
	assert.Contains(t, lines[4], "BB  CC")
}

func TestRenderRowWidths(t *testing.T) {
	t.Parallel()

	var got []int
	draw := func(f Frame) string {
		got = append(got, f.Width)
		return "x"
	}
	s := Scene{Sections: []Section{{Gap: 1, Elements: []Element{
		{Key: "fixed", Width: 5, Draw: draw},
		{Key: "auto1", Draw: draw},
		{Key: "auto2", Draw: draw},
	}}}}
	s.Render(20, 3, fullFramer{alpha: 1})
	require.Equal(t, []int{5, 7, 6}, got)
}

func TestRenderMarksClippedRegionsInvisible(t *testing.T) {
	t.Parallel()

	s := Scene{Sections: []Section{
		{Elements: []Element{text("top", "1\n2\n3")}},
		{Elements: []Element{text("below", "x")}},
	}}
	_, regions := s.Render(10, 3, fullFramer{alpha: 1})
	require.True(t, regions[0].Visible)
	require.False(t, regions[1].Visible)
}

func TestHitTestPrefersHandlers(t *testing.T) {
	t.Parallel()

	hits := 0
	click := func(*Ephemeral) { hits++ }
	s := Scene{Sections: []Section{{Elements: []Element{
		{Key: "row", Draw: func(Frame) string { return "click me" }, OnClick: click},
		{Key: "plain", Draw: func(Frame) string { return "static" }},
	}}}}
	_, regions := s.Render(40, 5, fullFramer{alpha: 1})
	r, ok := HitTest(regions, regions[0].X+1, regions[0].Y)
	require.True(t, ok)
	require.Equal(t, "row", r.Key)
	r.OnClick(nil)
	require.Equal(t, 1, hits)

	_, ok = HitTest(regions, regions[1].X, regions[1].Y)
	require.False(t, ok)
	_, ok = HitTest(regions, 0, 0)
	require.False(t, ok)
}

func TestOverlayCoversScene(t *testing.T) {
	t.Parallel()

	var bodyAlpha float64
	s := Scene{
		Sections: []Section{{Elements: []Element{{Key: "body", Draw: func(f Frame) string {
			bodyAlpha = f.Alpha
			return "body"
		}}}}},
		Overlay: &Element{Key: "finale", Draw: func(f Frame) string {
			return lipgloss.Place(f.Width, f.Height, lipgloss.Center, lipgloss.Center, "THANK YOU")
		}},
	}
	out, regions := s.Render(30, 5, fullFramer{alpha: 1})
	require.Contains(t, ansi.Strip(out), "THANK YOU")
	require.Zero(t, bodyAlpha)
	require.Len(t, regions, 1)
	require.Equal(t, "finale", regions[0].Key)
	require.Equal(t, []string{"body", "finale"}, s.Keys())
}

func TestBlendAndGradient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.Color("#ffffff"), Blend("#000000", "#ffffff", 1))
	assert.Equal(t, lipgloss.Color("#000000"), Blend("#000000", "#ffffff", 0))
	assert.Equal(t, lipgloss.Color("nope"), Blend("#000000", "nope", 0.5))

	g := Gradient([]string{"#000000", "#ffffff"}, 3)
	require.Len(t, g, 3)
	assert.Equal(t, lipgloss.Color("#000000"), g[0])
	assert.Equal(t, lipgloss.Color("#ffffff"), g[2])
	assert.Nil(t, Gradient(nil, 0))
}

func TestFrameWith(t *testing.T) {
	t.Parallel()

	f := Frame{Since: 500 * time.Millisecond, Fade: 0.5}
	sub := f.With(anim.Fade(time.Second, anim.Linear))
	assert.InDelta(t, 0.5, sub.P, 1e-9)
	assert.InDelta(t, 0.25, sub.Alpha, 1e-9)
	assert.True(t, sub.Visible())
	assert.False(t, f.With(anim.Fade(time.Second, anim.Linear).After(time.Second)).Visible())
}

func TestMaxWidthLimitsRows(t *testing.T) {
	t.Parallel()

	var got int
	s := Scene{MaxWidth: 30, Sections: []Section{{Elements: []Element{{Key: "a", Draw: func(f Frame) string {
		got = f.Width
		return "a"
	}}}}}}
	s.Render(100, 3, fullFramer{alpha: 1})
	require.Equal(t, 30, got)
}
