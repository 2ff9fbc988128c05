package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSplitWidths(t *testing.T) {
	got := SplitWidths(10, 3, nil)
	if got[0] != 4 || got[1] != 3 || got[2] != 3 {
		t.Fatalf("split = %v", got)
	}
	if SplitWidths(10, 0, nil) != nil {
		t.Fatalf("expected nil for n=0")
	}
}

func TestBarFill(t *testing.T) {
	out := Bar(10, 0.5, lipgloss.Color("#fff"), lipgloss.Color("#000"))
	if strings.Count(out, "█") != 5 || strings.Count(out, "░") != 5 {
		t.Fatalf("bar = %q", out)
	}
	if strings.Count(Bar(4, 3, nil, nil), "█") != 4 {
		t.Fatalf("bar should clamp")
	}
}

func TestChartGrows(t *testing.T) {
	c := Chart{Data: []ChartPoint{{Label: "a", Value: 10}, {Label: "bb", Value: 5}}}
	full := c.Render(22, 5)
	c.Grown = 0.5
	half := c.Render(22, 5)
	if strings.Count(full, "▇") <= strings.Count(half, "▇") {
		t.Fatalf("grown chart should draw fewer cells")
	}
}

func TestCanvasWideGlyphs(t *testing.T) {
	c := NewCanvas(6, 1)
	c.Text(0, 0, "🎯ab", lipgloss.NewStyle())
	if got := c.String(); got != "🎯ab  " {
		t.Fatalf("canvas = %q", got)
	}
	c.Set(1, 0, "x", lipgloss.NewStyle())
	if got := c.String(); got != " xab  " {
		t.Fatalf("overwrite half = %q", got)
	}
	c.Set(5, 0, "🎯", lipgloss.NewStyle())
	if got := c.String(); got != " xab  " {
		t.Fatalf("clipped glyph drawn: %q", got)
	}
}

func TestGlyphsKeepJoiners(t *testing.T) {
	g := Glyphs("⚠️a👨‍⚕️")
	if len(g) != 3 {
		t.Fatalf("glyphs = %q", g)
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(5, 5)
	c.Line(0, 0, 4, 4, "*", lipgloss.NewStyle())
	lines := strings.Split(c.String(), "\n")
	for i, l := range lines {
		if l[i] != '*' {
			t.Fatalf("row %d = %q", i, l)
		}
	}
}

func TestCardRendersTitle(t *testing.T) {
	out := Card{Title: "Core", Body: "text"}.Render(20, 0)
	if !strings.Contains(out, "Core") || !strings.Contains(out, "text") {
		t.Fatalf("card = %q", out)
	}
	if w := lipgloss.Width(out); w != 20 {
		t.Fatalf("card width = %d", w)
	}
}

func TestLinePathIncludesEndpoints(t *testing.T) {
	path := LinePath(0, 0, 4, 2)
	if len(path) != 5 {
		t.Fatalf("path = %v", path)
	}
	if path[0] != [2]int{0, 0} || path[4] != [2]int{4, 2} {
		t.Fatalf("endpoints = %v %v", path[0], path[4])
	}
	if got := LinePath(3, 3, 3, 3); len(got) != 1 {
		t.Fatalf("point path = %v", got)
	}
}

func TestCardFillKeepsWidth(t *testing.T) {
	out := Card{Title: "T", Body: "b", Fill: lipgloss.Color("#000000")}.Render(12, 0)
	if w := lipgloss.Width(out); w != 12 {
		t.Fatalf("card width = %d", w)
	}
}
