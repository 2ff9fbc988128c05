package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar draws a horizontal gauge filled to frac of width.
func Bar(width int, frac float64, fill, empty lipgloss.TerminalColor) string {
	if width <= 0 {
		return ""
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	n := int(frac*float64(width) + 0.5)
	return lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", n)) +
		lipgloss.NewStyle().Foreground(empty).Render(strings.Repeat("░", width-n))
}

type ChartPoint struct {
	Label string
	Value float64
}

// Chart is a labelled horizontal bar chart. Grown scales every bar, so a
// chart can be drawn growing in over time.
type Chart struct {
	Title string
	Data  []ChartPoint
	Grown float64
	Color lipgloss.TerminalColor
}

func (c Chart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.Data) == 0 {
		return c.Title + "\n(no data)"
	}
	maxV := 0.0
	labelWidth := 0
	for _, p := range c.Data {
		if p.Value > maxV {
			maxV = p.Value
		}
		labelWidth = max(labelWidth, lipgloss.Width(p.Label))
	}
	if maxV <= 0 {
		maxV = 1
	}
	grown := c.Grown
	if grown <= 0 || grown > 1 {
		grown = 1
	}
	style := lipgloss.NewStyle().Foreground(c.Color)
	var lines []string
	if c.Title != "" {
		lines = append(lines, c.Title)
	}
	for _, p := range c.Data {
		if len(lines) >= height {
			break
		}
		w := int((p.Value / maxV) * float64(max(1, width-labelWidth-2)) * grown)
		if w < 1 {
			w = 1
		}
		lines = append(lines, fmt.Sprintf("%-*s %s", labelWidth, p.Label, style.Render(strings.Repeat("▇", w))))
	}
	return strings.Join(lines, "\n")
}
