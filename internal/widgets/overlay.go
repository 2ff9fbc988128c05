package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Overlay copies the non-blank span of every overlay row over base.
func Overlay(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(overlay, height)
	out := make([]string, height)
	for i := 0; i < height; i++ {
		baseLine := PadRight(baseLines[i], width)
		overlayLine := PadRight(overlayLines[i], width)
		start, end, has := segmentBounds(overlayLine, width)
		if !has {
			out[i] = baseLine
			continue
		}
		left := takeColumns(baseLine, start)
		segment := takeColumns(dropColumns(overlayLine, start), end-start)
		right := dropColumns(baseLine, end)
		out[i] = PadRight(left+segment+right, width)
	}
	return strings.Join(out, "\n")
}

// PlaceAt draws block with its top-left corner at column x, row y of base.
func PlaceAt(base, block string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	blockLines := strings.Split(block, "\n")
	blockWidth := maxLineWidth(blockLines)
	for i, line := range blockLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		target := PadRight(baseLines[row], width)
		left := takeColumns(target, max(0, x))
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		line = PadRight(line, blockWidth)
		pos := max(0, x) + ansi.StringWidth(line)
		right := dropColumns(target, pos)
		baseLines[row] = PadRight(left+line+right, width)
	}
	return strings.Join(baseLines, "\n")
}

// Fit pads or clips s to exactly width×height cells.
func Fit(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = PadRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// segmentBounds finds the first and last non-space display columns of line.
func segmentBounds(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	lead := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
	start = lead
	end = lead + runewidth.StringWidth(trimmed[lead:])
	return start, end, start < end
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// takeColumns keeps the first cols cells of s. Cuts that keep no cells return
// "" rather than a run of bare escape sequences.
func takeColumns(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	return ansi.Truncate(s, cols, "")
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	if cols >= ansi.StringWidth(s) {
		return ""
	}
	return ansi.TruncateLeft(s, cols, "")
}

// PadRight clips s to width display cells and pads it with spaces.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
