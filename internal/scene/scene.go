// Package scene describes what a slide shows as data: sections of elements,
// each with an entrance animation, an optional counter and an optional click
// handler.
//
// Allowed here:
// - scene description types and their composition into a terminal frame
// - per-mount ephemeral state (progressive reveal, one-shot trigger)
//
// Not allowed here:
// - choosing what a particular slide type shows
// - clocks, mounts, or navigation
package scene

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/slides/internal/anim"
	"github.com/jask/slides/internal/widgets"
)

// Element is one drawable unit of a scene.
type Element struct {
	// Key identifies the element within its slide; entrance timing is tracked per key.
	Key   string
	Enter anim.Spec
	// Width is the preferred width; 0 shares the remaining row width.
	Width   int
	Counter *CounterSpec
	Draw    func(Frame) string
	// OnClick may mutate only the ephemeral state.
	OnClick func(*Ephemeral)
}

// CounterSpec asks the renderer for a count-up shown in Frame.Count.
type CounterSpec struct {
	From     int
	To       int
	Duration time.Duration
}

// Entrance returns Enter, treating the zero spec as already entered.
func (e Element) Entrance() anim.Spec {
	s := e.Enter
	if s.From == 0 && s.To == 0 && s.Duration == 0 && s.Delay == 0 {
		return anim.Static(1)
	}
	return s
}

// Section is a centered row of elements.
type Section struct {
	Elements []Element
	Gap      int
}

// Scene is the full description of a slide at one moment.
type Scene struct {
	Sections []Section
	// OnClick handles clicks that hit no element.
	OnClick func(*Ephemeral)
	// Overlay, when set, fades in over the whole scene.
	Overlay    *Element
	Background string
	// MaxWidth caps the width rows are laid out in; 0 uses the full width.
	MaxWidth int
}

// Region is where an element landed in the last rendered frame.
type Region struct {
	Key     string
	X, Y    int
	W, H    int
	Visible bool
	Counter bool
	OnClick func(*Ephemeral)
}

func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Framer supplies the time-dependent part of each element's frame.
type Framer interface {
	Frame(el *Element, width, height int) Frame
}

// Keys lists every element key in the scene, the overlay included.
func (s Scene) Keys() []string {
	var keys []string
	for _, sec := range s.Sections {
		for _, el := range sec.Elements {
			keys = append(keys, el.Key)
		}
	}
	if s.Overlay != nil {
		keys = append(keys, s.Overlay.Key)
	}
	return keys
}

const sectionSpacing = 1

// Render composes the scene into exactly width×height cells and reports where
// each element landed.
func (s Scene) Render(width, height int, fr Framer) (string, []Region) {
	if width <= 0 || height <= 0 {
		return "", nil
	}
	bg := lipgloss.NewStyle().Background(lipgloss.Color(s.Background))
	blank := bg.Render(strings.Repeat(" ", width))
	rows := make([]string, height)
	for i := range rows {
		rows[i] = blank
	}
	canvas := strings.Join(rows, "\n")

	var dim float64
	var overlay string
	if s.Overlay != nil {
		f := fr.Frame(s.Overlay, width, height)
		dim = f.Alpha
		overlay = s.Overlay.Draw(f)
	}

	type placed struct {
		block  string
		region Region
	}
	content := width
	if s.MaxWidth > 0 && s.MaxWidth < width {
		content = s.MaxWidth
	}
	var blocks [][]placed
	total := 0
	for _, sec := range s.Sections {
		if len(sec.Elements) == 0 {
			continue
		}
		gap := sec.Gap
		if gap == 0 {
			gap = 2
		}
		widths := rowWidths(sec.Elements, content, gap)
		var row []placed
		x := 0
		rowHeight := 0
		for i := range sec.Elements {
			el := &sec.Elements[i]
			f := fr.Frame(el, widths[i], height)
			f.Alpha *= 1 - dim
			f.Fade *= 1 - dim
			block := ""
			if el.Draw != nil {
				block = el.Draw(f)
			}
			w := lipgloss.Width(block)
			h := lipgloss.Height(block)
			if block == "" {
				h = 0
			}
			row = append(row, placed{block: block, region: Region{
				Key: el.Key, X: x, W: w, H: h, Counter: el.Counter != nil, OnClick: el.OnClick,
			}})
			x += w + gap
			rowHeight = max(rowHeight, h)
		}
		rowWidth := max(0, x-gap)
		left := max(0, (width-rowWidth)/2)
		for i := range row {
			row[i].region.X += left
			row[i].region.Y = total
		}
		blocks = append(blocks, row)
		total += rowHeight + sectionSpacing
	}
	total = max(0, total-sectionSpacing)
	top := max(0, (height-total)/2)

	var regions []Region
	for _, row := range blocks {
		for _, p := range row {
			r := p.region
			r.Y += top
			r.Visible = r.H > 0 && r.Y < height && r.X < width
			if p.block != "" {
				canvas = widgets.PlaceAt(canvas, p.block, r.X, r.Y, width, height)
			}
			regions = append(regions, r)
		}
	}

	if s.Overlay != nil {
		canvas = widgets.Overlay(canvas, widgets.Fit(overlay, width, height), width, height)
		full := Region{Key: s.Overlay.Key, W: width, H: height, Visible: true, OnClick: s.Overlay.OnClick}
		if dim >= 1 {
			regions = []Region{full}
		} else {
			regions = append(regions, full)
		}
	}
	return canvas, regions
}

// rowWidths gives fixed-width elements their preferred width and shares the
// rest of the row between the others.
func rowWidths(els []Element, width, gap int) []int {
	out := make([]int, len(els))
	avail := width - gap*(len(els)-1)
	fixed, auto := 0, 0
	for _, el := range els {
		if el.Width > 0 {
			fixed += el.Width
		} else {
			auto++
		}
	}
	if fixed > avail {
		// shrink every element proportionally
		ratios := make([]float64, len(els))
		for i, el := range els {
			ratios[i] = float64(max(el.Width, 1))
		}
		return widgets.SplitWidths(max(avail, len(els)), len(els), ratios)
	}
	shared := widgets.SplitWidths(max(0, avail-fixed), auto, nil)
	j := 0
	for i, el := range els {
		if el.Width > 0 {
			out[i] = el.Width
			continue
		}
		out[i] = max(1, shared[j])
		j++
	}
	return out
}

// HitTest returns the topmost region at (x, y) carrying a click handler.
func HitTest(regions []Region, x, y int) (Region, bool) {
	for i := len(regions) - 1; i >= 0; i-- {
		r := regions[i]
		if r.OnClick != nil && r.Visible && r.Contains(x, y) {
			return r, true
		}
	}
	return Region{}, false
}
