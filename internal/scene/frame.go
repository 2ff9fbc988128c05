package scene

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jask/slides/internal/anim"
)

// Frame is what an element sees when it draws.
type Frame struct {
	Now time.Time
	// Since is the time since the element first appeared in its mount.
	Since time.Duration
	// Mounted is the time since the slide mounted; used by looping decorations.
	Mounted time.Duration
	// P is the entrance value (0→1, springs may overshoot).
	P float64
	// Alpha is the visibility used for colour fades, in [0,1]. It already
	// includes Fade.
	Alpha float64
	// Fade is the scene-wide visibility: exit transitions and overlays.
	Fade       float64
	Width      int
	Height     int
	Count      int
	Background string
}

// Visible reports whether anything of the element would show.
func (f Frame) Visible() bool { return f.Alpha > 0.02 }

// With returns the frame of a sub-part of the element entering with spec.
func (f Frame) With(spec anim.Spec) Frame {
	f.P = spec.Value(f.Since)
	f.Alpha = anim.Clamp01(f.P) * f.Fade
	return f
}

// Progress evaluates spec relative to the element's appearance.
func (f Frame) Progress(spec anim.Spec) float64 {
	return spec.Progress(f.Since)
}

// Value evaluates spec relative to the element's appearance.
func (f Frame) Value(spec anim.Spec) float64 {
	return spec.Value(f.Since)
}

// Color blends hex toward the background by the frame's alpha.
func (f Frame) Color(hex string) lipgloss.TerminalColor {
	return Blend(f.Background, hex, f.Alpha)
}

// Fg is a foreground style faded by alpha on the slide background.
func (f Frame) Fg(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(f.Color(hex)).Background(lipgloss.Color(f.Background))
}

// Bg is the plain background style.
func (f Frame) Bg() lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(f.Background))
}

// Blend mixes from→to by t in Lab space. Unparseable colours fall back to to.
func Blend(from, to string, t float64) lipgloss.TerminalColor {
	t = anim.Clamp01(t)
	dst, err := colorful.Hex(to)
	if err != nil {
		return lipgloss.Color(to)
	}
	src, err := colorful.Hex(from)
	if err != nil || t >= 1 {
		return lipgloss.Color(dst.Hex())
	}
	return lipgloss.Color(src.BlendLab(dst, t).Clamped().Hex())
}

// Gradient samples n colours evenly across stops.
func Gradient(stops []string, n int) []lipgloss.TerminalColor {
	if n <= 0 {
		return nil
	}
	out := make([]lipgloss.TerminalColor, n)
	if len(stops) == 0 {
		for i := range out {
			out[i] = lipgloss.NoColor{}
		}
		return out
	}
	for i := range out {
		if len(stops) == 1 || n == 1 {
			out[i] = lipgloss.Color(stops[0])
			continue
		}
		pos := float64(i) / float64(n-1) * float64(len(stops)-1)
		lo := int(pos)
		if lo >= len(stops)-1 {
			lo = len(stops) - 2
		}
		out[i] = Blend(stops[lo], stops[lo+1], pos-float64(lo))
	}
	return out
}
