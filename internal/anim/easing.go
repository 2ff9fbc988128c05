// Package anim describes animations as data and interprets them against a
// caller-supplied clock.
//
// Allowed here:
// - easing curves, tween specs, the timeline scheduler
// - counters, ring and orbit geometry
//
// Not allowed here:
// - reading the wall clock, timers, goroutines
// - terminal drawing
package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Easing maps linear progress in [0,1] to eased progress. Easings return 0 at 0
// and 1 at 1; springs may overshoot in between.
type Easing func(t float64) float64

var (
	Linear    Easing = func(t float64) float64 { return t }
	EaseIn           = CubicBezier(0.42, 0, 1, 1)
	EaseOut          = CubicBezier(0, 0, 0.58, 1)
	EaseInOut        = CubicBezier(0.42, 0, 0.58, 1)
	CircOut   Easing = func(t float64) float64 { return math.Sqrt(1 - (t-1)*(t-1)) }
	// Spring matches a stiffness 100, damping 10, mass 1 spring settling in one second.
	Spring = SpringEasing(10, 0.5)
)

// CubicBezier returns the CSS cubic-bezier timing function with control
// points (x1,y1) and (x2,y2).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(x float64) float64 {
		s := x
		for i := 0; i < 8; i++ {
			d := sampleX(s) - x
			if math.Abs(d) < 1e-7 {
				return s
			}
			dx := slopeX(s)
			if math.Abs(dx) < 1e-6 {
				break
			}
			s -= d / dx
		}
		lo, hi := 0.0, 1.0
		s = x
		for lo < hi {
			v := sampleX(s)
			if math.Abs(v-x) < 1e-7 {
				return s
			}
			if x > v {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
			if hi-lo < 1e-9 {
				break
			}
		}
		return s
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solve(t))
	}
}

const springSamples = 120

// SpringEasing samples a damped harmonic oscillator moving from 0 to 1 and
// uses the samples as an easing curve.
func SpringEasing(angularFrequency, dampingRatio float64) Easing {
	s := harmonica.NewSpring(1.0/springSamples, angularFrequency, dampingRatio)
	table := make([]float64, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = s.Update(pos, vel, 1)
		table[i] = pos
	}
	table[springSamples] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		f := t * springSamples
		i := int(f)
		frac := f - float64(i)
		return table[i] + (table[i+1]-table[i])*frac
	}
}
