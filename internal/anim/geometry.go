package anim

import "math"

// RingOffsets returns the rotation, in degrees, at which each segment of a
// progress ring starts. Values are percent of a full circle and are not
// normalized.
func RingOffsets(values []float64) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		out[i] = 360 * sum / 100
		sum += v
	}
	return out
}

// Arc is one ring segment in degrees clockwise from twelve o'clock.
type Arc struct {
	Start float64
	Sweep float64
}

// Ring converts segment percentages into arcs.
func Ring(values []float64) []Arc {
	offsets := RingOffsets(values)
	arcs := make([]Arc, len(values))
	for i, v := range values {
		arcs[i] = Arc{Start: offsets[i], Sweep: 360 * v / 100}
	}
	return arcs
}

// Covers reports whether angle deg lies on the first drawn fraction of the arc.
func (a Arc) Covers(deg, drawn float64) bool {
	sweep := a.Sweep * Clamp01(drawn)
	if sweep <= 0 {
		return false
	}
	d := math.Mod(deg-a.Start, 360)
	if d < 0 {
		d += 360
	}
	return d < sweep
}

// Point is a position relative to a center, y growing downwards.
type Point struct {
	X float64
	Y float64
}

// Orbit places k items on a circle of radius r: item 0 directly above the
// center, the rest clockwise at equal spacing.
func Orbit(k int, r float64) []Point {
	return OrbitAt(k, r, 0)
}

// OrbitAt is Orbit rotated clockwise by rotation degrees.
func OrbitAt(k int, r, rotation float64) []Point {
	if k <= 0 {
		return nil
	}
	pts := make([]Point, k)
	for i := range pts {
		theta := (float64(i)*360/float64(k) - 90 + rotation) * math.Pi / 180
		pts[i] = Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
	return pts
}

// AngleOf returns the clockwise angle from twelve o'clock of (x, y), in [0,360).
func AngleOf(x, y float64) float64 {
	deg := math.Atan2(y, x)*180/math.Pi + 90
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}
