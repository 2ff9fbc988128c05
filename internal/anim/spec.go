package anim

import "time"

// Spec is the pure description of one tween: a value moving From→To over
// Duration after Delay, shaped by Ease.
type Spec struct {
	From     float64
	To       float64
	Delay    time.Duration
	Duration time.Duration
	Ease     Easing
}

// Tween builds a spec with no delay.
func Tween(from, to float64, d time.Duration, ease Easing) Spec {
	return Spec{From: from, To: to, Duration: d, Ease: ease}
}

// Fade is a 0→1 tween.
func Fade(d time.Duration, ease Easing) Spec {
	return Tween(0, 1, d, ease)
}

// Static is a spec that is already complete.
func Static(v float64) Spec {
	return Spec{From: v, To: v}
}

// After returns a copy of s starting delay later.
func (s Spec) After(delay time.Duration) Spec {
	s.Delay = delay
	return s
}

// Total is the delay plus the duration.
func (s Spec) Total() time.Duration { return s.Delay + s.Duration }

// Progress returns eased progress at elapsed time since the spec started.
func (s Spec) Progress(elapsed time.Duration) float64 {
	t := elapsed - s.Delay
	if t < 0 {
		return 0
	}
	if s.Duration <= 0 || t >= s.Duration {
		return 1
	}
	ease := s.Ease
	if ease == nil {
		ease = Linear
	}
	return ease(float64(t) / float64(s.Duration))
}

// Value interpolates From→To. It is exactly To once the spec is done.
func (s Spec) Value(elapsed time.Duration) float64 {
	if s.Done(elapsed) {
		return s.To
	}
	return s.From + (s.To-s.From)*s.Progress(elapsed)
}

func (s Spec) Done(elapsed time.Duration) bool { return elapsed >= s.Total() }

// Clamp01 bounds v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
