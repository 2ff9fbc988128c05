package anim

import (
	"math"
	"time"
)

// CounterDuration is the count-up time of stat counters.
const CounterDuration = 2 * time.Second

// Counter counts an integer from→to once, starting the first time it is seen.
type Counter struct {
	from, to int
	spec     Spec
	started  bool
	start    time.Time
	stopped  bool
	frozen   int
}

func NewCounter(from, to int, d time.Duration) *Counter {
	return &Counter{
		from: from,
		to:   to,
		spec: Tween(float64(from), float64(to), d, EaseOut),
	}
}

// Observe records a visibility sample. The first visible sample starts the
// count; later samples never restart it. It reports whether this call started it.
func (c *Counter) Observe(visible bool, now time.Time) bool {
	if !visible || c.started || c.stopped {
		return false
	}
	c.started = true
	c.start = now
	return true
}

func (c *Counter) Started() bool { return c.started }

// Value is the displayed integer at now.
func (c *Counter) Value(now time.Time) int {
	if c.stopped {
		return c.frozen
	}
	if !c.started {
		return c.from
	}
	elapsed := now.Sub(c.start)
	if c.spec.Done(elapsed) {
		return c.to
	}
	v := int(math.Round(c.spec.Value(elapsed)))
	lo, hi := c.from, c.to
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Done reports whether the count reached its target.
func (c *Counter) Done(now time.Time) bool {
	return c.started && !c.stopped && c.spec.Done(now.Sub(c.start))
}

// Stop freezes the counter at its current value. Used when its owner is torn
// down mid-count.
func (c *Counter) Stop(now time.Time) {
	if c.stopped {
		return
	}
	c.frozen = c.Value(now)
	c.stopped = true
}
