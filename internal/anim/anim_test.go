package anim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestEasingEndpoints(t *testing.T) {
	t.Parallel()

	for name, e := range map[string]Easing{
		"linear": Linear, "easeIn": EaseIn, "easeOut": EaseOut,
		"easeInOut": EaseInOut, "circOut": CircOut, "spring": Spring,
	} {
		assert.InDelta(t, 0, e(0), 1e-9, name)
		assert.InDelta(t, 1, e(1), 1e-9, name)
	}
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-4)
	assert.Greater(t, EaseOut(0.3), 0.3)
	assert.Less(t, EaseIn(0.3), 0.3)
}

func TestEaseOutMonotone(t *testing.T) {
	t.Parallel()

	prev := 0.0
	for i := 1; i <= 1000; i++ {
		v := EaseOut(float64(i) / 1000)
		require.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestSpringOvershoots(t *testing.T) {
	t.Parallel()

	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = math.Max(peak, Spring(float64(i)/100))
	}
	assert.Greater(t, peak, 1.0)
}

func TestSpecValue(t *testing.T) {
	t.Parallel()

	s := Tween(10, 20, time.Second, Linear).After(500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, s.Total())
	assert.Equal(t, 10.0, s.Value(0))
	assert.Equal(t, 10.0, s.Value(500*time.Millisecond))
	assert.InDelta(t, 15, s.Value(time.Second), 1e-9)
	assert.Equal(t, 20.0, s.Value(1500*time.Millisecond))
	assert.Equal(t, 20.0, s.Value(time.Hour))
	assert.Equal(t, 1.0, Static(3).Progress(0))
	assert.Equal(t, 3.0, Static(3).Value(0))
}

func TestCounterReachesTargetMonotonically(t *testing.T) {
	t.Parallel()

	c := NewCounter(0, 1800, 2*time.Second)
	require.Equal(t, 0, c.Value(t0.Add(time.Hour)), "not started before it is seen")

	require.False(t, c.Observe(false, t0))
	require.True(t, c.Observe(true, t0))
	require.False(t, c.Observe(true, t0.Add(time.Second)), "never restarts")

	prev := -1
	for ms := 0; ms <= 2500; ms += 10 {
		v := c.Value(t0.Add(time.Duration(ms) * time.Millisecond))
		require.GreaterOrEqual(t, v, prev)
		require.LessOrEqual(t, v, 1800)
		prev = v
	}
	require.Equal(t, 1800, c.Value(t0.Add(2*time.Second)))
	require.True(t, c.Done(t0.Add(2*time.Second)))
}

func TestCounterStopFreezes(t *testing.T) {
	t.Parallel()

	c := NewCounter(0, 100, time.Second)
	c.Observe(true, t0)
	c.Stop(t0.Add(200 * time.Millisecond))
	v := c.Value(t0.Add(200 * time.Millisecond))
	require.Less(t, v, 100)
	require.Equal(t, v, c.Value(t0.Add(time.Hour)))
	require.False(t, c.Done(t0.Add(time.Hour)))
	require.False(t, c.Observe(true, t0.Add(time.Hour)))
}

func TestRingOffsets(t *testing.T) {
	t.Parallel()

	require.Equal(t, []float64{0, 108, 198, 270}, RingOffsets([]float64{30, 25, 20, 25}))
	require.Equal(t, []float64{0, 216}, RingOffsets([]float64{60, 60}), "not normalized")
	require.Empty(t, RingOffsets(nil))
}

func TestArcCovers(t *testing.T) {
	t.Parallel()

	arcs := Ring([]float64{30, 25, 20, 25})
	assert.True(t, arcs[0].Covers(10, 1))
	assert.False(t, arcs[0].Covers(120, 1))
	assert.True(t, arcs[1].Covers(120, 1))
	assert.False(t, arcs[1].Covers(120, 0), "nothing drawn yet")
	assert.True(t, arcs[3].Covers(359, 1))
	assert.True(t, arcs[3].Covers(-1, 1))
}

func TestOrbit(t *testing.T) {
	t.Parallel()

	pts := Orbit(5, 140)
	require.Len(t, pts, 5)
	assert.InDelta(t, 0, pts[0].X, 1e-9)
	assert.InDelta(t, -140, pts[0].Y, 1e-9)

	rad := -18 * math.Pi / 180
	assert.InDelta(t, 140*math.Cos(rad), pts[1].X, 1e-9)
	assert.InDelta(t, 140*math.Sin(rad), pts[1].Y, 1e-9)

	for i, p := range pts {
		assert.InDelta(t, float64(i)*72, AngleOf(p.X, p.Y), 1e-6)
	}
	assert.Nil(t, Orbit(0, 140))
}

func TestTimelineFiresOnceInFinishOrder(t *testing.T) {
	t.Parallel()

	tl := NewTimeline()
	var order []string
	tl.Start("slow", Fade(2*time.Second, Linear), t0, func() { order = append(order, "slow") })
	tl.Start("fast", Fade(time.Second, Linear), t0, func() { order = append(order, "fast") })
	require.Equal(t, 2, tl.Running())

	require.Zero(t, tl.Advance(t0.Add(500*time.Millisecond)))
	v, ok := tl.Value("fast", t0.Add(500*time.Millisecond))
	require.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-9)

	require.Equal(t, 2, tl.Advance(t0.Add(3*time.Second)))
	require.Equal(t, []string{"fast", "slow"}, order)
	require.Zero(t, tl.Advance(t0.Add(4*time.Second)))
	require.Zero(t, tl.Running())
	require.Equal(t, 1.0, tl.Progress("slow", t0.Add(4*time.Second)))
}

func TestTimelineCancel(t *testing.T) {
	t.Parallel()

	tl := NewTimeline()
	fired := 0
	tl.Start("a", Fade(time.Second, Linear), t0, func() { fired++ })
	tl.Start("b", Fade(time.Second, Linear), t0, func() { fired++ })
	require.True(t, tl.Cancel("a"))
	require.False(t, tl.Cancel("a"))
	tl.Advance(t0.Add(2 * time.Second))
	require.Equal(t, 1, fired)

	tl.Start("c", Fade(time.Second, Linear), t0, func() { fired++ })
	tl.CancelAll()
	tl.Advance(t0.Add(5 * time.Second))
	require.Equal(t, 1, fired)
	require.False(t, tl.Has("b"))
}

func TestTimelineCallbackCancelsSibling(t *testing.T) {
	t.Parallel()

	tl := NewTimeline()
	fired := []string{}
	tl.Start("first", Fade(time.Second, Linear), t0, func() {
		fired = append(fired, "first")
		tl.Cancel("second")
	})
	tl.Start("second", Fade(time.Second, Linear), t0, func() { fired = append(fired, "second") })
	tl.Advance(t0.Add(time.Second))
	require.Equal(t, []string{"first"}, fired)
}

func TestTimelineRestartReplaces(t *testing.T) {
	t.Parallel()

	tl := NewTimeline()
	fired := 0
	tl.Start("x", Fade(time.Second, Linear), t0, func() { fired += 10 })
	tl.Start("x", Fade(time.Second, Linear), t0.Add(time.Second), func() { fired++ })
	tl.Advance(t0.Add(1500 * time.Millisecond))
	require.Zero(t, fired)
	tl.Advance(t0.Add(2 * time.Second))
	require.Equal(t, 1, fired)
}
