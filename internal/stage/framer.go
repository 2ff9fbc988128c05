package stage

import (
	"time"

	"github.com/jask/slides/internal/anim"
	"github.com/jask/slides/internal/scene"
)

// framer answers scene.Framer for one mount at one instant. clock is where
// entrances are evaluated: now, or the exit time once the mount is leaving so
// that cancelled entrances stay where they stopped.
//
// Elements present in the mount's first frame enter from the mount time, even
// when that frame is drawn late. Elements that show up afterwards (revealed
// solutions, the finale curtain) enter from the frame that first draws them.
type framer struct {
	m     *mount
	now   time.Time
	clock time.Time
	fade  float64
}

func (fr *framer) Frame(el *scene.Element, width, height int) scene.Frame {
	m := fr.m
	seen, ok := m.firstSeen[el.Key]
	if !ok {
		seen = fr.clock
		if !m.drawn {
			seen = m.at
		}
		m.firstSeen[el.Key] = seen
	}
	f := scene.Frame{
		Now:        fr.now,
		Since:      fr.clock.Sub(seen),
		Mounted:    fr.clock.Sub(m.at),
		Fade:       fr.fade,
		Width:      width,
		Height:     height,
		Background: m.slide.Background(),
	}
	f = f.With(el.Entrance())
	if el.Counter != nil {
		c, ok := m.counters[el.Key]
		if !ok {
			c = anim.NewCounter(el.Counter.From, el.Counter.To, el.Counter.Duration)
			if m.exiting {
				c.Stop(fr.now)
			}
			m.counters[el.Key] = c
		}
		f.Count = c.Value(fr.now)
	}
	return f
}
