// Package intro is the gate in front of the deck: a building rises, and a
// click on its doors opens them and zooms through into the presentation.
//
// Allowed here:
// - the closed → opening → opened state machine and its choreography
// - drawing the intro scene and hit-testing the doors
//
// Not allowed here:
// - flipping the presentation's intro flag (the completion hook's owner does)
// - reading the wall clock
package intro

import (
	"time"

	"github.com/jask/slides/internal/anim"
)

// Phase is where the gate is in its one-way sequence.
type Phase int

const (
	Closed Phase = iota
	Opening
	Opened
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Opened:
		return "opened"
	default:
		return "unknown"
	}
}

// Choreography timings.
const (
	RiseDuration = time.Second
	HintDelay    = 1500 * time.Millisecond
	DoorDuration = 1500 * time.Millisecond
	ZoomDelay    = time.Second
	ZoomDuration = 1500 * time.Millisecond
)

// DoorTravel is how far each door slides, in view box units.
const DoorTravel = 85.0

// ZoomScale is the scene's scale once the zoom finishes.
const ZoomScale = 12.0

const DefaultSign = "JSS HOSPITAL"

const (
	doorsID = "doors"
	zoomID  = "zoom"
)

// Option configures a Gate.
type Option func(*Gate)

// WithSign sets the name written across the building.
func WithSign(sign string) Option {
	return func(g *Gate) {
		if sign != "" {
			g.sign = sign
		}
	}
}

// Gate is the intro state machine. onOpened runs once, from Advance, after
// the whole opening sequence has finished.
type Gate struct {
	phase    Phase
	mounted  bool
	mountAt  time.Time
	openAt   time.Time
	timeline *anim.Timeline
	onOpened func()
	sign     string

	// door area of the last View, in cells
	doors rect
}

func New(onOpened func(), opts ...Option) *Gate {
	g := &Gate{timeline: anim.NewTimeline(), onOpened: onOpened, sign: DefaultSign}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gate) Phase() Phase { return g.phase }

// Mount starts the building's rise. Later calls keep the first mount time.
func (g *Gate) Mount(now time.Time) {
	if g.mounted {
		return
	}
	g.mounted = true
	g.mountAt = now
}

// Click opens the doors. Only the first click while closed does anything.
func (g *Gate) Click(now time.Time) bool {
	if g.phase != Closed {
		return false
	}
	g.Mount(now)
	g.phase = Opening
	g.openAt = now
	g.timeline.Start(doorsID, anim.Tween(0, DoorTravel, DoorDuration, anim.EaseInOut), now, nil)
	g.timeline.Start(zoomID, anim.Fade(ZoomDuration, anim.EaseInOut).After(ZoomDelay), now, g.finish)
	return true
}

// OpeningDuration is the time from the click to the completion hook.
func OpeningDuration() time.Duration {
	return max(DoorDuration, ZoomDelay+ZoomDuration)
}

func (g *Gate) finish() {
	g.phase = Opened
	if g.onOpened != nil {
		g.onOpened()
	}
}

// Advance runs due choreography callbacks.
func (g *Gate) Advance(now time.Time) {
	g.timeline.Advance(now)
}

// HitDoors reports whether cell (x, y) lies on the doors as last drawn.
func (g *Gate) HitDoors(x, y int) bool {
	return g.doors.contains(x, y)
}
