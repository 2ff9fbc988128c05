// Package stage mounts slides and draws them over time.
//
// Allowed here:
// - mounts keyed by slide id, with their ephemeral state, timeline and counters
// - wait-mode transitions: the outgoing slide finishes its exit before the
//   incoming one mounts
// - click routing and unknown-tag diagnostics
//
// Not allowed here:
// - choosing what a slide type shows (layouts does)
// - navigation state or reading the wall clock
package stage

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/slides/internal/anim"
	"github.com/jask/slides/internal/deck"
	"github.com/jask/slides/internal/layouts"
	"github.com/jask/slides/internal/scene"
	"github.com/jask/slides/internal/widgets"
)

// DefaultExitDuration is how long an outgoing slide fades out.
const DefaultExitDuration = 400 * time.Millisecond

const (
	exitID   = "exit"
	settleID = "settle"
)

// Option configures a Stage.
type Option func(*Stage)

// WithLogger sets the diagnostic channel. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Stage) {
		if l != nil {
			s.log = l
		}
	}
}

// WithExitDuration overrides the exit fade length.
func WithExitDuration(d time.Duration) Option {
	return func(s *Stage) {
		if d > 0 {
			s.exit = d
		}
	}
}

// WithOnSettled registers a hook run once a mount's entrance animations
// have all finished. It never runs for a mount left before that.
func WithOnSettled(fn func(deck.Slide)) Option {
	return func(s *Stage) { s.onSettled = fn }
}

// Stage owns at most one mount at a time, plus the slide waiting to replace it.
type Stage struct {
	log       *zap.Logger
	exit      time.Duration
	onSettled func(deck.Slide)

	current *mount
	pending *deck.Slide
	warned  map[int]bool

	// from the last View, for click routing
	scene   scene.Scene
	regions []scene.Region
}

func New(opts ...Option) *Stage {
	s := &Stage{log: zap.NewNop(), exit: DefaultExitDuration, warned: map[int]bool{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// mount is one appearance of a slide. Everything in it is dropped when the
// slide leaves.
type mount struct {
	token     string
	slide     deck.Slide
	at        time.Time
	timeline  *anim.Timeline
	eph       *scene.Ephemeral
	firstSeen map[string]time.Time
	counters  map[string]*anim.Counter
	// drawn is set once the mount has rendered a frame.
	drawn bool

	exiting bool
	exitAt  time.Time
	exited  bool
	settled bool
}

// Show asks for s to be on stage. The same slide id keeps its mount. A
// different id starts the exit of the current mount; s mounts once that exit
// completes. Calls during an exit replace the waiting slide.
func (s *Stage) Show(sl deck.Slide, now time.Time) {
	m := s.current
	switch {
	case m == nil:
		s.mount(sl, now)
	case m.exiting:
		s.pending = &sl
	case m.slide.ID == sl.ID:
		s.pending = nil
	default:
		s.pending = &sl
		s.beginExit(now)
	}
}

// Advance runs due timeline callbacks and mounts the waiting slide once the
// exit has finished.
func (s *Stage) Advance(now time.Time) {
	m := s.current
	if m == nil {
		return
	}
	m.timeline.Advance(now)
	if !m.exited {
		return
	}
	next := s.pending
	s.pending = nil
	s.current = nil
	s.regions = nil
	if next != nil {
		s.mount(*next, now)
	}
}

// Current returns the mounted slide, which may be exiting.
func (s *Stage) Current() (deck.Slide, bool) {
	if s.current == nil {
		return deck.Slide{}, false
	}
	return s.current.slide, true
}

// Pending returns the slide waiting for the exit to finish.
func (s *Stage) Pending() (deck.Slide, bool) {
	if s.pending == nil {
		return deck.Slide{}, false
	}
	return *s.pending, true
}

func (s *Stage) Exiting() bool { return s.current != nil && s.current.exiting }

// Settled reports whether the current mount finished its entrance.
func (s *Stage) Settled() bool { return s.current != nil && s.current.settled }

// Token identifies the current mount; each mount gets a fresh one.
func (s *Stage) Token() string {
	if s.current == nil {
		return ""
	}
	return s.current.token
}

// Ephemeral returns the current mount's UI state.
func (s *Stage) Ephemeral() *scene.Ephemeral {
	if s.current == nil {
		return nil
	}
	return s.current.eph
}

func (s *Stage) mount(sl deck.Slide, now time.Time) {
	m := &mount{
		token:     uuid.NewString(),
		slide:     sl,
		at:        now,
		timeline:  anim.NewTimeline(),
		eph:       scene.NewEphemeral(),
		firstSeen: map[string]time.Time{},
		counters:  map[string]*anim.Counter{},
	}
	s.current = m
	s.scene = scene.Scene{}
	s.regions = nil

	log := s.log.With(zap.Int("slide", sl.ID), zap.String("mount", m.token))
	if sl.Layout == nil {
		s.warnUnknown(sl, log)
	}
	log.Debug("slide mounted", zap.String("type", string(sl.Type)))

	var longest time.Duration
	for _, el := range elements(layouts.Build(sl, m.eph)) {
		longest = max(longest, el.Entrance().Total())
	}
	m.timeline.Start(settleID, anim.Tween(0, 1, longest, anim.Linear), now, func() {
		m.settled = true
		log.Debug("slide settled")
		if s.onSettled != nil {
			s.onSettled(sl)
		}
	})
}

// warnUnknown reports a slide without a known layout, once per slide id.
func (s *Stage) warnUnknown(sl deck.Slide, log *zap.Logger) {
	if s.warned[sl.ID] {
		return
	}
	s.warned[sl.ID] = true
	fields := []zap.Field{zap.String("type", string(sl.Type))}
	if sug, ok := deck.Suggest(string(sl.Type)); ok {
		fields = append(fields, zap.String("suggestion", string(sug)))
	}
	log.Warn(deck.UnknownTagMessage(sl.Type), fields...)
}

// beginExit cancels everything the current mount had in flight and fades it
// out. Counters freeze where they are.
func (s *Stage) beginExit(now time.Time) {
	m := s.current
	m.timeline.CancelAll()
	for _, c := range m.counters {
		c.Stop(now)
	}
	m.exiting = true
	m.exitAt = now
	m.timeline.Start(exitID, anim.Tween(1, 0, s.exit, anim.EaseIn), now, func() {
		m.exited = true
	})
	s.log.Debug("slide exiting", zap.Int("slide", m.slide.ID), zap.String("mount", m.token))
}

// View draws the current mount into width×height cells.
func (s *Stage) View(width, height int, now time.Time) string {
	m := s.current
	if m == nil {
		return widgets.Fit("", width, height)
	}
	fr := &framer{m: m, now: now, clock: now, fade: 1}
	if m.exiting {
		fr.clock = m.exitAt
		if v, ok := m.timeline.Value(exitID, now); ok {
			fr.fade = anim.Clamp01(v)
		}
	}
	sc := layouts.Build(m.slide, m.eph)
	out, regions := sc.Render(width, height, fr)
	s.scene, s.regions = sc, regions
	m.drawn = true

	if !m.exiting {
		for _, r := range regions {
			if c, ok := m.counters[r.Key]; ok && r.Counter {
				c.Observe(r.Visible, now)
			}
		}
	}
	keep := map[string]bool{}
	for _, k := range sc.Keys() {
		keep[k] = true
	}
	for k := range m.firstSeen {
		if !keep[k] {
			delete(m.firstSeen, k)
		}
	}
	return out
}

// Click routes a press at cell (x, y) of the last view. Element handlers win
// over the scene's background handler. Exiting slides ignore clicks.
func (s *Stage) Click(x, y int) bool {
	m := s.current
	if m == nil || m.exiting {
		return false
	}
	if r, ok := scene.HitTest(s.regions, x, y); ok {
		r.OnClick(m.eph)
		return true
	}
	if s.scene.OnClick != nil {
		s.scene.OnClick(m.eph)
		return true
	}
	return false
}

func elements(sc scene.Scene) []scene.Element {
	var out []scene.Element
	for _, sec := range sc.Sections {
		out = append(out, sec.Elements...)
	}
	if sc.Overlay != nil {
		out = append(out, *sc.Overlay)
	}
	return out
}
