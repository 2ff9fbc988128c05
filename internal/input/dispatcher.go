package input

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"go.uber.org/zap"
)

// DefaultWheelCooldown is the minimum time between wheel navigations.
const DefaultWheelCooldown = 1200 * time.Millisecond

// State is what the dispatcher drives. presentation.State satisfies it.
type State interface {
	Next()
	Prev()
	IntroActive() bool
}

// Direction of a navigation.
type Direction int

const (
	Forward Direction = iota + 1
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "prev"
	}
	return "next"
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithWheelCooldown overrides DefaultWheelCooldown. Non-positive values
// disable the cooldown.
func WithWheelCooldown(d time.Duration) Option {
	return func(ds *Dispatcher) { ds.cooldown = max(0, d) }
}

func WithKeyMap(k KeyMap) Option {
	return func(ds *Dispatcher) { ds.keys = k }
}

// WithOnNavigate registers a hook run after every navigation.
func WithOnNavigate(fn func(Direction)) Option {
	return func(ds *Dispatcher) { ds.onNavigate = fn }
}

func WithLogger(l *zap.Logger) Option {
	return func(ds *Dispatcher) {
		if l != nil {
			ds.log = l
		}
	}
}

// Dispatcher subscribes to the bus only while the intro is over. Input that
// arrives while it is unsubscribed is lost, not queued.
type Dispatcher struct {
	bus        *Bus
	state      State
	keys       KeyMap
	cooldown   time.Duration
	onNavigate func(Direction)
	log        *zap.Logger

	unsubscribe []func()
	lastWheel   time.Time
	wheeled     bool
}

// New returns a dispatcher and syncs it with state.
func New(bus *Bus, state State, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		bus:      bus,
		state:    state,
		keys:     DefaultKeyMap(),
		cooldown: DefaultWheelCooldown,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.Sync()
	return d
}

// Sync subscribes when the intro is over and unsubscribes while it is
// active. Repeated calls never add a second subscription.
func (d *Dispatcher) Sync() {
	active := !d.state.IntroActive()
	switch {
	case active && !d.Active():
		d.unsubscribe = append(d.unsubscribe, d.bus.OnKey(d.handleKey), d.bus.OnWheel(d.handleWheel))
		d.log.Debug("input subscribed")
	case !active && d.Active():
		d.Close()
	}
}

// Active reports whether the dispatcher holds subscriptions.
func (d *Dispatcher) Active() bool { return len(d.unsubscribe) > 0 }

// Close releases every subscription.
func (d *Dispatcher) Close() {
	if !d.Active() {
		return
	}
	for _, fn := range d.unsubscribe {
		fn()
	}
	d.unsubscribe = nil
	d.log.Debug("input released")
}

// KeyMap returns the bindings in use, for help rendering.
func (d *Dispatcher) KeyMap() KeyMap { return d.keys }

func (d *Dispatcher) handleKey(ev KeyEvent) {
	switch {
	case key.Matches(ev, d.keys.Next):
		d.navigate(Forward)
	case key.Matches(ev, d.keys.Prev):
		d.navigate(Backward)
	}
}

// handleWheel navigates unless the last wheel navigation is less than the
// cooldown ago. Dropped events do not extend the window.
func (d *Dispatcher) handleWheel(ev WheelEvent) {
	if ev.Delta == 0 {
		return
	}
	if d.wheeled && ev.At.Sub(d.lastWheel) < d.cooldown {
		return
	}
	if ev.Delta > 0 {
		d.navigate(Forward)
	} else {
		d.navigate(Backward)
	}
	d.lastWheel, d.wheeled = ev.At, true
}

func (d *Dispatcher) navigate(dir Direction) {
	if dir == Forward {
		d.state.Next()
	} else {
		d.state.Prev()
	}
	d.log.Debug("navigate", zap.Stringer("direction", dir))
	if d.onNavigate != nil {
		d.onNavigate(dir)
	}
}
