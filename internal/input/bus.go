// Package input turns device events into navigation.
//
// Allowed here:
// - the event bus and its subscriptions
// - gating on the intro flag, key mapping, the wheel cooldown
//
// Not allowed here:
// - terminal specifics (the shell converts its messages into events)
// - reading the wall clock; events carry their own time
package input

import (
	"sort"
	"time"
)

// KeyEvent is a key press, named the way bubbletea names keys ("down",
// "ctrl+c").
type KeyEvent struct {
	Key string
	At  time.Time
}

func (e KeyEvent) String() string { return e.Key }

// WheelEvent is one wheel notch. Positive Delta scrolls down.
type WheelEvent struct {
	Delta int
	At    time.Time
}

// Bus fans device events out to subscribers in subscription order.
type Bus struct {
	seq    int
	keys   map[int]func(KeyEvent)
	wheels map[int]func(WheelEvent)
}

func NewBus() *Bus {
	return &Bus{keys: map[int]func(KeyEvent){}, wheels: map[int]func(WheelEvent){}}
}

// OnKey subscribes fn to key events. The returned func unsubscribes; calling
// it again does nothing.
func (b *Bus) OnKey(fn func(KeyEvent)) func() {
	b.seq++
	id := b.seq
	b.keys[id] = fn
	return func() { delete(b.keys, id) }
}

// OnWheel subscribes fn to wheel events.
func (b *Bus) OnWheel(fn func(WheelEvent)) func() {
	b.seq++
	id := b.seq
	b.wheels[id] = fn
	return func() { delete(b.wheels, id) }
}

func (b *Bus) PublishKey(ev KeyEvent) {
	for _, id := range sortedIDs(b.keys) {
		if fn, ok := b.keys[id]; ok {
			fn(ev)
		}
	}
}

func (b *Bus) PublishWheel(ev WheelEvent) {
	for _, id := range sortedIDs(b.wheels) {
		if fn, ok := b.wheels[id]; ok {
			fn(ev)
		}
	}
}

// Subscribers counts live subscriptions of both kinds.
func (b *Bus) Subscribers() int { return len(b.keys) + len(b.wheels) }

func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
