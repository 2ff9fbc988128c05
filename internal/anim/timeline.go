package anim

import (
	"sort"
	"time"
)

// Timeline schedules specs against a clock that the owner advances. Each
// started spec may carry a completion callback that fires exactly once, from
// Advance, unless the spec is cancelled first.
type Timeline struct {
	entries map[string]*entry
	seq     int
}

type entry struct {
	spec      Spec
	start     time.Time
	done      func()
	seq       int
	fired     bool
	cancelled bool
}

func NewTimeline() *Timeline {
	return &Timeline{entries: map[string]*entry{}}
}

// Start schedules spec under id beginning at. An existing entry with the same
// id is replaced without firing its callback.
func (t *Timeline) Start(id string, spec Spec, at time.Time, done func()) {
	if old, ok := t.entries[id]; ok {
		old.cancelled = true
	}
	t.seq++
	t.entries[id] = &entry{spec: spec, start: at, done: done, seq: t.seq}
}

// Advance fires the callbacks of every spec finished by now, ordered by finish
// time. It returns how many callbacks ran.
func (t *Timeline) Advance(now time.Time) int {
	var due []*entry
	for _, e := range t.entries {
		if !e.fired && !now.Before(e.start.Add(e.spec.Total())) {
			due = append(due, e)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		fi := due[i].start.Add(due[i].spec.Total())
		fj := due[j].start.Add(due[j].spec.Total())
		if !fi.Equal(fj) {
			return fi.Before(fj)
		}
		return due[i].seq < due[j].seq
	})
	fired := 0
	for _, e := range due {
		// an earlier callback may have cancelled this entry
		if e.cancelled || e.fired {
			continue
		}
		e.fired = true
		if e.done != nil {
			fired++
			e.done()
		}
	}
	return fired
}

// Value returns the spec's value at now. ok is false for unknown ids.
func (t *Timeline) Value(id string, now time.Time) (float64, bool) {
	e, ok := t.entries[id]
	if !ok {
		return 0, false
	}
	return e.spec.Value(now.Sub(e.start)), true
}

// Progress returns eased progress for id, or 0 when id is unknown.
func (t *Timeline) Progress(id string, now time.Time) float64 {
	e, ok := t.entries[id]
	if !ok {
		return 0
	}
	if e.spec.Done(now.Sub(e.start)) {
		return 1
	}
	return e.spec.Progress(now.Sub(e.start))
}

func (t *Timeline) Has(id string) bool {
	_, ok := t.entries[id]
	return ok
}

// Cancel drops id; its callback will never fire.
func (t *Timeline) Cancel(id string) bool {
	e, ok := t.entries[id]
	if !ok {
		return false
	}
	e.cancelled = true
	delete(t.entries, id)
	return true
}

// CancelAll drops every entry.
func (t *Timeline) CancelAll() {
	for id, e := range t.entries {
		e.cancelled = true
		delete(t.entries, id)
	}
}

// Running counts entries whose completion has not fired yet.
func (t *Timeline) Running() int {
	n := 0
	for _, e := range t.entries {
		if !e.fired {
			n++
		}
	}
	return n
}
