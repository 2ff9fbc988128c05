package scene

// Ephemeral is the UI-only state of one mounted slide. A fresh value is
// created for every mount and dropped with it.
type Ephemeral struct {
	Reveal *Reveal
	Finale *Trigger
}

func NewEphemeral() *Ephemeral {
	return &Ephemeral{Reveal: NewReveal(), Finale: &Trigger{}}
}

// Reveal maps sub-item index to revealed. Absent entries are collapsed.
type Reveal struct {
	open map[int]bool
}

func NewReveal() *Reveal {
	return &Reveal{open: map[int]bool{}}
}

// Toggle flips entry i and returns its new state.
func (r *Reveal) Toggle(i int) bool {
	r.open[i] = !r.open[i]
	return r.open[i]
}

func (r *Reveal) Revealed(i int) bool { return r.open[i] }

// Count returns how many entries are revealed.
func (r *Reveal) Count() int {
	n := 0
	for _, v := range r.open {
		if v {
			n++
		}
	}
	return n
}

// Reset collapses every entry.
func (r *Reveal) Reset() {
	clear(r.open)
}

// Trigger is a one-shot false→true flag.
type Trigger struct {
	fired bool
}

// Fire sets the trigger. It reports true only for the call that set it.
func (t *Trigger) Fire() bool {
	if t.fired {
		return false
	}
	t.fired = true
	return true
}

func (t *Trigger) Fired() bool { return t.fired }
