package presentation

import "github.com/jask/slides/internal/deck"

// State is passed to the dispatcher and the renderer instead of living in
// package globals. The Controller writes the index; CompleteIntro is the only
// writer of the intro flag.
type State struct {
	*Controller
	introActive bool
}

// Option configures a State.
type Option func(*State)

// WithSkipIntro starts the presentation with the intro already completed.
func WithSkipIntro(skip bool) Option {
	return func(s *State) {
		if skip {
			s.introActive = false
		}
	}
}

func NewState(d deck.Deck, opts ...Option) *State {
	s := &State{Controller: NewController(d), introActive: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IntroActive reports whether the intro still blocks input.
func (s *State) IntroActive() bool { return s.introActive }

// CompleteIntro clears the intro flag. It reports true only for the call that
// performed the flip.
func (s *State) CompleteIntro() bool {
	if !s.introActive {
		return false
	}
	s.introActive = false
	return true
}
