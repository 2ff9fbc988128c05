// Package presentation owns the navigation index and the intro gate flag.
//
// Allowed here:
// - index arithmetic over a deck of any length
// - the explicit state container shared by input and rendering
//
// Not allowed here:
// - device events, timing, or drawing
package presentation

import "github.com/jask/slides/internal/deck"

// Controller is the single writer of the current slide index.
type Controller struct {
	deck  deck.Deck
	index int
}

func NewController(d deck.Deck) *Controller {
	return &Controller{deck: d}
}

// Next advances one slide, wrapping from the last slide to the first.
func (c *Controller) Next() {
	n := c.deck.Len()
	if n == 0 {
		return
	}
	c.index = (c.index + 1) % n
}

// Prev steps back one slide, wrapping from the first slide to the last.
func (c *Controller) Prev() {
	n := c.deck.Len()
	if n == 0 {
		return
	}
	c.index = (c.index - 1 + n) % n
}

// Current returns the active record; ok is false for an empty deck.
func (c *Controller) Current() (deck.Slide, bool) {
	return c.deck.At(c.index)
}

func (c *Controller) Index() int { return c.index }
func (c *Controller) Len() int   { return c.deck.Len() }

// Position returns the 1-based position and the total, or (0, 0) for an empty deck.
func (c *Controller) Position() (int, int) {
	n := c.deck.Len()
	if n == 0 {
		return 0, 0
	}
	return c.index + 1, n
}

// Deck returns the deck being presented.
func (c *Controller) Deck() deck.Deck { return c.deck }
