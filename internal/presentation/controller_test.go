package presentation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/slides/internal/deck"
)

func deckOf(n int) deck.Deck {
	slides := make([]deck.Slide, n)
	for i := range slides {
		slides[i] = deck.Slide{ID: i + 1, Type: deck.TypeTitle, Layout: &deck.TitleLayout{}}
	}
	return deck.New(slides)
}

func TestWrapAround(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		c := NewController(deckOf(n))
		for i := 0; i < n-1; i++ {
			c.Next()
		}
		require.Equal(t, n-1, c.Index())
		c.Next()
		require.Equal(t, 0, c.Index(), "next at last wraps, n=%d", n)
		c.Prev()
		require.Equal(t, n-1, c.Index(), "prev at first wraps, n=%d", n)
	}
}

func TestNextPrevRoundTrip(t *testing.T) {
	t.Parallel()

	const n = 5
	for start := 0; start < n; start++ {
		c := NewController(deckOf(n))
		for i := 0; i < start; i++ {
			c.Next()
		}
		c.Next()
		c.Prev()
		require.Equal(t, start, c.Index())
		c.Prev()
		c.Next()
		require.Equal(t, start, c.Index())
	}
}

func TestEmptyDeck(t *testing.T) {
	t.Parallel()

	c := NewController(deck.New(nil))
	c.Next()
	c.Prev()
	require.Equal(t, 0, c.Index())
	_, ok := c.Current()
	require.False(t, ok)
	pos, total := c.Position()
	require.Zero(t, pos)
	require.Zero(t, total)
}

func TestCurrentAndPosition(t *testing.T) {
	t.Parallel()

	c := NewController(deckOf(3))
	c.Next()
	s, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, 2, s.ID)
	pos, total := c.Position()
	require.Equal(t, 2, pos)
	require.Equal(t, 3, total)
}

func TestCompleteIntroFlipsOnce(t *testing.T) {
	t.Parallel()

	s := NewState(deckOf(2))
	require.True(t, s.IntroActive())
	require.True(t, s.CompleteIntro())
	require.False(t, s.IntroActive())
	require.False(t, s.CompleteIntro())
	require.False(t, s.IntroActive())
}

func TestSkipIntro(t *testing.T) {
	t.Parallel()

	s := NewState(deckOf(2), WithSkipIntro(true))
	require.False(t, s.IntroActive())
	require.False(t, s.CompleteIntro())

	s = NewState(deckOf(2), WithSkipIntro(false))
	require.True(t, s.IntroActive())
}
