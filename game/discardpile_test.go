package game

import (
	"testing"

	"github.com/minaorangina/lostcities/deck"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscardPileDisplay(t *testing.T) {
	cases := []struct {
		name     string
		ids      []int
		expected string
	}{
		{"empty", nil, " |  |  |  | "},
		{"one card", []int{32}, " |  | W7 |  | "},
		{"two cards", []int{0, 1}, "YB,YB |  |  |  | "},
		{"several colours", []int{59, 12, 23}, " | BB,B0 |  |  | R0"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := EmptyDiscardPile()
			for _, card := range cardsFromIDs(c.ids...) {
				p = p.With(card)
			}
			assert.Equal(t, c.expected, p.String())
		})
	}
}

func TestDiscardPile(t *testing.T) {
	t.Run("top of an empty pile", func(t *testing.T) {
		p := EmptyDiscardPile()
		for _, color := range deck.Colors() {
			_, err := p.Top(color)
			assert.Equal(t, ErrDiscardPileEmpty, err)
		}
	})

	t.Run("with then top", func(t *testing.T) {
		for _, card := range deck.AllCards() {
			top, err := EmptyDiscardPile().With(card).Top(card.Color())
			require.NoError(t, err)
			assert.Equal(t, card, top)
		}
	})

	t.Run("take from an empty pile", func(t *testing.T) {
		_, err := EmptyDiscardPile().Take(deck.FromID(39))

		var nerr *CardNotFoundError
		require.True(t, errors.As(err, &nerr))
		assert.Equal(t, deck.FromID(39), nerr.Card)
	})

	t.Run("take undoes with", func(t *testing.T) {
		p, err := EmptyDiscardPile().With(deck.FromID(0)).Take(deck.FromID(0))
		require.NoError(t, err)
		assert.Equal(t, EmptyDiscardPile(), p)

		two := EmptyDiscardPile().With(deck.FromID(0)).With(deck.FromID(5))
		one, err := two.Take(deck.FromID(5))
		require.NoError(t, err)
		assert.Equal(t, EmptyDiscardPile().With(deck.FromID(0)), one)
		assert.Equal(t, 2, two.Count(deck.Yellow))
	})

	t.Run("take pops by colour only", func(t *testing.T) {
		p := EmptyDiscardPile().With(deck.FromID(0)).With(deck.FromID(5))

		// asking for the buried card still removes the top one
		next, err := p.Take(deck.FromID(0))
		require.NoError(t, err)
		assert.Equal(t, cardsFromIDs(0), next.Cards(deck.Yellow))
	})

	t.Run("other colours are shared", func(t *testing.T) {
		p := EmptyDiscardPile().With(deck.FromID(30))
		next := p.With(deck.FromID(45))

		assert.Same(t, p.piles[deck.White], next.piles[deck.White])
		assert.NotSame(t, p.piles[deck.Green], next.piles[deck.Green])
		assert.Zero(t, p.Count(deck.Green))
	})
}
