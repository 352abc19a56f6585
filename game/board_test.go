package game

import (
	"testing"

	"github.com/minaorangina/lostcities/deck"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	t.Run("play routes to the expedition", func(t *testing.T) {
		b, err := NewBoard().Play(Up, deck.FromID(15), ToExpedition)
		require.NoError(t, err)

		assert.True(t, b.Half(Up).Expedition(deck.Blue).Has(deck.FromID(15)))
		assert.Zero(t, b.Half(Down).Count())
		assert.Zero(t, b.DiscardPile().Count(deck.Blue))
	})

	t.Run("play routes to the discard pile", func(t *testing.T) {
		b, err := NewBoard().Play(Down, deck.FromID(15), ToDiscard)
		require.NoError(t, err)

		assert.Zero(t, b.Half(Up).Count())
		assert.Zero(t, b.Half(Down).Count())
		assert.Equal(t, 1, b.DiscardPile().Count(deck.Blue))
	})

	t.Run("rejected scores propagate", func(t *testing.T) {
		b := scored(t, NewBoard(), Down, 30)
		_, err := b.Play(Down, deck.FromID(29), ToExpedition)

		var cerr *CannotAcceptError
		assert.True(t, errors.As(err, &cerr))

		// the other side's expedition is unaffected
		_, err = b.Play(Up, deck.FromID(29), ToExpedition)
		assert.NoError(t, err)
	})

	t.Run("discard then take is a round trip", func(t *testing.T) {
		for _, start := range []*Board{NewBoard(), scored(t, NewBoard(), Up, 0, 20)} {
			b, err := start.DiscardCard(deck.FromID(44)).Take(deck.FromID(44))
			require.NoError(t, err)
			assert.Equal(t, start, b)
		}
	})

	t.Run("take from an empty discard pile", func(t *testing.T) {
		_, err := NewBoard().Take(deck.FromID(3))
		var nerr *CardNotFoundError
		assert.True(t, errors.As(err, &nerr))
	})

	t.Run("untouched parts are shared", func(t *testing.T) {
		b := NewBoard()
		afterScore := scored(t, b, Up, 15)
		assert.Same(t, b.Half(Down), afterScore.Half(Down))
		assert.Same(t, b.DiscardPile(), afterScore.DiscardPile())

		afterDiscard := afterScore.DiscardCard(deck.FromID(2))
		assert.Same(t, afterScore.Half(Up), afterDiscard.Half(Up))
		assert.Same(t, afterScore.Half(Down), afterDiscard.Half(Down))
	})

	t.Run("display", func(t *testing.T) {
		empty := "   |    |    |    |   "
		assert.Equal(t, empty+"\n |  |  |  | \n"+empty, NewBoard().String())

		b := scored(t, NewBoard(), Down, 59).DiscardCard(deck.FromID(32))
		assert.Equal(t, empty+"\n |  | W7 |  | \n   |    |    |    | R0", b.String())
	})
}
