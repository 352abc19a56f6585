package game

import (
	"testing"

	"github.com/minaorangina/lostcities/deck"
	"github.com/stretchr/testify/require"
)

const fixedSeed = 41025

func testRng() deck.Source {
	return deck.NewXoshiro(fixedSeed)
}

func cardsFromIDs(ids ...int) []deck.Card {
	cards := []deck.Card{}
	for _, id := range ids {
		cards = append(cards, deck.FromID(id))
	}
	return cards
}

func handOf(t *testing.T, side Side, ids ...int) *Hand {
	t.Helper()
	h, err := HandFromCards(side, cardsFromIDs(ids...)...)
	require.NoError(t, err)
	return h
}

func scored(t *testing.T, b *Board, side Side, ids ...int) *Board {
	t.Helper()
	for _, c := range cardsFromIDs(ids...) {
		next, err := b.ScoreCard(side, c)
		require.NoError(t, err)
		b = next
	}
	return b
}
