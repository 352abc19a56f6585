package game

import (
	"strings"

	"github.com/minaorangina/lostcities/deck"
)

// DiscardPile holds one stack per colour. Each stack is shared with every
// DiscardPile derived from it until that colour is touched.
type DiscardPile struct {
	piles [deck.NumColors]*pile
}

type pile struct {
	cards []deck.Card
}

var emptyPile = &pile{}

func EmptyDiscardPile() *DiscardPile {
	p := &DiscardPile{}
	for _, color := range deck.Colors() {
		p.piles[color] = emptyPile
	}
	return p
}

// With discards card onto the stack of its colour. Discarding never fails.
func (p *DiscardPile) With(card deck.Card) *DiscardPile {
	old := p.piles[card.Color()].cards
	next := &DiscardPile{piles: p.piles}
	next.piles[card.Color()] = &pile{cards: append(old[:len(old):len(old)], card)}
	return next
}

// Top returns the card on top of color's stack without removing it
func (p *DiscardPile) Top(color deck.Color) (deck.Card, error) {
	cards := p.piles[color].cards
	if len(cards) == 0 {
		return 0, ErrDiscardPileEmpty
	}
	return cards[len(cards)-1], nil
}

// Take pops the top of card's colour stack. Only the colour of card is
// used: whatever is on top is removed, whether or not it equals card.
// Callers peek with Top first.
func (p *DiscardPile) Take(card deck.Card) (*DiscardPile, error) {
	cards := p.piles[card.Color()].cards
	if len(cards) == 0 {
		return nil, &CardNotFoundError{Card: card}
	}

	next := &DiscardPile{piles: p.piles}
	if len(cards) == 1 {
		next.piles[card.Color()] = emptyPile
	} else {
		next.piles[card.Color()] = &pile{cards: cards[:len(cards)-1]}
	}
	return next, nil
}

// Count returns the number of cards in color's stack
func (p *DiscardPile) Count(color deck.Color) int {
	return len(p.piles[color].cards)
}

// Cards returns a copy of color's stack, bottom first
func (p *DiscardPile) Cards(color deck.Color) []deck.Card {
	return append([]deck.Card{}, p.piles[color].cards...)
}

// String lists each colour's stack bottom first, e.g. "YB,YB |  | W7 |  | "
func (p *DiscardPile) String() string {
	groups := make([]string, 0, deck.NumColors)
	for _, pl := range p.piles {
		groups = append(groups, joinCards(pl.cards, ","))
	}
	return strings.Join(groups, " | ")
}
