package game

import "github.com/minaorangina/lostcities/deck"

// Board is both halfboards and the shared discard pile
type Board struct {
	halves  [NumSides]*Halfboard
	discard *DiscardPile
}

func NewBoard() *Board {
	return &Board{
		halves:  [NumSides]*Halfboard{NewHalfboard(Up), NewHalfboard(Down)},
		discard: EmptyDiscardPile(),
	}
}

// Play sends card to side's expedition or to the discard pile
func (b *Board) Play(side Side, card deck.Card, playTo PlayTo) (*Board, error) {
	if playTo == ToDiscard {
		return b.DiscardCard(card), nil
	}
	return b.ScoreCard(side, card)
}

// ScoreCard plays card onto side's expedition of the card's colour
func (b *Board) ScoreCard(side Side, card deck.Card) (*Board, error) {
	half, err := b.Half(side).With(card)
	if err != nil {
		return nil, err
	}
	next := &Board{halves: b.halves, discard: b.discard}
	next.halves[side] = half
	return next, nil
}

func (b *Board) DiscardCard(card deck.Card) *Board {
	return &Board{halves: b.halves, discard: b.discard.With(card)}
}

// Take reclaims the top card of card's colour from the discard pile
func (b *Board) Take(card deck.Card) (*Board, error) {
	discard, err := b.discard.Take(card)
	if err != nil {
		return nil, err
	}
	return &Board{halves: b.halves, discard: discard}, nil
}

func (b *Board) Half(side Side) *Halfboard {
	return b.halves[side]
}

func (b *Board) DiscardPile() *DiscardPile {
	return b.discard
}

// String draws Up's halfboard, the discard pile, then Down's halfboard
func (b *Board) String() string {
	return b.Half(Up).String() + "\n" +
		b.discard.String() + "\n" +
		b.Half(Down).String()
}
