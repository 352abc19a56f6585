package game

import (
	"math/bits"

	"github.com/minaorangina/lostcities/deck"
)

// HandSize is the number of cards a hand holds between turns
const HandSize = 8

// Hand is the set of cards one side holds. It is a value over a bit set
// indexed by card id, so copies never alias.
type Hand struct {
	side  Side
	cards uint64
}

// NewHand deals HandSize cards from the top of d
func NewHand(side Side, d *deck.Deck) (*Hand, *deck.Deck, error) {
	if d.RemainingCount() < HandSize {
		return nil, d, ErrDeckExhausted
	}

	h := &Hand{side: side}
	for i := 0; i < HandSize; i++ {
		card, rest, _ := d.Take()
		h.cards |= bit(card)
		d = rest
	}
	return h, d, nil
}

// HandFromCards builds a hand holding exactly the given cards
func HandFromCards(side Side, cards ...deck.Card) (*Hand, error) {
	h := &Hand{side: side}
	for _, c := range cards {
		next, err := h.With(c)
		if err != nil {
			return nil, err
		}
		h = next
	}
	return h, nil
}

// Take removes card from the hand
func (h *Hand) Take(card deck.Card) (*Hand, error) {
	if !h.Has(card) {
		return nil, &CardNotFoundError{Card: card}
	}
	return &Hand{side: h.side, cards: h.cards &^ bit(card)}, nil
}

// With adds card to the hand
func (h *Hand) With(card deck.Card) (*Hand, error) {
	if h.Len() >= HandSize {
		return nil, ErrHandFull
	}
	if h.Has(card) {
		return nil, &DuplicateCardError{Card: card}
	}
	return &Hand{side: h.side, cards: h.cards | bit(card)}, nil
}

func (h *Hand) Has(card deck.Card) bool {
	return h.cards&bit(card) != 0
}

// Find returns a held card of the given colour and value. When several
// bets match, the lowest id is returned.
func (h *Hand) Find(color deck.Color, value deck.Value) (deck.Card, bool) {
	for _, c := range deck.Lookup(color, value) {
		if h.Has(c) {
			return c, true
		}
	}
	return 0, false
}

func (h *Hand) Len() int {
	return bits.OnesCount64(h.cards)
}

func (h *Hand) Side() Side {
	return h.side
}

// Cards returns the held cards ordered by id
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, 0, h.Len())
	for set := h.cards; set != 0; set &= set - 1 {
		cards = append(cards, deck.Card(bits.TrailingZeros64(set)))
	}
	return cards
}

// Set returns the held cards as a set
func (h *Hand) Set() map[deck.Card]struct{} {
	return cardSliceToSet(h.Cards())
}

// String lists the cards by id, e.g. "Y5, B2, B4, W7, GB, RB, R5, R7"
func (h *Hand) String() string {
	return joinCards(h.Cards(), ", ")
}

func bit(card deck.Card) uint64 {
	return 1 << uint(card)
}
