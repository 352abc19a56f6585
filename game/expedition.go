package game

import "github.com/minaorangina/lostcities/deck"

// Expedition is the ascending pile of one colour played by one side.
// It is immutable; With returns a new Expedition.
type Expedition struct {
	color deck.Color
	cards []deck.Card
}

func NewExpedition(color deck.Color) *Expedition {
	return &Expedition{color: color}
}

// With plays card on top of the expedition
func (e *Expedition) With(card deck.Card) (*Expedition, error) {
	if !e.CanAccept(card) {
		return nil, &CannotAcceptError{Card: card}
	}
	// full slice expression: append must copy
	cards := append(e.cards[:len(e.cards):len(e.cards)], card)
	return &Expedition{color: e.color, cards: cards}, nil
}

// CanAccept reports whether With would succeed
func (e *Expedition) CanAccept(card deck.Card) bool {
	if card.Color() != e.color {
		return false
	}
	top, ok := e.Top()
	if !ok {
		return true
	}
	return card.CanBeStackedOn(top)
}

func (e *Expedition) Color() deck.Color {
	return e.color
}

func (e *Expedition) Has(card deck.Card) bool {
	for _, c := range e.cards {
		if c == card {
			return true
		}
	}
	return false
}

// Nth returns the nth card counting from the first one played
func (e *Expedition) Nth(n int) (deck.Card, bool) {
	if n < 0 || n >= len(e.cards) {
		return 0, false
	}
	return e.cards[n], true
}

func (e *Expedition) Top() (deck.Card, bool) {
	return e.Nth(len(e.cards) - 1)
}

func (e *Expedition) Count() int {
	return len(e.cards)
}

// Cards returns a copy of the played cards, first played first
func (e *Expedition) Cards() []deck.Card {
	return append([]deck.Card{}, e.cards...)
}
