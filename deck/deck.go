package deck

// Deck is the shared draw pile. It is immutable: Take returns a new Deck
// sharing the remaining cards with its predecessor.
type Deck struct {
	// top of the deck is cards[0]; the slice is never written to
	cards []Card
}

// New creates a full deck of cards shuffled with src
func New(src Source) *Deck {
	cards := AllCards()
	Shuffle(cards, src)
	return &Deck{cards: cards}
}

// FromCards creates a deck holding exactly the given cards, top first
func FromCards(cards ...Card) *Deck {
	if len(cards) == 0 {
		return &Deck{}
	}
	return &Deck{cards: append([]Card(nil), cards...)}
}

// FromIDs is like FromCards, taking card ids
func FromIDs(ids ...int) *Deck {
	cards := make([]Card, 0, len(ids))
	for _, id := range ids {
		cards = append(cards, FromID(id))
	}
	return FromCards(cards...)
}

// Take removes the top card. ok is false when the deck is exhausted.
func (d *Deck) Take() (card Card, rest *Deck, ok bool) {
	if d.IsEmpty() {
		return 0, d, false
	}
	remaining := d.cards[1:]
	if len(remaining) == 0 {
		remaining = nil
	}
	return d.cards[0], &Deck{cards: remaining}, true
}

// Peek returns the top card without removing it
func (d *Deck) Peek() (Card, bool) {
	if d.IsEmpty() {
		return 0, false
	}
	return d.cards[0], true
}

func (d *Deck) RemainingCount() int {
	return len(d.cards)
}

func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, top first
func (d *Deck) Cards() []Card {
	return append([]Card{}, d.cards...)
}
