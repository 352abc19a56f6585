package deck

import "fmt"

// DeckSize is the number of cards in a full set
const DeckSize = NumColors * FamilySize

// Card is a card identity in [0, DeckSize).
// Colour and value are derived from the id:
// - color = id / FamilySize
// - value = Family()[id % FamilySize]
type Card uint8

// FromID returns the card with the given id.
// It panics if id is out of range: ids never come from user input.
func FromID(id int) Card {
	if id < 0 || id >= DeckSize {
		panic(fmt.Sprintf("card id %d out of range", id))
	}
	return Card(id)
}

// NewCard returns the nth copy of the given colour and value.
// Bet cards have three copies (0, 1, 2); other values have one.
func NewCard(color Color, value Value, nth int) (Card, bool) {
	ids := Lookup(color, value)
	if nth < 0 || nth >= len(ids) {
		return 0, false
	}
	return ids[nth], true
}

// Lookup returns every card of the given colour and value, lowest id first
func Lookup(color Color, value Value) []Card {
	if !color.Valid() || !value.Valid() {
		return nil
	}
	cards := []Card{}
	for i, v := range family {
		if v == value {
			cards = append(cards, Card(int(color)*FamilySize+i))
		}
	}
	return cards
}

// AllCards returns the full set of cards in id order
func AllCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for id := 0; id < DeckSize; id++ {
		cards = append(cards, Card(id))
	}
	return cards
}

// ID returns the card's integer identity
func (c Card) ID() int {
	return int(c)
}

func (c Card) Color() Color {
	return Color(c / FamilySize)
}

func (c Card) Value() Value {
	return family[c%FamilySize]
}

// Less orders cards by id
func (c Card) Less(other Card) bool {
	return c < other
}

// CanBeStackedOn reports whether c may be placed on top of other in an
// expedition: same colour, and a value at least as high.
func (c Card) CanBeStackedOn(other Card) bool {
	if c.Color() != other.Color() {
		return false
	}
	return c.Value().CanBeStackedOn(other.Value())
}

// Name returns a long-form description, e.g. "Seven of White"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Value().Name(), c.Color().Name())
}

func (c Card) String() string {
	return c.Color().String() + c.Value().String()
}
