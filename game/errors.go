package game

import (
	"fmt"

	"github.com/minaorangina/lostcities/deck"
	"github.com/pkg/errors"
)

var (
	ErrHandFull         = errors.New("hand already full")
	ErrGameOver         = errors.New("the game is over")
	ErrDiscardPileEmpty = errors.New("the discard pile was empty")
	ErrDeckExhausted    = errors.New("not enough cards left in the deck")
)

// CardNotFoundError is returned when a card is missing from a hand, or
// when reclaiming from an empty discard pile.
type CardNotFoundError struct {
	Card deck.Card
}

func (e *CardNotFoundError) Error() string {
	return fmt.Sprintf("card not found: %s", e.Card)
}

// DuplicateCardError is returned when adding a card a hand already holds
type DuplicateCardError struct {
	Card deck.Card
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("card already in hand: %s", e.Card)
}

// CannotAcceptError is returned when an expedition rejects a card, either
// for its colour or for its value.
type CannotAcceptError struct {
	Card deck.Card
}

func (e *CannotAcceptError) Error() string {
	return fmt.Sprintf("expedition cannot accept card %s", e.Card)
}
