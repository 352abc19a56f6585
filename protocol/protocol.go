package protocol

import (
	"fmt"
	"strings"

	"github.com/minaorangina/lostcities/deck"
	"github.com/minaorangina/lostcities/game"
)

// Player makes the decisions for one side. Implementations read from a
// keyboard, a script, a network connection or a strategy; the game only
// ever sees the PlayDecision.
type Player interface {
	Name() string
	MakeDecision(g *game.Game) (PlayDecision, error)
}

// PlayDecision is one full turn: which card to play, where to play it and
// where to draw the replacement from.
type PlayDecision struct {
	Card     deck.Card
	PlayTo   game.PlayTo
	DrawFrom game.DrawFrom
}

// ApplyTo plays the decision on g for the side whose turn it is
func (d PlayDecision) ApplyTo(g *game.Game) (*game.Game, error) {
	return g.Play(d.Card, d.PlayTo, d.DrawFrom)
}

// String gives the compact form read by ParseDecision, e.g. "Y5 e d"
func (d PlayDecision) String() string {
	return fmt.Sprintf("%s %c %c", d.Card, playToLetter(d.PlayTo), drawFromLetter(d.DrawFrom))
}

const (
	expeditionLetter = 'e'
	discardLetter    = 'x'
	deckLetter       = 'd'
)

func playToLetter(p game.PlayTo) byte {
	if p == game.ToDiscard {
		return discardLetter
	}
	return expeditionLetter
}

func drawFromLetter(d game.DrawFrom) byte {
	if d.Source == game.FromDiscard {
		return strings.ToLower(d.Color.String())[0]
	}
	return deckLetter
}

// ParsePlayTo reads a destination letter: e for an expedition, x for the
// discard pile
func ParsePlayTo(b byte) (game.PlayTo, error) {
	switch b {
	case expeditionLetter, expeditionLetter - 'a' + 'A':
		return game.ToExpedition, nil
	case discardLetter, discardLetter - 'a' + 'A':
		return game.ToDiscard, nil
	}
	return 0, &deck.UnexpectedCharacterError{Char: rune(b)}
}

// ParseDrawFrom reads a source letter: d for the deck, or a colour letter
// for that colour's discard pile
func ParseDrawFrom(b byte) (game.DrawFrom, error) {
	if b == deckLetter || b == deckLetter-'a'+'A' {
		return game.DrawFromDeck(), nil
	}
	color, err := deck.ParseColor(b)
	if err != nil {
		return game.DrawFrom{}, err
	}
	return game.DrawFromDiscard(color), nil
}

// ParseDecision reads the form written by PlayDecision.String. Whitespace
// between the three parts is optional. A bet resolves to the lowest of its
// copies; see deck.ParseCard.
func ParseDecision(s string) (PlayDecision, error) {
	compact := strings.Join(strings.Fields(s), "")
	if len(compact) < 4 {
		return PlayDecision{}, &CannotPlayError{Err: deck.ErrInputTooShort}
	}

	card, err := deck.ParseCard(compact[:2])
	if err != nil {
		return PlayDecision{}, &CannotPlayError{Err: err}
	}
	playTo, err := ParsePlayTo(compact[2])
	if err != nil {
		return PlayDecision{}, &CannotPlayError{Err: err}
	}
	drawFrom, err := ParseDrawFrom(compact[3])
	if err != nil {
		return PlayDecision{}, &CannotPlayError{Err: err}
	}
	if len(compact) > 4 {
		return PlayDecision{}, &CannotPlayError{Err: &deck.UnexpectedCharacterError{Char: rune(compact[4])}}
	}

	return PlayDecision{Card: card, PlayTo: playTo, DrawFrom: drawFrom}, nil
}
