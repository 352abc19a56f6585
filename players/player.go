package players

import (
	"io"

	"github.com/minaorangina/lostcities/deck"
	"github.com/minaorangina/lostcities/game"
	"github.com/minaorangina/lostcities/protocol"
	"github.com/pkg/errors"
)

// KeyboardPlayer plays one side from a terminal. A decision is four
// significant characters, e.g. "y5ed" or "Y5 x b": the card, where to play
// it (e for its expedition, x to discard) and where to draw from (d for the
// deck, or a colour for that discard pile). Whitespace and control
// characters are skipped anywhere in between.
type KeyboardPlayer struct {
	name    string
	conn    *conn
	display *Display
}

// NewKeyboardPlayer constructs a player reading from in and prompting on out
func NewKeyboardPlayer(name string, in io.Reader, out io.Writer) *KeyboardPlayer {
	return &KeyboardPlayer{
		name:    name,
		conn:    newConn(in, out),
		display: NewDisplay(true),
	}
}

// NewSharedKeyboardPlayers constructs both players of a game played at
// one terminal. They read through the same buffer, so neither swallows
// input meant for the other.
func NewSharedKeyboardPlayers(upName, downName string, in io.Reader, out io.Writer) (*KeyboardPlayer, *KeyboardPlayer) {
	c := newConn(in, out)
	up := &KeyboardPlayer{name: upName, conn: c, display: NewDisplay(true)}
	down := &KeyboardPlayer{name: downName, conn: c, display: NewDisplay(true)}
	return up, down
}

// WithDisplay replaces the coloured display
func (p *KeyboardPlayer) WithDisplay(d *Display) *KeyboardPlayer {
	p.display = d
	return p
}

func (p *KeyboardPlayer) Name() string {
	return p.name
}

// MakeDecision shows g to the side whose turn it is and reads one
// decision. Every failure is a *protocol.CannotPlayError; failures of the
// reader also carry a *protocol.IOError. The rest of the input line is
// dropped after each attempt, so a retry starts afresh.
func (p *KeyboardPlayer) MakeDecision(g *game.Game) (protocol.PlayDecision, error) {
	side := g.Turn()
	SendText(p.conn.Out, turnText, p.name, side)
	SendText(p.conn.Out, p.display.Game(g, side))
	SendText(p.conn.Out, promptText)

	decision, err := p.readDecision(g)
	if err != nil {
		var ioErr *protocol.IOError
		if !errors.As(err, &ioErr) {
			SendText(p.conn.Out, cannotText, err)
		}
		return protocol.PlayDecision{}, &protocol.CannotPlayError{Err: err}
	}
	return decision, nil
}

func (p *KeyboardPlayer) readDecision(g *game.Game) (protocol.PlayDecision, error) {
	chars, err := p.conn.readSignificantN(4)
	if err != nil {
		return protocol.PlayDecision{}, &protocol.IOError{Err: err}
	}
	defer p.conn.skipLine()

	card, err := deck.ParseCard(string(chars[:2]))
	if err != nil {
		return protocol.PlayDecision{}, err
	}
	playTo, err := protocol.ParsePlayTo(chars[2])
	if err != nil {
		return protocol.PlayDecision{}, err
	}
	drawFrom, err := protocol.ParseDrawFrom(chars[3])
	if err != nil {
		return protocol.PlayDecision{}, err
	}

	card, err = resolveCard(g, card, playTo)
	if err != nil {
		return protocol.PlayDecision{}, err
	}
	return protocol.PlayDecision{Card: card, PlayTo: playTo, DrawFrom: drawFrom}, nil
}

// resolveCard finds the copy of card held by the side whose turn it is and
// checks it may go to playTo
func resolveCard(g *game.Game, card deck.Card, playTo game.PlayTo) (deck.Card, error) {
	if g.IsOver() {
		return 0, game.ErrGameOver
	}
	held, ok := g.Hand(g.Turn()).Find(card.Color(), card.Value())
	if !ok {
		return 0, &game.CardNotFoundError{Card: card}
	}
	if !g.CanPlay(held, playTo) {
		return 0, &game.CannotAcceptError{Card: held}
	}
	return held, nil
}
