package game

import (
	"fmt"

	"github.com/minaorangina/lostcities/deck"
	"github.com/pkg/errors"
)

// Game is a snapshot of a match: board, deck, both hands and whose turn
// it is. Games are immutable. Every transition returns a new Game that
// shares whatever it did not change with its predecessor, so any Game may
// be kept (for undo, replay or display) after play moves on.
type Game struct {
	board *Board
	deck  *deck.Deck
	hands [NumSides]*Hand
	turn  Side
}

// New shuffles a deck with src and deals HandSize cards to Up, then to
// Down. Up plays first.
func New(src deck.Source) *Game {
	up, d, err := NewHand(Up, deck.New(src))
	if err != nil {
		panic(err) // a full deck always covers both hands
	}
	down, d, err := NewHand(Down, d)
	if err != nil {
		panic(err)
	}

	return &Game{
		board: NewBoard(),
		deck:  d,
		hands: [NumSides]*Hand{up, down},
		turn:  Up,
	}
}

// Restore builds a game from its parts, e.g. to replay or test a position
func Restore(board *Board, d *deck.Deck, up, down *Hand, turn Side) (*Game, error) {
	if board == nil || d == nil || up == nil || down == nil {
		return nil, errors.New("cannot restore a game from nil parts")
	}
	if up.Side() != Up || down.Side() != Down {
		return nil, errors.Errorf("hands belong to %s and %s, want Up and Down", up.Side(), down.Side())
	}
	return &Game{
		board: board,
		deck:  d,
		hands: [NumSides]*Hand{up, down},
		turn:  turn,
	}, nil
}

// Play executes the whole turn of the current side: card is played from
// their hand to playTo, then a card is drawn from drawFrom. Either both
// steps succeed and a new Game is returned, or an error is returned and
// nothing has changed.
//
// Play does not pass the turn to the other side; see EndTurn.
func (g *Game) Play(card deck.Card, playTo PlayTo, drawFrom DrawFrom) (*Game, error) {
	if g.IsOver() {
		return nil, ErrGameOver
	}

	afterPlay, err := g.playFromHand(card, playTo)
	if err != nil {
		return nil, err
	}

	switch drawFrom.Source {
	case FromDiscard:
		return afterPlay.drawFromDiscard(drawFrom.Color)
	case FromDeck:
		return afterPlay.drawFromDeck()
	}

	// this shouldn't happen
	return nil, errors.Errorf("unknown draw source %d", drawFrom.Source)
}

// EndTurn hands the turn to the other side
func (g *Game) EndTurn() (*Game, error) {
	if g.IsOver() {
		return nil, ErrGameOver
	}
	next := *g
	next.turn = g.turn.Opposite()
	return &next, nil
}

// CanPlay reports whether the current side may play card to playTo. It
// says nothing about the draw that completes the turn.
func (g *Game) CanPlay(card deck.Card, playTo PlayTo) bool {
	if g.IsOver() || !g.Hand(g.turn).Has(card) {
		return false
	}
	if playTo == ToExpedition {
		return g.board.Half(g.turn).CanAccept(card)
	}
	return true
}

// IsOver reports whether the deck has run out
func (g *Game) IsOver() bool {
	return g.deck.IsEmpty()
}

func (g *Game) State() GamePlayState {
	if g.IsOver() {
		return Over
	}
	return InProgress
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Deck() *deck.Deck {
	return g.deck
}

func (g *Game) Hand(side Side) *Hand {
	return g.hands[side]
}

func (g *Game) Turn() Side {
	return g.turn
}

func (g *Game) String() string {
	return fmt.Sprintf("Turn: %s (%d cards left)\n%s", g.turn, g.deck.RemainingCount(), g.board)
}

func (g *Game) withHand(hand *Hand) [NumSides]*Hand {
	hands := g.hands
	hands[hand.Side()] = hand
	return hands
}

// step 1 of 2 of a turn
func (g *Game) playFromHand(card deck.Card, playTo PlayTo) (*Game, error) {
	hand, err := g.Hand(g.turn).Take(card)
	if err != nil {
		return nil, err
	}
	board, err := g.board.Play(g.turn, card, playTo)
	if err != nil {
		return nil, err
	}
	return &Game{
		board: board,
		deck:  g.deck,
		hands: g.withHand(hand),
		turn:  g.turn,
	}, nil
}

// step 2 of 2 of a turn, drawing from a discard pile
func (g *Game) drawFromDiscard(color deck.Color) (*Game, error) {
	top, err := g.board.DiscardPile().Top(color)
	if err != nil {
		return nil, err
	}
	board, err := g.board.Take(top)
	if err != nil {
		return nil, err
	}
	hand, err := g.Hand(g.turn).With(top)
	if err != nil {
		return nil, err
	}
	return &Game{
		board: board,
		deck:  g.deck,
		hands: g.withHand(hand),
		turn:  g.turn,
	}, nil
}

// step 2 of 2 of a turn, drawing from the deck
func (g *Game) drawFromDeck() (*Game, error) {
	card, d, ok := g.deck.Take()
	if !ok {
		return nil, ErrGameOver
	}
	hand, err := g.Hand(g.turn).With(card)
	if err != nil {
		return nil, err
	}
	return &Game{
		board: g.board,
		deck:  d,
		hands: g.withHand(hand),
		turn:  g.turn,
	}, nil
}
