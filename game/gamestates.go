package game

import "github.com/minaorangina/lostcities/deck"

// Side represents one of the two players. It decides ownership and the
// direction a halfboard is drawn in, nothing else.
type Side int

const (
	Up Side = iota
	Down
)

// NumSides is the number of players in a game
const NumSides = 2

var sideNames = []string{"Up", "Down"}

// Sides returns both sides, Up first
func Sides() []Side {
	return []Side{Up, Down}
}

func (s Side) Opposite() Side {
	if s == Up {
		return Down
	}
	return Up
}

func (s Side) String() string {
	return sideNames[s]
}

// PlayTo is where a card from the hand goes
type PlayTo int

const (
	ToExpedition PlayTo = iota
	ToDiscard
)

func (p PlayTo) String() string {
	if p == ToDiscard {
		return "Discard"
	}
	return "Expedition"
}

// DrawSource is where a replacement card comes from
type DrawSource int

const (
	FromDeck DrawSource = iota
	FromDiscard
)

// DrawFrom is the second half of a turn: the deck, or the discard pile of
// one colour.
type DrawFrom struct {
	Source DrawSource
	Color  deck.Color // only meaningful when Source is FromDiscard
}

func DrawFromDeck() DrawFrom {
	return DrawFrom{Source: FromDeck}
}

func DrawFromDiscard(color deck.Color) DrawFrom {
	return DrawFrom{Source: FromDiscard, Color: color}
}

func (d DrawFrom) String() string {
	if d.Source == FromDiscard {
		return "Discard(" + d.Color.Name() + ")"
	}
	return "Deck"
}

// GamePlayState represents the two states of a game
type GamePlayState int

const (
	InProgress GamePlayState = iota
	Over
)

func (s GamePlayState) String() string {
	if s == Over {
		return "Over"
	}
	return "InProgress"
}
