package players

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/lostcities/deck"
	"github.com/minaorangina/lostcities/game"
	"github.com/pterm/pterm"
)

const (
	turnText   = "\n%s, it's your turn (%s).\n\n"
	handText   = "\nIn your hand: %s\n"
	deckText   = "Cards left in the deck: %d\n"
	promptText = "\nPlay a card, then choose where to draw from.\nExample: \"y5 e d\" plays Y5 to its expedition and draws from the deck; \"r7 x b\" discards R7 and takes the top blue discard.\n> "
	cannotText = "Cannot play that: %s\n"
)

var tints = [deck.NumColors]func(a ...interface{}) string{
	deck.Yellow: pterm.Yellow,
	deck.Blue:   pterm.Blue,
	deck.White:  pterm.White,
	deck.Green:  pterm.Green,
	deck.Red:    pterm.Red,
}

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// Display renders cards, hands and boards for a terminal. When colored,
// each card code is tinted with the colour of its expedition; otherwise
// the output is identical to the game package's String methods.
type Display struct {
	colored bool
}

func NewDisplay(colored bool) *Display {
	return &Display{colored: colored}
}

func (d *Display) Card(c deck.Card) string {
	if !d.colored {
		return c.String()
	}
	return tints[c.Color()](c.String())
}

func (d *Display) Cards(cards []deck.Card, sep string) string {
	codes := make([]string, 0, len(cards))
	for _, c := range cards {
		codes = append(codes, d.Card(c))
	}
	return strings.Join(codes, sep)
}

func (d *Display) Hand(h *game.Hand) string {
	return d.Cards(h.Cards(), ", ")
}

// Halfboard draws one column per colour, mirrored for Up
func (d *Display) Halfboard(h *game.Halfboard) string {
	rows := 1
	for _, color := range deck.Colors() {
		if n := h.Expedition(color).Count(); n > rows {
			rows = n
		}
	}

	lines := make([]string, rows)
	for n := range lines {
		cells := make([]string, 0, deck.NumColors)
		for _, color := range deck.Colors() {
			cells = append(cells, d.cell(h.Expedition(color), n))
		}
		lines[n] = strings.Join(cells, " | ")
	}

	if h.Side() == game.Up {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func (d *Display) DiscardPile(p *game.DiscardPile) string {
	groups := make([]string, 0, deck.NumColors)
	for _, color := range deck.Colors() {
		groups = append(groups, d.Cards(p.Cards(color), ","))
	}
	return strings.Join(groups, " | ")
}

func (d *Display) Board(b *game.Board) string {
	return d.Halfboard(b.Half(game.Up)) + "\n" +
		d.DiscardPile(b.DiscardPile()) + "\n" +
		d.Halfboard(b.Half(game.Down))
}

// Game shows the board, the deck count and side's hand. The other hand
// stays hidden.
func (d *Display) Game(g *game.Game, side game.Side) string {
	return d.Board(g.Board()) + "\n" +
		fmt.Sprintf(handText, d.Hand(g.Hand(side))) +
		fmt.Sprintf(deckText, g.Deck().RemainingCount())
}

func (d *Display) cell(exp *game.Expedition, n int) string {
	card, ok := exp.Nth(n)
	if !ok {
		return "  "
	}
	return d.Card(card)
}
