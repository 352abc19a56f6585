package game

import (
	"strings"

	"github.com/minaorangina/lostcities/deck"
)

// Halfboard holds the five expeditions of one side
type Halfboard struct {
	side        Side
	expeditions [deck.NumColors]*Expedition
}

func NewHalfboard(side Side) *Halfboard {
	h := &Halfboard{side: side}
	for _, color := range deck.Colors() {
		h.expeditions[color] = NewExpedition(color)
	}
	return h
}

// With plays card onto the expedition of its colour. The other four
// expeditions are shared with h.
func (h *Halfboard) With(card deck.Card) (*Halfboard, error) {
	exp, err := h.Expedition(card.Color()).With(card)
	if err != nil {
		return nil, err
	}

	next := &Halfboard{side: h.side, expeditions: h.expeditions}
	next.expeditions[card.Color()] = exp
	return next, nil
}

func (h *Halfboard) CanAccept(card deck.Card) bool {
	return h.Expedition(card.Color()).CanAccept(card)
}

func (h *Halfboard) Expedition(color deck.Color) *Expedition {
	return h.expeditions[color]
}

func (h *Halfboard) Side() Side {
	return h.side
}

// Count returns the number of cards played across all expeditions
func (h *Halfboard) Count() int {
	n := 0
	for _, exp := range h.expeditions {
		n += exp.Count()
	}
	return n
}

func (h *Halfboard) rows() int {
	n := 1
	for _, exp := range h.expeditions {
		if exp.Count() > n {
			n = exp.Count()
		}
	}
	return n
}

// String draws one column per colour. Down reads from the first card
// played downwards; Up is mirrored so both sides grow away from the
// discard pile.
func (h *Halfboard) String() string {
	lines := make([]string, h.rows())
	for n := range lines {
		cells := make([]string, 0, deck.NumColors)
		for _, exp := range h.expeditions {
			cells = append(cells, cardCell(exp, n))
		}
		lines[n] = strings.Join(cells, " | ")
	}

	if h.side == Up {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}

	return strings.Join(lines, "\n")
}
