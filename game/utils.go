package game

import (
	"strings"

	"github.com/minaorangina/lostcities/deck"
)

func cardSliceToSet(s []deck.Card) map[deck.Card]struct{} {
	set := map[deck.Card]struct{}{}
	for _, key := range s {
		set[key] = struct{}{}
	}
	return set
}

func joinCards(cards []deck.Card, sep string) string {
	codes := make([]string, 0, len(cards))
	for _, c := range cards {
		codes = append(codes, c.String())
	}
	return strings.Join(codes, sep)
}

// cardCell renders the nth card of an expedition, or two spaces
func cardCell(exp *Expedition, n int) string {
	card, ok := exp.Nth(n)
	if !ok {
		return "  "
	}
	return card.String()
}
