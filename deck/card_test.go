package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard(t *testing.T) {
	t.Run("colour and value derive from the id", func(t *testing.T) {
		for id := 0; id < DeckSize; id++ {
			c := FromID(id)
			assert.Equal(t, Color(id/FamilySize), c.Color(), "id %d", id)
			assert.Equal(t, Family()[id%FamilySize], c.Value(), "id %d", id)
			assert.Equal(t, id, c.ID())
		}
	})

	t.Run("three bets and one of each number per colour", func(t *testing.T) {
		counts := map[Color]map[Value]int{}
		for _, c := range AllCards() {
			if counts[c.Color()] == nil {
				counts[c.Color()] = map[Value]int{}
			}
			counts[c.Color()][c.Value()]++
		}

		for _, color := range Colors() {
			for _, value := range Values() {
				want := 1
				if value == Bet {
					want = 3
				}
				assert.Equal(t, want, counts[color][value], "%s %s", color.Name(), value.Name())
				assert.Len(t, Lookup(color, value), want)
			}
		}
	})

	cases := []struct {
		name     string
		card     Card
		expected string
		long     string
	}{
		{"Lowest id", FromID(0), "YB", "Bet of Yellow"},
		{"Specific card", FromID(32), "W7", "Seven of White"},
		{"Ten", FromID(23), "B0", "Ten of Blue"},
		{"Highest id", FromID(59), "R0", "Ten of Red"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, c.card.String())
			assert.Equal(t, c.long, c.card.Name())
		})
	}

	t.Run("Out of range (should panic)", func(t *testing.T) {
		assert.Panics(t, func() { FromID(DeckSize) })
		assert.Panics(t, func() { FromID(-1) })
		assert.NotPanics(t, func() { FromID(DeckSize - 1) })
	})

	t.Run("nth copy", func(t *testing.T) {
		c, ok := NewCard(Green, Bet, 2)
		assert.True(t, ok)
		assert.Equal(t, FromID(38), c)

		_, ok = NewCard(Green, Seven, 1)
		assert.False(t, ok)
	})
}

func TestStacking(t *testing.T) {
	t.Run("values are ordered bet first", func(t *testing.T) {
		values := Values()
		for i := 1; i < len(values); i++ {
			assert.True(t, values[i].CanBeStackedOn(values[i-1]))
			assert.False(t, values[i-1].CanBeStackedOn(values[i]))
		}
		assert.True(t, Bet.CanBeStackedOn(Bet))
	})

	t.Run("cards only stack on their own colour", func(t *testing.T) {
		yellowFive := MustParseCard("Y5")
		assert.True(t, MustParseCard("Y6").CanBeStackedOn(yellowFive))
		assert.False(t, MustParseCard("Y4").CanBeStackedOn(yellowFive))
		assert.False(t, MustParseCard("B6").CanBeStackedOn(yellowFive))
		assert.True(t, FromID(1).CanBeStackedOn(FromID(0)))
	})
}
