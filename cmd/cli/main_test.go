package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/minaorangina/lostcities/engine"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// With seed 41025, each side discarding its lowest card and drawing from
// the deck
var discardLowest = []string{
	"Y5", "YB", "B2", "Y2", "YB", "Y3", "B4", "B3", "YB", "Y9", "BB",
	"WB", "Y8", "W4", "W2", "B8", "B7", "W8", "B6", "Y7", "W7", "W9",
	"W0", "B5", "W6", "W5", "GB", "GB", "WB", "Y6", "GB", "G3", "G4",
	"G2", "WB", "W3", "G6", "G5", "BB", "Y0", "B9", "B0", "Y4", "G9",
}

func runCmd(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlayToTheEnd(t *testing.T) {
	t.Setenv("LOSTCITIES_PLAYER_UP", "Harry")
	t.Setenv("LOSTCITIES_PLAYER_DOWN", "Sally")

	input := &strings.Builder{}
	for _, code := range discardLowest {
		input.WriteString(code + " x d\n")
	}

	out, err := runCmd(t, input.String(), "--seed", "41025", "--color=false")
	require.NoError(t, err)

	assert.Contains(t, out, "Harry, it's your turn (Up)")
	assert.Contains(t, out, "Sally, it's your turn (Down)")
	assert.Contains(t, out, "Y5,YB,Y2,YB,Y3,YB,Y9,Y8,Y7,Y6,Y0,Y4 | B2,B4,B3,BB,B8,B7,B6,B5,BB,B9,B0 | WB,W4,W2,W8,W7,W9,W0,W6,W5,WB,WB,W3 | GB,GB,GB,G3,G4,G2,G6,G5,G9 | ")
	assert.Contains(t, out, "game over")
	assert.NotContains(t, out, "Cannot play that")
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("LOSTCITIES_PLAYER_UP", "Harry")
	t.Setenv("LOSTCITIES_MAX_ATTEMPTS", "5")

	out, err := runCmd(t, "q5ed\n", "--seed", "41025", "--max-attempts", "1", "--up", "Hermione", "--color=false")

	assert.True(t, errors.Is(err, engine.ErrTooManyAttempts))
	assert.Contains(t, out, "Hermione, it's your turn (Up)")
	assert.Contains(t, out, "In your hand: Y5, B2, B4, W7, GB, RB, R5, R7")
	assert.Equal(t, 1, strings.Count(out, "Cannot play that"))
}

func TestBadConfiguration(t *testing.T) {
	t.Run("environment", func(t *testing.T) {
		t.Setenv("LOSTCITIES_MAX_ATTEMPTS", "lots")
		_, err := runCmd(t, "", "--seed", "1")
		assert.Error(t, err)
	})

	t.Run("flags", func(t *testing.T) {
		_, err := runCmd(t, "", "--seed", "1", "--log-level", "loud")
		assert.Error(t, err)
	})
}
