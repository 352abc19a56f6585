package deck

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInputTooShort is the cause of a ParseError when fewer than two
// characters are available.
var ErrInputTooShort = errors.New("the input was too short")

// UnexpectedCharacterError is the cause of a ParseError on an unknown letter
type UnexpectedCharacterError struct {
	Char rune
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character: %q", e.Char)
}

// Field identifies what a ParseError failed to parse
type Field int

const (
	CardField Field = iota
	ColorField
	ValueField
)

var fieldNames = []string{"card", "color", "value"}

func (f Field) String() string {
	return fieldNames[f]
}

// ParseError reports a failure to read a card, colour or value.
// A card failure wraps the colour or value failure that caused it.
type ParseError struct {
	Field Field
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %s", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Cause lets errors.Cause walk down to ErrInputTooShort or the
// UnexpectedCharacterError at the bottom of the chain.
func (e *ParseError) Cause() error { return e.Err }

// ParseColor reads a colour letter: Y, B, W, G or R, in either case
func ParseColor(b byte) (Color, error) {
	upper := toUpper(b)
	for i, letter := range colorLetters {
		if letter == upper {
			return Color(i), nil
		}
	}
	return 0, &ParseError{Field: ColorField, Err: &UnexpectedCharacterError{Char: rune(b)}}
}

// ParseValue reads a value letter: B for a bet, 2-9, or 0 for ten
func ParseValue(b byte) (Value, error) {
	upper := toUpper(b)
	for i, letter := range valueLetters {
		if letter == upper {
			return Value(i), nil
		}
	}
	return 0, &ParseError{Field: ValueField, Err: &UnexpectedCharacterError{Char: rune(b)}}
}

// ParseCard reads the two-character form produced by Card.String.
// Surrounding whitespace is ignored. A bet resolves to the lowest of its
// three copies; callers holding a specific copy should match on colour and
// value instead of id.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, &ParseError{Field: CardField, Err: ErrInputTooShort}
	}
	if len(s) > 2 {
		return 0, &ParseError{Field: CardField, Err: &UnexpectedCharacterError{Char: rune(s[2])}}
	}

	color, err := ParseColor(s[0])
	if err != nil {
		return 0, &ParseError{Field: CardField, Err: err}
	}
	value, err := ParseValue(s[1])
	if err != nil {
		return 0, &ParseError{Field: CardField, Err: err}
	}

	return Lookup(color, value)[0], nil
}

// MustParseCard is like ParseCard but panics on failure.
// It is intended for fixtures and tests.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
