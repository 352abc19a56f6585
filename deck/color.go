package deck

// Color represents the expedition colour of a card
type Color uint8

const (
	Yellow Color = iota
	Blue
	White
	Green
	Red
)

// NumColors is the number of expedition colours
const NumColors = 5

var colorNames = []string{"Yellow", "Blue", "White", "Green", "Red"}

var colorLetters = []byte{'Y', 'B', 'W', 'G', 'R'}

// Colors returns every colour in canonical order
func Colors() []Color {
	return []Color{Yellow, Blue, White, Green, Red}
}

// Valid reports whether c is one of the five colours
func (c Color) Valid() bool {
	return c < NumColors
}

// Name returns the full colour name, e.g. "Yellow"
func (c Color) Name() string {
	if !c.Valid() {
		return "Undefined"
	}
	return colorNames[c]
}

func (c Color) String() string {
	if !c.Valid() {
		return "U"
	}
	return string(colorLetters[c])
}
