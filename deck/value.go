package deck

// Value represents the face value of a card. Values are totally ordered,
// with Bet below every numbered value.
type Value uint8

const (
	Bet Value = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
)

// FamilySize is the number of cards of a single colour
const FamilySize = 12

var family = [FamilySize]Value{Bet, Bet, Bet, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten}

var valueNames = []string{"Bet", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten"}

// ten is written as 0 so that every card fits in two characters
var valueLetters = []byte{'B', '2', '3', '4', '5', '6', '7', '8', '9', '0'}

// Family returns the values of one colour's cards, in id order
func Family() []Value {
	f := family
	return f[:]
}

// Values returns each distinct value in ascending order
func Values() []Value {
	return []Value{Bet, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten}
}

// CanBeStackedOn reports whether v may be placed on top of other
func (v Value) CanBeStackedOn(other Value) bool {
	return v >= other
}

// Valid reports whether v is a known value
func (v Value) Valid() bool {
	return v <= Ten
}

// Name returns the full value name, e.g. "Seven"
func (v Value) Name() string {
	if !v.Valid() {
		return "Undefined"
	}
	return valueNames[v]
}

func (v Value) String() string {
	if !v.Valid() {
		return "?"
	}
	return string(valueLetters[v])
}
