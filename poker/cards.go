package poker

import "fmt"

// Suit represents a card suit. Suits never participate in ordering; they only
// matter for flush detection and multiplicity counting.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Face represents a card face value. The integer order is the poker order,
// ascending from Two to Ace.
type Face int

const (
	Two Face = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a face
func (f Face) String() string {
	switch f {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Face Face
	Suit Suit
}

// String returns the string representation of a card (e.g., "KD")
func (c Card) String() string {
	return c.Face.String() + c.Suit.String()
}

// Beats reports whether c outranks other. Cards are only ever compared by
// face, never by suit.
func (c Card) Beats(other Card) bool {
	return c.Face > other.Face
}

// ParseCard parses a string like "KD" into a Card
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	var face Face
	switch s[0] {
	case '2':
		face = Two
	case '3':
		face = Three
	case '4':
		face = Four
	case '5':
		face = Five
	case '6':
		face = Six
	case '7':
		face = Seven
	case '8':
		face = Eight
	case '9':
		face = Nine
	case 'T', 't':
		face = Ten
	case 'J', 'j':
		face = Jack
	case 'Q', 'q':
		face = Queen
	case 'K', 'k':
		face = King
	case 'A', 'a':
		face = Ace
	default:
		return Card{}, fmt.Errorf("invalid face: %c", s[0])
	}

	var suit Suit
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit: %c", s[1])
	}

	return Card{Face: face, Suit: suit}, nil
}
