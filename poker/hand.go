package poker

import (
	"fmt"
	"sort"
	"strings"
)

// Hand is an owner-labelled set of cards plus derived face and suit
// occurrence counts. Hands are immutable: detectors that exclude matched
// cards return a fresh residual Hand and leave the receiver untouched.
type Hand struct {
	owner      string
	cards      []Card
	faceCounts map[Face]int
	suitCounts map[Suit]int
}

// HandSize is the number of cards in a showdown hand
const HandSize = 5

// NewHand creates a Hand from an owner label and exactly five distinct cards
func NewHand(owner string, cards []Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("hand %q: expected %d cards, got %d", owner, HandSize, len(cards))
	}
	seen := make(map[Card]bool, HandSize)
	for _, card := range cards {
		if seen[card] {
			return Hand{}, fmt.Errorf("hand %q: duplicate card %s", owner, card)
		}
		seen[card] = true
	}
	return newHand(owner, cards), nil
}

// newHand builds a hand without the five-card check so that residual hands
// can share the same representation.
func newHand(owner string, cards []Card) Hand {
	h := Hand{
		owner:      owner,
		cards:      make([]Card, len(cards)),
		faceCounts: make(map[Face]int),
		suitCounts: make(map[Suit]int),
	}
	copy(h.cards, cards)
	for _, card := range cards {
		h.faceCounts[card.Face]++
		h.suitCounts[card.Suit]++
	}
	return h
}

// ParseHand parses a hand string like "Black: 2H 3D 5S 9C KD"
func ParseHand(s string) (Hand, error) {
	label, rest, found := strings.Cut(s, ":")
	if !found {
		return Hand{}, fmt.Errorf("invalid hand string: %q", s)
	}
	owner := strings.TrimSpace(label)
	if owner == "" {
		return Hand{}, fmt.Errorf("invalid hand string: %q", s)
	}

	var cards []Card
	for _, rep := range strings.Fields(rest) {
		card, err := ParseCard(rep)
		if err != nil {
			return Hand{}, fmt.Errorf("hand %q: %w", owner, err)
		}
		cards = append(cards, card)
	}
	return NewHand(owner, cards)
}

// Owner returns the hand's owner label
func (h Hand) Owner() string {
	return h.owner
}

// String returns the owner label followed by the cards in descending order
func (h Hand) String() string {
	reps := make([]string, 0, len(h.cards))
	for _, card := range h.Descending() {
		reps = append(reps, card.String())
	}
	return h.owner + ": " + strings.Join(reps, " ")
}

// Descending returns the hand's cards sorted by face value, highest first.
// The sort is stable for equal faces and the receiver is never reordered.
func (h Hand) Descending() []Card {
	sorted := make([]Card, len(h.cards))
	copy(sorted, h.cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Face > sorted[j].Face
	})
	return sorted
}

// facesOccurring returns the faces that occur exactly n times, highest first
func (h Hand) facesOccurring(n int) []Face {
	var faces []Face
	for face, count := range h.faceCounts {
		if count == n {
			faces = append(faces, face)
		}
	}
	sort.Slice(faces, func(i, j int) bool {
		return faces[i] > faces[j]
	})
	return faces
}

// without returns a residual hand holding every card whose face is not in
// the exclusion list
func (h Hand) without(faces ...Face) Hand {
	excluded := make(map[Face]bool, len(faces))
	for _, face := range faces {
		excluded[face] = true
	}
	var rest []Card
	for _, card := range h.cards {
		if !excluded[card.Face] {
			rest = append(rest, card)
		}
	}
	return newHand(h.owner, rest)
}

// Pair finds the highest face occurring exactly twice. It returns that face
// and a residual hand with the pair removed, or ok=false and the hand itself.
func (h Hand) Pair() (Face, Hand, bool) {
	faces := h.facesOccurring(2)
	if len(faces) == 0 {
		return 0, h, false
	}
	return faces[0], h.without(faces[0]), true
}

// Pairs finds the two highest distinct faces each occurring exactly twice,
// high pair first, plus a residual hand with both pairs removed.
func (h Hand) Pairs() (high, low Face, rest Hand, ok bool) {
	faces := h.facesOccurring(2)
	if len(faces) < 2 {
		return 0, 0, h, false
	}
	return faces[0], faces[1], h.without(faces[0], faces[1]), true
}

// Triplet finds the highest face occurring exactly three times
func (h Hand) Triplet() (Face, Hand, bool) {
	faces := h.facesOccurring(3)
	if len(faces) == 0 {
		return 0, h, false
	}
	return faces[0], h.without(faces[0]), true
}

// Quartet finds the face occurring exactly four times
func (h Hand) Quartet() (Face, Hand, bool) {
	faces := h.facesOccurring(4)
	if len(faces) == 0 {
		return 0, h, false
	}
	return faces[0], h.without(faces[0]), true
}

// Straight returns the top face if the five faces form an exactly
// consecutive descending run. Ace-low wheel straights are not recognized.
func (h Hand) Straight() (Face, bool) {
	descending := h.Descending()
	for i := 1; i < len(descending); i++ {
		if descending[i-1].Face-1 != descending[i].Face {
			return 0, false
		}
	}
	return descending[0].Face, true
}

// IsFlush reports whether all five cards share a single suit
func (h Hand) IsFlush() bool {
	return len(h.suitCounts) == 1
}

// FullHouse returns the triplet's face when the hand splits into a triplet
// plus a pair
func (h Hand) FullHouse() (Face, bool) {
	triplet, rest, ok := h.Triplet()
	if !ok {
		return 0, false
	}
	if _, _, ok := rest.Pair(); !ok {
		return 0, false
	}
	return triplet, true
}
