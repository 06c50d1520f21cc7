package poker

import (
	"errors"
	"fmt"
)

// ErrInvalidDeck signals input that violates single-deck assumptions, such as
// both hands resolving to a triplet or quartet of the same face. Ranking
// aborts rather than guessing a winner.
var ErrInvalidDeck = errors.New("invalid card deck")

// compareFaces decides a win on face value alone, attaching the deciding
// faces to the reason, or reports a draw when the faces are equal.
func compareFaces(f1, f2 Face, h1, h2 Hand, reason string) Result {
	switch {
	case f1 > f2:
		return Win(h1.owner, reason+": "+f1.String()+" over "+f2.String())
	case f2 > f1:
		return Win(h2.owner, reason+": "+f2.String()+" over "+f1.String())
	default:
		return Draw()
	}
}

// resolvePresence is the three-valued gate applied by every category. When
// neither hand qualifies it reports applicable=false so the orchestrator
// moves on. When exactly one qualifies that hand wins with the bare category
// reason. When both qualify it returns a draw, meaning "proceed to
// tie-break".
func resolvePresence(has1, has2 bool, h1, h2 Hand, reason string) (result Result, applicable bool) {
	switch {
	case !has1 && !has2:
		return Result{}, false
	case has1 && !has2:
		return Win(h1.owner, reason), true
	case !has1 && has2:
		return Win(h2.owner, reason), true
	default:
		return Draw(), true
	}
}

// highCard walks both hands' descending faces pairwise and decides on the
// first position that differs. Matching sequences all the way down are a
// draw. This is the universal kicker fallback.
func highCard(h1, h2 Hand, reason string) Result {
	d1, d2 := h1.Descending(), h2.Descending()
	for i := 0; i < len(d1) && i < len(d2); i++ {
		if result := compareFaces(d1[i].Face, d2[i].Face, h1, h2, reason); !result.IsDraw() {
			return result
		}
	}
	return Draw()
}

// detection is what a category detector reports for a single hand: whether
// the category applies, the matched faces to tie-break on (most significant
// first), and the residual hand for kicker comparison.
type detection struct {
	ok    bool
	faces []Face
	rest  Hand
}

// tiePolicy states what a tie on every matched face means for a category
type tiePolicy int

const (
	// tieKickers falls back to a high-card walk over the residual hands
	tieKickers tiePolicy = iota
	// tieDraw accepts the tie as a legitimate draw; two independent card
	// pools can hold identical straights
	tieDraw
	// tieFatal treats the tie as an invalid-deck inconsistency; one deck
	// cannot deal the same triplet or quartet face to both hands
	tieFatal
)

// category couples a detector with its name and tie policy. Every category
// runs the same cascade: presence gate, matched-face comparison, then the
// tie policy.
type category struct {
	name   string
	detect func(Hand) detection
	onTie  tiePolicy
}

// categories is the precedence table, strongest first. Ranking tries each in
// order and stops at the first applicable one; High Card always applies.
var categories = []category{
	{"Straight Flush", detectStraightFlush, tieKickers},
	{"Four of a Kind", detectQuartet, tieFatal},
	{"Full House", detectFullHouse, tieFatal},
	{"Flush", detectFlush, tieKickers},
	{"Straight", detectStraight, tieDraw},
	{"Three of a Kind", detectTriplet, tieFatal},
	{"Two Pairs", detectTwoPairs, tieKickers},
	{"Two of a Kind", detectPair, tieKickers},
	{"High Card", detectHighCard, tieKickers},
}

func detectStraightFlush(h Hand) detection {
	_, straight := h.Straight()
	return detection{ok: straight && h.IsFlush(), rest: h}
}

func detectQuartet(h Hand) detection {
	face, rest, ok := h.Quartet()
	return detection{ok: ok, faces: []Face{face}, rest: rest}
}

func detectFullHouse(h Hand) detection {
	face, ok := h.FullHouse()
	return detection{ok: ok, faces: []Face{face}, rest: h}
}

func detectFlush(h Hand) detection {
	return detection{ok: h.IsFlush(), rest: h}
}

func detectStraight(h Hand) detection {
	face, ok := h.Straight()
	return detection{ok: ok, faces: []Face{face}, rest: h}
}

func detectTriplet(h Hand) detection {
	face, rest, ok := h.Triplet()
	return detection{ok: ok, faces: []Face{face}, rest: rest}
}

func detectTwoPairs(h Hand) detection {
	high, low, rest, ok := h.Pairs()
	return detection{ok: ok, faces: []Face{high, low}, rest: rest}
}

func detectPair(h Hand) detection {
	face, rest, ok := h.Pair()
	return detection{ok: ok, faces: []Face{face}, rest: rest}
}

func detectHighCard(h Hand) detection {
	return detection{ok: true, rest: h}
}

// rank runs the cascade for one category. applicable=false means neither
// hand qualifies and the orchestrator should try the next category.
func (c category) rank(h1, h2 Hand) (result Result, applicable bool, err error) {
	d1, d2 := c.detect(h1), c.detect(h2)

	result, applicable = resolvePresence(d1.ok, d2.ok, h1, h2, c.name)
	if !applicable || !result.IsDraw() {
		return result, applicable, nil
	}

	for i := range d1.faces {
		if result := compareFaces(d1.faces[i], d2.faces[i], h1, h2, c.name); !result.IsDraw() {
			return result, true, nil
		}
	}

	switch c.onTie {
	case tieKickers:
		return highCard(d1.rest, d2.rest, c.name), true, nil
	case tieDraw:
		return Draw(), true, nil
	default:
		return Result{}, false, fmt.Errorf("%w: both hands hold %s on %s", ErrInvalidDeck, c.name, d1.faces[0])
	}
}

// Rank compares two five-card hands and returns the verdict of the highest
// category that applies to either hand. The only error is ErrInvalidDeck for
// input a single deck could not have dealt.
func Rank(h1, h2 Hand) (Result, error) {
	for _, c := range categories {
		result, applicable, err := c.rank(h1, h2)
		if err != nil {
			return Result{}, err
		}
		if applicable {
			return result, nil
		}
	}
	// unreachable: High Card applies to every hand
	return Draw(), nil
}
