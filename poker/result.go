package poker

import "strings"

// Outcome distinguishes a decided showdown from a draw
type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomeWin
)

// Result is the verdict of ranking two hands: either a draw, or a win naming
// the winning owner and a human-readable reason. The reason carries the
// category name, suffixed with the deciding tie-break when one was needed
// (e.g. "Two Pairs: K over 3").
type Result struct {
	Outcome Outcome
	Winner  string
	Reason  string
}

// Draw returns the draw verdict
func Draw() Result {
	return Result{Outcome: OutcomeDraw}
}

// Win returns a winning verdict for the given owner
func Win(winner, reason string) Result {
	return Result{Outcome: OutcomeWin, Winner: winner, Reason: reason}
}

// IsDraw reports whether the result is a draw
func (r Result) IsDraw() bool {
	return r.Outcome == OutcomeDraw
}

// String renders the verdict as "Draw" or "Win <owner>, <reason>"
func (r Result) String() string {
	if r.IsDraw() {
		return "Draw"
	}
	return "Win " + r.Winner + ", " + r.Reason
}

// ParseResult parses a rendered verdict back into a Result. Anything that is
// not a well-formed win line is treated as a draw, mirroring String.
func ParseResult(s string) Result {
	rest, found := strings.CutPrefix(s, "Win ")
	if !found {
		return Draw()
	}
	winner, reason, found := strings.Cut(rest, ", ")
	if !found {
		return Draw()
	}
	return Win(winner, reason)
}
