package fixtures

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhands/poker"
)

// CaseResult is the outcome of running one fixture case
type CaseResult struct {
	Case     Case
	Actual   string
	Expected string
	Passed   bool
}

// Report aggregates the outcomes of a suite run
type Report struct {
	Results  []CaseResult
	Passed   int
	Failed   int
	Duration time.Duration
}

// Ok reports whether every case passed
func (r *Report) Ok() bool {
	return r.Failed == 0
}

// Runner executes fixture suites. Cases are independent pure computations,
// so they run concurrently; results keep the suite's declaration order.
type Runner struct {
	logger *log.Logger
	clock  quartz.Clock
}

// NewRunner creates a Runner. A nil clock falls back to the real clock.
func NewRunner(logger *log.Logger, clock quartz.Clock) *Runner {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Runner{
		logger: logger.WithPrefix("fixtures"),
		clock:  clock,
	}
}

// Run ranks every case in the suite and compares the verdict against the
// case's expectation. Malformed hands or invalid-deck input abort the run;
// a verdict mismatch is recorded as a failure and the run continues.
func (r *Runner) Run(ctx context.Context, suite *Suite) (*Report, error) {
	start := r.clock.Now()
	results := make([]CaseResult, len(suite.Cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, c := range suite.Cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			black, err := poker.ParseHand(c.Black)
			if err != nil {
				return fmt.Errorf("case %q: %w", c.Name, err)
			}
			white, err := poker.ParseHand(c.White)
			if err != nil {
				return fmt.Errorf("case %q: %w", c.Name, err)
			}

			result, err := poker.Rank(black, white)
			if err != nil {
				return fmt.Errorf("case %q: %w", c.Name, err)
			}

			expected := poker.ParseResult(c.Expect)
			results[i] = CaseResult{
				Case:     c,
				Actual:   result.String(),
				Expected: expected.String(),
				Passed:   result == expected,
			}
			r.logger.Debug("ran case", "name", c.Name, "actual", results[i].Actual, "passed", results[i].Passed)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Results:  results,
		Duration: r.clock.Since(start),
	}
	for _, result := range results {
		if result.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	r.logger.Info("suite finished", "passed", report.Passed, "failed", report.Failed, "duration", report.Duration)
	return report, nil
}
