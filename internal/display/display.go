// Package display renders verdicts and fixture reports for the CLI.
package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerhands/internal/fixtures"
	"github.com/lox/pokerhands/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	drawStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// Verdict renders a showdown between two hands and its result
func Verdict(w io.Writer, h1, h2 poker.Hand, result poker.Result) {
	fmt.Fprintf(w, "%s\n", handStyle.Render(h1.String()))
	fmt.Fprintf(w, "%s\n\n", handStyle.Render(h2.String()))

	if result.IsDraw() {
		fmt.Fprintf(w, "%s\n", drawStyle.Render(result.String()))
		return
	}
	fmt.Fprintf(w, "%s\n", winStyle.Render(result.String()))
}

// FixtureReport renders a fixture run: one line per case when verbose (or on
// any failure), then a summary. Failures always print expected vs actual.
func FixtureReport(w io.Writer, report *fixtures.Report, verbose bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, result := range report.Results {
		switch {
		case !result.Passed:
			fmt.Fprintf(tw, "%s\t%s\texpected %q, got %q\n",
				failStyle.Render("✗"),
				result.Case.Name,
				result.Expected,
				result.Actual)
		case verbose:
			fmt.Fprintf(tw, "%s\t%s\t%s\n",
				winStyle.Render("✓"),
				result.Case.Name,
				result.Actual)
		}
	}
	tw.Flush()

	summary := fmt.Sprintf("%d passed, %d failed in %v", report.Passed, report.Failed, report.Duration)
	if report.Ok() {
		fmt.Fprintf(w, "%s\n", headerStyle.Render(summary))
	} else {
		fmt.Fprintf(w, "%s\n", failStyle.Render(summary))
	}
}
