package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lox/pokerhands/internal/display"
	"github.com/lox/pokerhands/internal/fixtures"
)

// FixturesCmd runs a fixture suite and reports pass/fail per case
type FixturesCmd struct {
	File    string `short:"f" help:"Fixture suite HCL file (defaults to the embedded kata suite)" type:"existingfile"`
	Verbose bool   `short:"V" help:"Show every case, not only failures"`
	Debug   bool   `help:"Enable debug logging"`
}

func (c *FixturesCmd) Run() error {
	logger := setupLogger(c.Debug)

	var (
		suite *fixtures.Suite
		err   error
	)
	if c.File != "" {
		suite, err = fixtures.Load(c.File)
	} else {
		suite, err = fixtures.Default()
	}
	if err != nil {
		return err
	}

	runner := fixtures.NewRunner(logger, nil)
	report, err := runner.Run(context.Background(), suite)
	if err != nil {
		return err
	}

	display.FixtureReport(os.Stdout, report, c.Verbose)

	if !report.Ok() {
		return fmt.Errorf("%d of %d cases failed", report.Failed, len(report.Results))
	}
	return nil
}
