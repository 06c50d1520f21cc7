package main

import (
	"os"

	"github.com/lox/pokerhands/internal/display"
	"github.com/lox/pokerhands/poker"
)

// RankCmd ranks two hands given in the "Owner: 2H 3D 5S 9C KD" notation
type RankCmd struct {
	Hand1 string `arg:"" help:"First hand, e.g. 'Black: 2H 3D 5S 9C KD'"`
	Hand2 string `arg:"" help:"Second hand, e.g. 'White: 2C 3H 4S 8C AH'"`
	Debug bool   `help:"Enable debug logging"`
}

func (c *RankCmd) Run() error {
	logger := setupLogger(c.Debug)

	h1, err := poker.ParseHand(c.Hand1)
	if err != nil {
		return err
	}
	h2, err := poker.ParseHand(c.Hand2)
	if err != nil {
		return err
	}
	logger.Debug("parsed hands", "hand1", h1, "hand2", h2)

	result, err := poker.Rank(h1, h2)
	if err != nil {
		return err
	}

	display.Verdict(os.Stdout, h1, h2, result)
	return nil
}
