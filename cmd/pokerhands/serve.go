package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/pokerhands/internal/server"
)

// ServeCmd runs the WebSocket showdown service
type ServeCmd struct {
	Addr  string `default:":8080" help:"Listen address"`
	Debug bool   `help:"Enable debug logging"`
}

func (c *ServeCmd) Run() error {
	logger := setupLogger(c.Debug)

	s := server.NewServer(c.Addr, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Stop(shutdownCtx)
	}
}
