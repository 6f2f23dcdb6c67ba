package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// WaitForShutdown blocks until the process receives SIGINT or SIGTERM, or
// until ctx is done.
func WaitForShutdown(ctx context.Context) {
	sigCtx, stop := signal.NotifyContext(ctx, shutdownSignals...)
	defer stop()

	<-sigCtx.Done()

	if ctx.Err() != nil {
		slog.Info("Shutdown requested", "reason", ctx.Err())
		return
	}
	slog.Info("Shutdown signal received")
}
