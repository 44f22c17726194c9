package main

import (
	"context"
	"os/signal"
)

// notifyContext derives a context canceled on the first shutdown signal.
// stop releases the signal handler.
func notifyContext(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
