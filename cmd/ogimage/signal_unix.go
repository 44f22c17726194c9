//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals cancel in-flight renders.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
