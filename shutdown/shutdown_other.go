//go:build !windows

// Package shutdown wires up the termination signals for the current
// platform.
package shutdown

import (
	"os"
	"os/signal"
	"syscall"
)

// Notify returns a channel that receives the platform's termination
// signals.
func Notify() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	return ch
}
