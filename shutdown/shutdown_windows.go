//go:build windows

// Package shutdown wires up the termination signals for the current
// platform. SIGTERM does not exist on Windows.
package shutdown

import (
	"os"
	"os/signal"
)

// Notify returns a channel that receives the platform's termination
// signals.
func Notify() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return ch
}
