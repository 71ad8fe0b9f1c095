// Package manager owns the native hotkey registration primitive. On
// Windows the registration API is bound to the thread that calls it, so
// the backend there runs a dedicated message-pump thread fed by a command
// channel; elsewhere registration happens directly on the caller's
// goroutine under a lock.
package manager

import (
	"errors"

	"keybridge/keycode"
)

// ErrClosed is returned when an operation reaches a backend whose loop
// thread has exited. Treat it as fatal to the backend instance.
var ErrClosed = errors.New("hotkey backend closed")

// ErrUnsupported is returned when the descriptor has no native mapping on
// this platform.
var ErrUnsupported = errors.New("key or modifier not supported on this platform")

// Buffer size of the raw event stream. Events beyond this are dropped
// rather than blocking the native notification path.
const eventBufferSize = 100

// RawEvent is a native notification before descriptor resolution: just
// the identifier the OS echoed back and the key phase.
type RawEvent struct {
	ID      uint32
	Pressed bool
}

// Outcome reports the result of a register or unregister call. The
// identifier is always set, success or not, so callers can correlate.
type Outcome struct {
	ID  uint32
	Err error
}

func (o Outcome) Ok() bool { return o.Err == nil }

// Backend is the native registration primitive. Implementations must be
// safe for concurrent callers; Events carries press/release notifications
// for every registered combination.
type Backend interface {
	Register(d keycode.Descriptor) error
	Unregister(d keycode.Descriptor) error
	Events() <-chan RawEvent
	Close() error
}

// New creates the platform backend: a dedicated-thread message pump on
// Windows, a direct registration wrapper elsewhere.
func New() (Backend, error) {
	return newPlatformBackend()
}
