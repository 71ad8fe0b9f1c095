package manager

import (
	"runtime"
	"sync"

	"keybridge/keycode"
)

type op int

const (
	opRegister op = iota
	opUnregister
	opExit
)

type command struct {
	op    op
	desc  keycode.Descriptor
	reply chan error
}

// pump abstracts the platform message loop the dedicated thread runs, so
// the command-serialization core stays portable and testable. All methods
// except notify are called only from the loop thread.
type pump interface {
	// start creates the native state on the (locked) loop thread and
	// primes the message queue so notify can reach it.
	start() error
	// wait blocks for the next platform message. wake is true only for
	// the backend's own wake signal; every other message keeps pumping.
	// quit is true when the loop must end.
	wait() (wake, quit bool)
	register(d keycode.Descriptor) error
	unregister(d keycode.Descriptor) error
	// notify wakes a blocked wait. Callable from any goroutine.
	notify()
	stop()
}

// loopBackend serializes every native call through one OS thread. The
// command channel is the single source of truth for ordering; the loop
// never executes two commands concurrently.
type loopBackend struct {
	pump      pump
	commands  chan command
	events    chan RawEvent
	done      chan struct{}
	closeOnce sync.Once
}

// newLoopBackend spawns the loop thread and blocks until it is ready to
// accept commands. The one-shot handoff mirrors the construction contract:
// a failure here is fatal to the backend, not retried.
func newLoopBackend(p pump, events chan RawEvent) (*loopBackend, error) {
	b := &loopBackend{
		pump:     p,
		commands: make(chan command, 16),
		events:   events,
		done:     make(chan struct{}),
	}
	ready := make(chan error, 1)
	go b.loop(ready)
	if err := <-ready; err != nil {
		return nil, err
	}
	return b, nil
}

func (b *loopBackend) loop(ready chan<- error) {
	runtime.LockOSThread()
	defer close(b.done)

	if err := b.pump.start(); err != nil {
		ready <- err
		return
	}
	ready <- nil

	for {
		wake, quit := b.pump.wait()
		if quit {
			return
		}
		if !wake {
			continue
		}
		// One wake signal pops at most one command.
		select {
		case cmd := <-b.commands:
			switch cmd.op {
			case opExit:
				b.pump.stop()
				return
			case opRegister:
				cmd.reply <- b.pump.register(cmd.desc)
			case opUnregister:
				cmd.reply <- b.pump.unregister(cmd.desc)
			}
		default:
			// Wake with nothing queued; keep pumping.
		}
	}
}

// do submits one command and blocks until the loop thread answers. There
// is no timeout at this layer; callers needing one wrap the call. A
// command that is still queued when the loop exits is answered with
// ErrClosed, never left hanging.
func (b *loopBackend) do(o op, d keycode.Descriptor) error {
	reply := make(chan error, 1)
	select {
	case b.commands <- command{op: o, desc: d, reply: reply}:
	case <-b.done:
		return ErrClosed
	}
	b.pump.notify()
	select {
	case err := <-reply:
		return err
	case <-b.done:
		return ErrClosed
	}
}

func (b *loopBackend) Register(d keycode.Descriptor) error {
	return b.do(opRegister, d)
}

func (b *loopBackend) Unregister(d keycode.Descriptor) error {
	return b.do(opUnregister, d)
}

func (b *loopBackend) Events() <-chan RawEvent {
	return b.events
}

// Close pushes an exit command, wakes the loop and joins it. Idempotent.
// Commands submitted after Close are not executed; they fail with
// ErrClosed once the loop is gone.
func (b *loopBackend) Close() error {
	b.closeOnce.Do(func() {
		select {
		case b.commands <- command{op: opExit}:
		case <-b.done:
			return
		}
		b.pump.notify()
		<-b.done
	})
	return nil
}
