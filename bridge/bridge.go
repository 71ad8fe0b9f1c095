// Package bridge turns the raw native notification stream into
// descriptor-enriched events, delivered either through a cancellable
// polling queue or a single persistent callback.
package bridge

import (
	"context"
	"sync"

	"keybridge/keycode"
	"keybridge/log"
	"keybridge/manager"
	"keybridge/registry"
)

// Phase distinguishes press from release.
type Phase int

const (
	Pressed Phase = iota
	Released
)

func (p Phase) String() string {
	if p == Released {
		return "released"
	}
	return "pressed"
}

// Event is a resolved hotkey notification: the raw identifier joined back
// to the descriptor that registered it.
type Event struct {
	ID    uint32
	Key   keycode.Code
	Mods  keycode.Modifiers
	Phase Phase
}

// Bridge owns the single raw stream coming out of the platform backend.
// Exactly one consumption model is active at a time: the poller (handed
// out once via TakePoll) or the callback subscriber.
type Bridge struct {
	raw    <-chan manager.RawEvent
	table  *registry.Table
	cancel chan struct{}

	mu         sync.Mutex
	pollTaken  bool
	subscriber func(Event)
	subStop    chan struct{}
	subDone    chan struct{}
	closed     bool
}

func New(raw <-chan manager.RawEvent, table *registry.Table) *Bridge {
	return &Bridge{
		raw:    raw,
		table:  table,
		cancel: make(chan struct{}),
	}
}

// resolve performs the single table lookup per notification. A miss means
// the hotkey was unregistered while the event was in flight; the event is
// dropped, which is correct, not an error.
func (b *Bridge) resolve(raw manager.RawEvent) (Event, bool) {
	d, ok := b.table.Lookup(raw.ID)
	if !ok {
		log.Dropped(raw.ID)
		return Event{}, false
	}
	phase := Pressed
	if !raw.Pressed {
		phase = Released
	}
	return Event{ID: raw.ID, Key: d.Key, Mods: d.Mods, Phase: phase}, true
}

// Poller is the single-consumer polling handle.
type Poller struct {
	bridge *Bridge
}

// TakePoll hands out the polling consumer. Only one exists per bridge;
// subsequent calls return nil. Unavailable while a callback subscriber is
// attached.
func (b *Bridge) TakePoll() *Poller {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pollTaken || b.subscriber != nil || b.closed {
		return nil
	}
	b.pollTaken = true
	return &Poller{bridge: b}
}

// Poll blocks until a resolvable event arrives, the context is cancelled,
// or the bridge shuts down. Cancellation wins over delivery when both are
// ready. ok is false on cancellation or shutdown.
func (p *Poller) Poll(ctx context.Context) (Event, bool) {
	b := p.bridge
	for {
		// Biased: drain cancellation before considering delivery.
		select {
		case <-ctx.Done():
			return Event{}, false
		case <-b.cancel:
			return Event{}, false
		default:
		}

		select {
		case <-ctx.Done():
			return Event{}, false
		case <-b.cancel:
			return Event{}, false
		case raw, ok := <-b.raw:
			if !ok {
				return Event{}, false
			}
			ev, ok := b.resolve(raw)
			if !ok {
				continue
			}
			return ev, true
		}
	}
}

// TryPoll returns the next resolvable event if one is already queued.
// Never blocks; ok is false when the queue is empty or the bridge has
// shut down.
func (p *Poller) TryPoll() (Event, bool) {
	b := p.bridge
	for {
		select {
		case <-b.cancel:
			return Event{}, false
		default:
		}

		select {
		case raw, ok := <-b.raw:
			if !ok {
				return Event{}, false
			}
			ev, ok := b.resolve(raw)
			if !ok {
				continue
			}
			return ev, true
		default:
			return Event{}, false
		}
	}
}

// Subscribe installs the persistent callback. Only one subscriber can
// exist process-wide for the native stream; Subscribe reports false while
// one is attached (or the poller was taken) and the caller must Detach
// first. The callback runs on a dispatch goroutine so the native side
// never blocks.
func (b *Bridge) Subscribe(fn func(Event)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if fn == nil || b.subscriber != nil || b.pollTaken || b.closed {
		return false
	}
	b.subscriber = fn
	b.subStop = make(chan struct{})
	b.subDone = make(chan struct{})
	go b.dispatch(fn, b.subStop, b.subDone)
	return true
}

func (b *Bridge) dispatch(fn func(Event), stop, done chan struct{}) {
	defer close(done)
	for {
		// Biased: a closed stop must win over a ready raw event, or a
		// detached callback could keep consuming the stream.
		select {
		case <-stop:
			return
		case <-b.cancel:
			return
		default:
		}

		select {
		case <-stop:
			return
		case <-b.cancel:
			return
		case raw, ok := <-b.raw:
			if !ok {
				return
			}
			select {
			case <-stop:
				return
			default:
			}
			if ev, ok := b.resolve(raw); ok {
				fn(ev)
			}
		}
	}
}

// Detach removes the current subscriber, if any. Blocks until the
// dispatch goroutine has exited, so the callback can no longer fire once
// Detach returns; it must therefore not be called from inside the
// callback. Idempotent; after it returns, a new Subscribe can succeed.
func (b *Bridge) Detach() {
	b.mu.Lock()
	if b.subscriber == nil {
		b.mu.Unlock()
		return
	}
	stop, done := b.subStop, b.subDone
	b.subscriber = nil
	b.subStop = nil
	b.subDone = nil
	b.mu.Unlock()

	close(stop)
	<-done
}

// Close cancels pending polls and stops dispatch, waiting for it to
// exit. Idempotent.
func (b *Bridge) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.cancel)
	var done chan struct{}
	if b.subscriber != nil {
		close(b.subStop)
		done = b.subDone
		b.subscriber = nil
		b.subStop = nil
		b.subDone = nil
	}
	b.mu.Unlock()

	if done != nil {
		<-done
	}
}
