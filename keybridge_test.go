package keybridge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"keybridge/bridge"
	"keybridge/keycode"
	"keybridge/manager"
)

func newTestHotKeys(t *testing.T) (*HotKeys, *manager.Fake) {
	t.Helper()
	fake := manager.NewFake()
	h := NewWithBackend(fake)
	t.Cleanup(h.Destroy)
	return h, fake
}

func TestRegisterResolveUnregisterDrop(t *testing.T) {
	h, fake := newTestHotKeys(t)

	out := h.Register(keycode.ModCtrl, keycode.KeyA)
	if !out.Ok() {
		t.Fatalf("Register: %v", out.Err)
	}
	id := out.ID

	p := h.TakePoll()
	if p == nil {
		t.Fatal("TakePoll returned nil")
	}

	fake.SimPress(id)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ev, ok := p.Poll(ctx)
	if !ok {
		t.Fatal("expected resolved event")
	}
	if ev.ID != id || ev.Key != keycode.KeyA || ev.Mods != keycode.ModCtrl || ev.Phase != bridge.Pressed {
		t.Fatalf("unexpected event %+v", ev)
	}

	out = h.Unregister(keycode.ModCtrl, keycode.KeyA)
	if !out.Ok() || out.ID != id {
		t.Fatalf("Unregister = %+v", out)
	}

	// Event for the now-unregistered id must be dropped silently.
	fake.SimPress(id)
	ctx2, cancel2 := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel2()
	if _, ok := p.Poll(ctx2); ok {
		t.Fatal("event after unregister should not surface")
	}
}

func TestSameDescriptorSameID(t *testing.T) {
	h, _ := newTestHotKeys(t)

	first := h.Register(keycode.ModCtrl, keycode.KeyA)
	second := h.Register(keycode.ModCtrl, keycode.KeyA)
	if first.ID != second.ID {
		t.Fatalf("ids differ: %d vs %d", first.ID, second.ID)
	}
	// The second outcome carries whatever the native layer reported for
	// re-registration; the fake rejects duplicates.
	if second.Ok() {
		t.Fatal("fake backend rejects duplicate registration")
	}
}

func TestRegisterConflictLeavesTableUntouched(t *testing.T) {
	fake := manager.NewFake()
	conflict := errors.New("hotkey owned by another process")
	fake.RegisterErr = func(keycode.Descriptor) error { return conflict }
	h := NewWithBackend(fake)
	defer h.Destroy()

	out := h.Register(keycode.ModCtrl, keycode.KeyB)
	if out.Ok() || !errors.Is(out.Err, conflict) {
		t.Fatalf("Outcome = %+v, want conflict", out)
	}

	// No table entry: a stray event for that id must not resolve.
	p := h.TakePoll()
	fake.SimPress(out.ID)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if _, ok := p.Poll(ctx); ok {
		t.Fatal("event surfaced despite failed registration")
	}
}

func TestUnregisterUnknownForwarded(t *testing.T) {
	h, _ := newTestHotKeys(t)
	out := h.Unregister(keycode.ModCtrl, keycode.KeyZ)
	if out.Ok() {
		t.Fatal("expected native layer failure for unknown unregister")
	}
}

func TestConcurrentRegisterUnregister(t *testing.T) {
	h, fake := newTestHotKeys(t)

	keys := []keycode.Code{
		keycode.KeyA, keycode.KeyB, keycode.KeyC, keycode.KeyD,
		keycode.KeyE, keycode.KeyF, keycode.KeyG, keycode.KeyH,
	}

	var wg sync.WaitGroup
	for i, k := range keys {
		wg.Add(1)
		go func(i int, k keycode.Code) {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				if out := h.Register(keycode.ModCtrl, k); !out.Ok() {
					t.Errorf("Register(%v): %v", k, out.Err)
					return
				}
				if out := h.Unregister(keycode.ModCtrl, k); !out.Ok() {
					t.Errorf("Unregister(%v): %v", k, out.Err)
					return
				}
			}
			if i%2 == 0 {
				h.Register(keycode.ModCtrl, k)
			}
		}(i, k)
	}
	wg.Wait()

	// Net result: exactly the even-indexed keys remain registered.
	for i, k := range keys {
		d := keycode.Descriptor{Key: k, Mods: keycode.ModCtrl}
		want := i%2 == 0
		if fake.Registered(d.ID()) != want {
			t.Errorf("%v registered=%v, want %v", k, !want, want)
		}
	}
}

func TestSubscribeCallbackFlow(t *testing.T) {
	h, fake := newTestHotKeys(t)

	out := h.Register(keycode.ModCtrl|keycode.ModShift, keycode.KeyP)
	if !out.Ok() {
		t.Fatalf("Register: %v", out.Err)
	}

	got := make(chan bridge.Event, 2)
	if !h.Subscribe(func(ev bridge.Event) { got <- ev }) {
		t.Fatal("Subscribe failed")
	}
	if h.Subscribe(func(bridge.Event) {}) {
		t.Fatal("second Subscribe should fail until Detach")
	}

	fake.SimPress(out.ID)
	fake.SimRelease(out.ID)

	for _, want := range []bridge.Phase{bridge.Pressed, bridge.Released} {
		select {
		case ev := <-got:
			if ev.Phase != want || ev.Key != keycode.KeyP {
				t.Fatalf("event %+v, want phase %v", ev, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %v", want)
		}
	}
}

func TestDestroyIdempotentAndCancelsPoll(t *testing.T) {
	h, _ := newTestHotKeys(t)
	p := h.TakePoll()

	done := make(chan bool, 1)
	go func() {
		_, ok := p.Poll(context.Background())
		done <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	h.Destroy()
	h.Destroy() // finalizer path calls again

	select {
	case ok := <-done:
		if ok {
			t.Fatal("poll should report no event after Destroy")
		}
	case <-time.After(time.Second):
		t.Fatal("Destroy did not cancel the pending poll")
	}
}
