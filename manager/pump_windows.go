//go:build windows

package manager

import (
	"fmt"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"keybridge/keycode"
)

var (
	user32               = syscall.NewLazyDLL("user32.dll")
	procRegisterHotKey   = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey = user32.NewProc("UnregisterHotKey")
	procGetMessageW      = user32.NewProc("GetMessageW")
	procPostThreadMsgW   = user32.NewProc("PostThreadMessageW")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

const (
	wmHotkey = 0x0312
	// WM_APP: private to this pump, never emitted by the system.
	wmWake = 0x8000

	modNoRepeat = 0x4000

	// Priming registration so the thread owns a message queue before the
	// first wake can be posted. Ctrl+Shift+F24: no physical keyboard
	// carries F24, so it never fires.
	primeID   = 0xBFFF
	primeMods = 0x0002 | 0x0004 // MOD_CONTROL | MOD_SHIFT
	primeVK   = 0x87            // VK_F24
)

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// windowsPump implements pump over RegisterHotKey. Registration is bound
// to the thread that owns the message queue, which is why everything runs
// behind the loop in loop.go.
type windowsPump struct {
	emit     func(RawEvent)
	threadID uint32

	// Live registrations, keyed by identifier; only the loop thread
	// touches this map. The VK is needed to synthesize release events.
	registered map[uint32]uint32

	quit     chan struct{}
	quitOnce sync.Once
}

func newWindowsPump(emit func(RawEvent)) *windowsPump {
	return &windowsPump{
		emit:       emit,
		registered: map[uint32]uint32{},
		quit:       make(chan struct{}),
	}
}

func (p *windowsPump) start() error {
	p.threadID = windows.GetCurrentThreadId()
	// Failure to prime is not fatal: the queue is still created by the
	// attempt and real registrations will surface their own errors.
	procRegisterHotKey.Call(0, primeID, primeMods, primeVK)
	return nil
}

func (p *windowsPump) wait() (wake, quit bool) {
	var m msg
	r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
	if int32(r) <= 0 {
		// WM_QUIT or a failed queue read; either way the pump is done.
		return false, true
	}
	switch m.message {
	case wmWake:
		return true, false
	case wmHotkey:
		id := uint32(m.wParam)
		if id == primeID {
			return false, false
		}
		if vk, ok := p.registered[id]; ok {
			p.emit(RawEvent{ID: id, Pressed: true})
			go p.watchRelease(id, vk)
		}
		return false, false
	}
	return false, false
}

// watchRelease polls the async key state until the key goes up, then
// emits the release. WM_HOTKEY only reports presses.
func (p *windowsPump) watchRelease(id, vk uint32) {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-p.quit:
			return
		case <-ticker.C:
			r, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
			if r&0x8000 == 0 {
				p.emit(RawEvent{ID: id, Pressed: false})
				return
			}
		}
	}
}

func (p *windowsPump) register(d keycode.Descriptor) error {
	vk, ok := keycode.EncodeKey(d.Key)
	if !ok {
		return fmt.Errorf("%s: %w", d, ErrUnsupported)
	}
	mods, ok := keycode.EncodeMods(d.Mods)
	if !ok {
		return fmt.Errorf("%s: %w", d, ErrUnsupported)
	}
	id := d.ID()
	r, _, err := procRegisterHotKey.Call(0, uintptr(id), uintptr(mods|modNoRepeat), uintptr(vk))
	if r == 0 {
		return fmt.Errorf("registering %s: %w", d, err)
	}
	p.registered[id] = vk
	return nil
}

func (p *windowsPump) unregister(d keycode.Descriptor) error {
	id := d.ID()
	// Forwarded as-is even when we have no record of the id; the OS
	// reports whether anything was actually bound.
	r, _, err := procUnregisterHotKey.Call(0, uintptr(id))
	if r == 0 {
		// Still OS-registered, so keep it in the map or wait() would stop
		// emitting its events.
		return fmt.Errorf("unregistering %s: %w", d, err)
	}
	delete(p.registered, id)
	return nil
}

func (p *windowsPump) notify() {
	procPostThreadMsgW.Call(uintptr(p.threadID), wmWake, 0, 0)
}

func (p *windowsPump) stop() {
	p.quitOnce.Do(func() { close(p.quit) })
	for id := range p.registered {
		procUnregisterHotKey.Call(0, uintptr(id))
	}
	procUnregisterHotKey.Call(0, primeID)
}

func newPlatformBackend() (Backend, error) {
	events := make(chan RawEvent, eventBufferSize)
	p := newWindowsPump(func(ev RawEvent) {
		select {
		case events <- ev:
		default:
			// Consumer fell behind; dropping beats blocking the pump.
		}
	})
	return newLoopBackend(p, events)
}
