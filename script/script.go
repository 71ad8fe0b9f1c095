// Package script exposes the hotkey handle to an embedded goja runtime.
// Mechanical glue: canonical tokens in, plain objects out, errors as
// values rather than panics. goja is single-threaded, so events are
// drained by the script through next() instead of a callback.
package script

import (
	"context"
	"sync"
	"time"

	"github.com/dop251/goja"

	"keybridge"
	"keybridge/bridge"
	"keybridge/keycode"
	"keybridge/manager"
)

// Binding is the state behind the "hotkeys" object installed in a
// runtime.
type Binding struct {
	hk *keybridge.HotKeys

	pollOnce sync.Once
	poller   *bridge.Poller
}

// Bind installs the hotkeys object into the runtime. The script sees:
//
//	hotkeys.register(["Control"], "KeyA")  -> {id, ok, error}
//	hotkeys.unregister(["Control"], "KeyA")-> {id, ok, error}
//	hotkeys.next(250)                      -> event object or null
//	hotkeys.codes() / hotkeys.modifiers()  -> string arrays
//	hotkeys.label("KeyA")                  -> "a" or null
//	hotkeys.destroy()
func Bind(vm *goja.Runtime, hk *keybridge.HotKeys) error {
	b := &Binding{hk: hk}

	obj := vm.NewObject()
	obj.Set("register", func(mods []string, key string) map[string]any {
		return b.operate(mods, key, false)
	})
	obj.Set("unregister", func(mods []string, key string) map[string]any {
		return b.operate(mods, key, true)
	})
	obj.Set("next", func(timeoutMs int) any {
		return b.next(timeoutMs)
	})
	obj.Set("codes", func() []string {
		tokens := make([]string, 0)
		for _, c := range keycode.Codes() {
			tokens = append(tokens, c.String())
		}
		return tokens
	})
	obj.Set("modifiers", func() []string {
		return keycode.ModifierNames()
	})
	obj.Set("label", func(token string) any {
		c, ok := keycode.Parse(token)
		if !ok {
			return nil
		}
		label, ok := keycode.Label(c)
		if !ok {
			return nil
		}
		return label
	})
	obj.Set("destroy", func() {
		b.hk.Destroy()
	})

	return vm.Set("hotkeys", obj)
}

func (b *Binding) operate(mods []string, key string, unregister bool) map[string]any {
	var set keycode.Modifiers
	for _, name := range mods {
		m, ok := keycode.ParseModifier(name)
		if !ok {
			return map[string]any{"id": 0, "ok": false, "error": "unknown modifier " + name}
		}
		set |= m
	}
	code, ok := keycode.Parse(key)
	if !ok {
		return map[string]any{"id": 0, "ok": false, "error": "unknown key " + key}
	}

	var out manager.Outcome
	if unregister {
		out = b.hk.Unregister(set, code)
	} else {
		out = b.hk.Register(set, code)
	}
	res := map[string]any{"id": out.ID, "ok": out.Ok()}
	if out.Err != nil {
		res["error"] = out.Err.Error()
	}
	return res
}

// next blocks up to timeoutMs for one resolved event. Returns nil on
// timeout, on destroy, or when the host already took the poller.
func (b *Binding) next(timeoutMs int) any {
	b.pollOnce.Do(func() { b.poller = b.hk.TakePoll() })
	if b.poller == nil {
		return nil
	}

	var ev bridge.Event
	var ok bool
	if timeoutMs <= 0 {
		// Non-blocking probe: deliver a queued event if there is one. A
		// zero-duration context would lose to Poll's cancellation bias.
		ev, ok = b.poller.TryPoll()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutMs)*time.Millisecond)
		defer cancel()
		ev, ok = b.poller.Poll(ctx)
	}
	if !ok {
		return nil
	}
	modTokens := make([]string, 0)
	for _, bit := range ev.Mods.Split() {
		modTokens = append(modTokens, bit.String())
	}
	return map[string]any{
		"id":    ev.ID,
		"code":  ev.Key.String(),
		"mods":  modTokens,
		"phase": ev.Phase.String(),
	}
}
