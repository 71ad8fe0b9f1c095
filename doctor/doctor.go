// Package doctor runs interactive system diagnostics for the hotkey
// bridge: can the native subsystem initialize, does a registration stick,
// and do events actually arrive.
package doctor

import (
	"context"
	"fmt"
	"os"
	"time"

	"keybridge"
	"keybridge/bridge"
	"keybridge/keycode"
	"keybridge/shutdown"
)

// Run executes the diagnostic checks and returns an exit code (0=all
// pass, 1=any fail). With auto set, the test chord is synthesized instead
// of waiting for the user to press it.
func Run(auto bool) int {
	resetTerminal()

	sigCh := shutdown.Notify()
	go func() {
		<-sigCh
		fmt.Println("\ninterrupted")
		resetTerminal()
		os.Exit(1)
	}()

	fmt.Println("keybridge doctor - interactive system diagnostics")
	fmt.Println("=================================================")

	allPass := true
	if !checkCreate() {
		allPass = false
	}
	if allPass && !checkEvent(auto) {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkCreate() bool {
	fmt.Println()
	fmt.Println("[1/2] Native subsystem")

	hk, err := keybridge.Create()
	if err != nil {
		fmt.Printf("  FAIL: could not initialize hotkey subsystem: %v\n", err)
		return false
	}
	hk.Destroy()
	fmt.Println("  PASS: hotkey subsystem initialized")
	return true
}

func checkEvent(auto bool) bool {
	fmt.Println()
	fmt.Println("[2/2] Event delivery")

	hk, err := keybridge.Create()
	if err != nil {
		fmt.Printf("  FAIL: could not initialize hotkey subsystem: %v\n", err)
		return false
	}
	defer hk.Destroy()

	out := hk.Register(keycode.ModCtrl|keycode.ModShift, keycode.Space)
	if !out.Ok() {
		fmt.Printf("  FAIL: could not register Ctrl+Shift+Space: %v\n", out.Err)
		return false
	}
	defer hk.Unregister(keycode.ModCtrl|keycode.ModShift, keycode.Space)

	p := hk.TakePoll()
	if p == nil {
		fmt.Println("  FAIL: event stream unavailable")
		return false
	}

	if auto {
		fmt.Println("Synthesizing Ctrl+Shift+Space...")
		go func() {
			// uinput devices need a moment before they deliver.
			time.Sleep(500 * time.Millisecond)
			if err := simulateChord(); err != nil {
				fmt.Printf("  WARN: could not synthesize chord: %v\n", err)
			}
		}()
	} else {
		fmt.Println("Press Ctrl+Shift+Space...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ev, ok := p.Poll(ctx)
	if !ok {
		fmt.Println("  FAIL: timeout waiting for hotkey event")
		return false
	}
	if ev.Key != keycode.Space {
		fmt.Printf("  FAIL: unexpected event %v\n", ev)
		return false
	}
	fmt.Printf("  PASS: hotkey detected (id %d, %s)\n", ev.ID, ev.Phase)

	// Drain the release so it does not leak into the caller's terminal.
	if ev.Phase == bridge.Pressed {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		p.Poll(ctx2)
	}
	resetTerminal()
	return true
}
