// keybridge demo: registers the configured hotkeys and shows their
// events live, either in a small TUI or as plain lines.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"keybridge"
	"keybridge/accel"
	"keybridge/bridge"
	"keybridge/doctor"
	"keybridge/log"
	"keybridge/shutdown"
)

var version = "dev"

type boundHotkey struct {
	binding Binding
	id      uint32
}

func run() {
	configPath := flag.String("config", "", "path to TOML config")
	logPath := flag.String("logpath", "", "log directory (default: OS-specific)")
	runDoctor := flag.Bool("doctor", false, "run interactive diagnostics and exit")
	autoDoctor := flag.Bool("auto", false, "doctor: synthesize the test chord instead of waiting")
	plain := flag.Bool("plain", false, "plain line output instead of the TUI")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("keybridge", version)
		return
	}
	if *runDoctor {
		os.Exit(doctor.Run(*autoDoctor))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	dir, err := log.ResolveDir(firstNonEmpty(*logPath, cfg.LogPath))
	if err == nil {
		log.SetDir(dir)
		if err := log.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
		}
	}
	defer log.Close()

	hk, err := keybridge.Create()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hotkey subsystem unavailable: %v\n", err)
		os.Exit(1)
	}
	defer hk.Destroy()

	bound := registerBindings(hk, cfg.Bindings)
	if len(bound) == 0 {
		fmt.Fprintln(os.Stderr, "no binding could be registered")
		os.Exit(1)
	}

	events := make(chan bridge.Event, 16)
	if !hk.Subscribe(func(ev bridge.Event) {
		select {
		case events <- ev:
		default:
		}
	}) {
		fmt.Fprintln(os.Stderr, "event stream unavailable")
		os.Exit(1)
	}
	defer hk.Detach()

	sigCh := shutdown.Notify()

	useTUI := !*plain && term.IsTerminal(int(os.Stdout.Fd()))
	if useTUI {
		runTUI(bound, events, sigCh)
		return
	}
	runPlain(bound, events, sigCh)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func registerBindings(hk *keybridge.HotKeys, bindings []Binding) map[uint32]boundHotkey {
	bound := map[uint32]boundHotkey{}
	for _, b := range bindings {
		mods, key, err := accel.Parse(b.Accel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", b.Accel, err)
			continue
		}
		out := hk.Register(mods, key)
		if !out.Ok() {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", b.Accel, out.Err)
			continue
		}
		bound[out.ID] = boundHotkey{binding: b, id: out.ID}
	}
	return bound
}

// perform runs the binding's action on a press. Returns true when the
// demo should exit.
func perform(b Binding, ev bridge.Event) bool {
	if ev.Phase != bridge.Pressed {
		return false
	}
	switch b.Action {
	case "quit":
		return true
	case "log":
		log.Infof("hotkey %s pressed", b.Accel)
	case "copy":
		text := b.Text
		if text == "" {
			text = b.Accel
		}
		if err := clipboard.WriteAll(text); err != nil {
			log.Errorf("clipboard: %v", err)
		}
	}
	return false
}

func runPlain(bound map[uint32]boundHotkey, events <-chan bridge.Event, sigCh <-chan os.Signal) {
	for id, bh := range bound {
		fmt.Printf("registered %s (id %d, action %s)\n", bh.binding.Accel, id, bh.binding.Action)
	}
	for {
		select {
		case <-sigCh:
			return
		case ev := <-events:
			bh, ok := bound[ev.ID]
			if !ok {
				continue
			}
			fmt.Printf("%s %s\n", bh.binding.Accel, ev.Phase)
			if perform(bh.binding, ev) {
				return
			}
		}
	}
}
