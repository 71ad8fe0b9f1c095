package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"keybridge/accel"
)

// Binding maps an accelerator to an action the demo performs when the
// chord is pressed.
type Binding struct {
	Accel  string `toml:"accel"`
	Action string `toml:"action"` // log | copy | quit
	Text   string `toml:"text"`   // payload for copy
}

type Config struct {
	LogPath  string    `toml:"log_path"`
	Bindings []Binding `toml:"binding"`
}

func defaultConfig() Config {
	return Config{
		Bindings: []Binding{
			{Accel: "ctrl+shift+k", Action: "log"},
			{Accel: "ctrl+shift+q", Action: "quit"},
		},
	}
}

// loadConfig reads the TOML file, falling back to defaults when no path
// is given and none exists.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config %s not found", path)
		}
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(cfg.Bindings) == 0 {
		return Config{}, fmt.Errorf("config %s has no bindings", path)
	}
	for i, b := range cfg.Bindings {
		if _, _, err := accel.Parse(b.Accel); err != nil {
			return Config{}, fmt.Errorf("binding %d: %w", i+1, err)
		}
		switch b.Action {
		case "log", "copy", "quit":
		default:
			return Config{}, fmt.Errorf("binding %d: unknown action %q", i+1, b.Action)
		}
	}
	return cfg, nil
}
