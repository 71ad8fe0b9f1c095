package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"keybridge/keycode"
)

func setupLogDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	SetDir(tmp)
	t.Cleanup(func() { Close(); SetDir("") })
	return tmp
}

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/mylog")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/mylog" {
		t.Errorf("got %q, want /tmp/mylog", got)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv("KEYBRIDGE_LOG_PATH", "/tmp/keybridge-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/keybridge-env-log" {
		t.Errorf("got %q, want /tmp/keybridge-env-log", got)
	}
}

func TestNoopBeforeInit(t *testing.T) {
	// Must not panic or create files when Init never ran.
	Info("ignored")
	Registered(1, "Control+KeyA", nil)
	Dropped(1)
}

func TestInitAndWrite(t *testing.T) {
	tmp := setupLogDir(t)
	if err := Init(); err != nil {
		t.Fatal(err)
	}

	d := keycode.Descriptor{Key: keycode.KeyA, Mods: keycode.ModCtrl}
	Registered(d.ID(), d.String(), nil)
	Info("hello")
	Close()

	data, err := os.ReadFile(filepath.Join(tmp, "keybridge_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "register") {
		t.Errorf("log file missing register entry: %q", data)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing info entry: %q", data)
	}
}
