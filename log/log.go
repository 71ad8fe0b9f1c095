// Package log is the diagnostic logger. Everything is a no-op until Init
// runs, so the library stays silent inside hosts that never configure it.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

// ResolveDir picks the log directory: explicit path, then the
// KEYBRIDGE_LOG_PATH environment variable, then the OS default.
func ResolveDir(flagPath string) (string, error) {
	if flagPath != "" {
		if !filepath.IsAbs(flagPath) {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			return filepath.Join(wd, flagPath), nil
		}
		return flagPath, nil
	}

	envPath := os.Getenv("KEYBRIDGE_LOG_PATH")
	if envPath != "" {
		if !filepath.IsAbs(envPath) {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			return filepath.Join(wd, envPath), nil
		}
		return envPath, nil
	}

	return getDefaultDir()
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	pid = os.Getpid()

	diagPath := filepath.Join(dir, "keybridge_log.txt")
	f, err := os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	diagFile = f

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Infof(format string, args ...any) {
	if logReady {
		diagLog.Info().Msg(fmt.Sprintf(format, args...))
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

// Registered records the outcome of a register call.
func Registered(id uint32, combo string, err error) {
	if !logReady {
		return
	}
	ev := diagLog.Info().Uint32("id", id).Str("combo", combo)
	if err != nil {
		ev = diagLog.Error().Uint32("id", id).Str("combo", combo).Err(err)
	}
	ev.Msg("register")
}

// Unregistered records the outcome of an unregister call.
func Unregistered(id uint32, combo string, err error) {
	if !logReady {
		return
	}
	ev := diagLog.Info().Uint32("id", id).Str("combo", combo)
	if err != nil {
		ev = diagLog.Error().Uint32("id", id).Str("combo", combo).Err(err)
	}
	ev.Msg("unregister")
}

// Dropped records an event whose identifier had no table entry. Expected
// during unregister races, so it logs at debug level.
func Dropped(id uint32) {
	if logReady {
		diagLog.Debug().Uint32("id", id).Msg("event_dropped")
	}
}
