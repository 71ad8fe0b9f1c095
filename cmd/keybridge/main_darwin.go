//go:build darwin

package main

import (
	"runtime"

	"golang.design/x/hotkey/mainthread"
)

func init() {
	runtime.LockOSThread()
}

// The registration primitive on macOS must run on the main thread;
// mainthread.Init takes it and calls run in a goroutine.
func main() {
	mainthread.Init(run)
}
