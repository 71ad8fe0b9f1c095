//go:build !windows

package doctor

import "os/exec"

// The synthesized chord can leave the terminal in a raw-ish state when
// the shell interprets part of it.
func resetTerminal() {
	exec.Command("stty", "sane").Run()
}
