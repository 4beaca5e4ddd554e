//go:build windows
// +build windows

package output

import (
	"os"

	"golang.org/x/sys/windows"
)

// enableANSI enables ANSI escape sequence processing on Windows 10+.
// Older consoles reject the mode flag and the caller falls back to
// uncolored output.
func enableANSI() bool {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
