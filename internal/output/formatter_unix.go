//go:build !windows
// +build !windows

package output

// enableANSI is a no-op on Unix-like systems; any stdout that reports
// as a terminal takes ANSI sequences directly.
func enableANSI() bool {
	return true
}
