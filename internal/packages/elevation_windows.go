//go:build windows

package packages

import "golang.org/x/sys/windows"

const registrySupported = true

// IsElevated reports whether the process token is elevated.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
