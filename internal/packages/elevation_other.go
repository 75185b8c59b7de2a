//go:build !windows

package packages

import "os"

const registrySupported = false

// IsElevated reports whether the process runs as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}
