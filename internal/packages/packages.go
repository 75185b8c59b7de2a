// Package packages enumerates applications registered with the OS package
// registry. Enumeration needs an elevated process; the registry itself only
// exists on Windows.
//
// Elevation and plain file opening do not reliably coexist: a process with
// administrator rights may fail to open ordinary shortcut targets. Hosts in
// privilege-sensitive environments should enable only one discovery mode.
package packages

import (
	"errors"
	"fmt"
)

var (
	// ErrNotElevated is returned when enumeration is attempted without administrator rights.
	ErrNotElevated = errors.New("no administrator rights")
	// ErrUnsupported is returned on platforms without a package registry.
	ErrUnsupported = errors.New("package registry is not available on this platform")
)

// Package is one registered application.
type Package struct {
	Name        string
	Description string
}

// Field names a package attribute that can fail to read.
type Field string

const (
	FieldDisplayName Field = "DisplayName"
	FieldDescription Field = "Description"
)

// FieldError reports a single package attribute that could not be read.
// The package is skipped; enumeration continues.
type FieldError struct {
	Field Field
	Index int
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("package %d: failed to get %s: %v", e.Index, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Listing is the outcome of one enumeration: packages read successfully plus
// the per-item failures met along the way.
type Listing struct {
	Packages []Package
	Failures []*FieldError
}

// Filter decides whether a package name is wanted. Packages rejected by the
// filter are skipped before their description is read.
type Filter func(name string) bool

// Enumerator lists registered packages.
type Enumerator interface {
	// Enumerate returns an error only when the whole enumeration could not
	// run (no rights, listing failed). Per-package problems land in Listing.Failures.
	Enumerate(keep Filter) (Listing, error)
}

// Capability is resolved once at startup.
type Capability struct {
	// Supported means the platform has a package registry at all.
	Supported bool
	// Elevated means the process currently holds administrator rights.
	Elevated bool
}

// Probe resolves the capability of the running process.
func Probe() Capability {
	return Capability{
		Supported: registrySupported,
		Elevated:  IsElevated(),
	}
}
