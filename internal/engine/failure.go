package engine

import (
	"fmt"

	"github.com/Paintersrp/winapps/internal/search"
)

// FailureKind classifies a discovery failure.
type FailureKind string

const (
	// FailureEnvironment: a root could not be resolved from the environment.
	FailureEnvironment FailureKind = "environment"
	// FailurePrivilege: enumeration needs rights the process lacks.
	FailurePrivilege FailureKind = "privilege"
	// FailureEnumeration: the package listing could not be produced.
	FailureEnumeration FailureKind = "enumeration"
	// FailureMetadata: one candidate's name, description or path was unreadable.
	FailureMetadata FailureKind = "metadata"
)

// Failure is a non-fatal problem met by a source. Environment, privilege and
// enumeration failures abort only their source; metadata failures skip one item.
type Failure struct {
	Kind   FailureKind
	Source string
	// Title is shown as the placeholder result's title.
	Title string
	// Detail replaces the error text as the placeholder's context when set.
	Detail string
	Err    error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %s: %v", f.Source, f.Title, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Placeholder renders the failure as a visible result.
func (f Failure) Placeholder() search.Candidate {
	detail := f.Detail
	if detail == "" && f.Err != nil {
		detail = f.Err.Error()
	}
	return search.Placeholder(f.Title, detail)
}
