package packages

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/tidwall/gjson"
)

// listScript prints every registered package's display name and description
// as JSON. The names come from the deployment PackageManager, which resolves
// manifest resource references. Listing all users is what requires elevation.
const listScript = `$pm = [Windows.Management.Deployment.PackageManager,Windows.Management.Deployment,ContentType=WindowsRuntime]::new()
$pm.FindPackages() | ForEach-Object {
  [PSCustomObject]@{
    DisplayName = $_.DisplayName
    Description = $_.Description
  }
} | ConvertTo-Json -Compress -Depth 2`

// resourcePrefix marks a manifest string that was never resolved.
const resourcePrefix = "ms-resource:"

// Runner runs a command and returns its standard output.
type Runner func(name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return out, nil
}

// AppxEnumerator lists packages through PowerShell's Appx module.
type AppxEnumerator struct {
	Run      Runner
	Elevated func() bool
}

// NewAppxEnumerator returns an enumerator bound to the real process.
func NewAppxEnumerator() *AppxEnumerator {
	return &AppxEnumerator{Run: ExecRunner, Elevated: IsElevated}
}

func (e *AppxEnumerator) Enumerate(keep Filter) (Listing, error) {
	if e.Elevated != nil && !e.Elevated() {
		return Listing{}, ErrNotElevated
	}

	run := e.Run
	if run == nil {
		run = ExecRunner
	}

	out, err := run("powershell.exe", "-NoProfile", "-NonInteractive", "-Command", listScript)
	if err != nil {
		return Listing{}, fmt.Errorf("list packages: %w", err)
	}

	return DecodeListing(out, keep)
}

// DecodeListing reads the JSON printed by the listing script. PowerShell
// prints a bare object instead of an array when only one package exists.
func DecodeListing(data []byte, keep Filter) (Listing, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return Listing{}, nil
	}
	if !gjson.Valid(trimmed) {
		return Listing{}, fmt.Errorf("decode package listing: invalid JSON")
	}

	doc := gjson.Parse(trimmed)
	var items []gjson.Result
	switch {
	case doc.IsArray():
		items = doc.Array()
	case doc.IsObject():
		items = []gjson.Result{doc}
	default:
		return Listing{}, fmt.Errorf("decode package listing: unexpected %s", doc.Type)
	}

	var listing Listing
	for i, item := range items {
		name, err := stringField(item, FieldDisplayName)
		if err != nil {
			listing.Failures = append(listing.Failures, &FieldError{Field: FieldDisplayName, Index: i, Err: err})
			continue
		}

		if keep != nil && !keep(name) {
			continue
		}

		description, err := stringField(item, FieldDescription)
		if err != nil {
			listing.Failures = append(listing.Failures, &FieldError{Field: FieldDescription, Index: i, Err: err})
			continue
		}

		listing.Packages = append(listing.Packages, Package{Name: name, Description: description})
	}

	return listing, nil
}

var (
	errFieldMissing = errors.New("field is missing")
	errFieldType    = errors.New("field is not a string")
	errUnresolved   = errors.New("field is an unresolved resource reference")
)

// stringField reads a string attribute. A null description is treated as
// empty; a null display name is a failure.
func stringField(item gjson.Result, field Field) (string, error) {
	v := item.Get(string(field))
	switch {
	case !v.Exists():
		return "", errFieldMissing
	case v.Type == gjson.String && hasResourcePrefix(v.Str):
		return "", fmt.Errorf("%w (%s)", errUnresolved, v.Str)
	case v.Type == gjson.String:
		return v.Str, nil
	case v.Type == gjson.Null && field == FieldDescription:
		return "", nil
	default:
		return "", fmt.Errorf("%w (%s)", errFieldType, v.Type)
	}
}

func hasResourcePrefix(s string) bool {
	return len(s) >= len(resourcePrefix) && strings.EqualFold(s[:len(resourcePrefix)], resourcePrefix)
}
