package shortcut

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Paintersrp/winapps/internal/constants"
	"github.com/Paintersrp/winapps/internal/pathutil"
)

// ErrEnvMissing and ErrEnvInvalid are the causes wrapped by EnvError.
var (
	ErrEnvMissing = errors.New("environment variable is not set")
	ErrEnvInvalid = errors.New("environment variable is not an absolute path")
)

// EnvError reports that the per-user root could not be resolved from the
// environment. It is distinct from a root that simply holds no shortcuts.
type EnvError struct {
	Var   string
	Value string
	Err   error
}

func (e *EnvError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Var, e.Err)
	}
	return fmt.Sprintf("%s=%q: %v", e.Var, e.Value, e.Err)
}

func (e *EnvError) Unwrap() error {
	return e.Err
}

// LookupEnv matches os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// Roots names the directories a shortcut search walks.
type Roots struct {
	// Machine is the machine-wide start menu.
	Machine string
	// Extra roots are walked like Machine.
	Extra []string
	// UserEnv names the variable holding the per-user base directory.
	UserEnv string
	// Lookup reads the environment; nil means os.LookupEnv.
	Lookup LookupEnv
}

// DefaultRoots returns the conventional Windows start menu roots.
func DefaultRoots() Roots {
	return Roots{
		Machine: constants.MachineShortcutRoot,
		UserEnv: constants.UserRootEnv,
	}
}

// Static returns the roots that need no environment lookup.
func (r Roots) Static() []string {
	roots := make([]string, 0, 1+len(r.Extra))
	if r.Machine != "" {
		roots = append(roots, pathutil.NormalizePath(r.Machine))
	}
	for _, extra := range r.Extra {
		if strings.TrimSpace(extra) == "" {
			continue
		}
		roots = append(roots, pathutil.NormalizePath(extra))
	}
	return roots
}

// User resolves the per-user start menu programs directory.
func (r Roots) User() (string, error) {
	lookup := r.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	name := r.UserEnv
	if name == "" {
		name = constants.UserRootEnv
	}

	base, ok := lookup(name)
	if !ok || strings.TrimSpace(base) == "" {
		return "", &EnvError{Var: name, Err: ErrEnvMissing}
	}

	base = pathutil.NormalizePath(base)
	if !filepath.IsAbs(base) {
		return "", &EnvError{Var: name, Value: base, Err: ErrEnvInvalid}
	}

	parts := append([]string{base}, constants.UserShortcutSubpath...)
	return filepath.Join(parts...), nil
}
