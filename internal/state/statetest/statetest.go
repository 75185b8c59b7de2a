// Package statetest builds a State over a temporary home for command tests.
package statetest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/Paintersrp/winapps/internal/config"
	"github.com/Paintersrp/winapps/internal/packages"
	"github.com/Paintersrp/winapps/internal/state"
)

// Opener records the paths it is asked to open.
type Opener struct {
	Paths []string
	Err   error
}

func (o *Opener) Open(path string) error {
	o.Paths = append(o.Paths, path)
	return o.Err
}

// Fixture is a loaded State plus the pieces tests inspect.
type Fixture struct {
	State   *state.State
	Opener  *Opener
	Logs    *bytes.Buffer
	Machine string
}

// Path returns where a shortcut named name sits under the machine root.
func (f *Fixture) Path(name string) string {
	return filepath.Join(f.Machine, filepath.FromSlash(name))
}

// New points HOME at a temp dir, writes the given shortcut files under a
// machine root named in the config file, and loads a State with packaged apps
// unsupported.
func New(t *testing.T, shortcuts ...string) *Fixture {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	viper.Reset()
	t.Cleanup(viper.Reset)

	machine := filepath.Join(home, "menu")
	if err := os.MkdirAll(machine, 0o755); err != nil {
		t.Fatalf("failed to create machine root: %v", err)
	}
	for _, name := range shortcuts {
		p := filepath.Join(machine, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", filepath.Dir(p), err)
		}
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", p, err)
		}
	}

	cfg := config.New(config.GetConfigPath(home))
	cfg.MachineRoot = machine
	if err := cfg.Save(); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	opener := &Opener{}
	logs := &bytes.Buffer{}
	s, err := state.NewState(state.Options{
		Output: logs,
		Probe:  func() packages.Capability { return packages.Capability{} },
		Opener: opener,
	})
	if err != nil {
		t.Fatalf("failed to load state: %v", err)
	}

	return &Fixture{State: s, Opener: opener, Logs: logs, Machine: machine}
}
