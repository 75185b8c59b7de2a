package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/winapps/internal/config"
	"github.com/Paintersrp/winapps/internal/constants"
)

func writeConfig(t *testing.T, home string, data map[string]any) string {
	t.Helper()
	configPath := config.GetConfigPath(home)

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}

	raw, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}

	if err := os.WriteFile(configPath, raw, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return configPath
}

func TestGetConfigPath(t *testing.T) {
	got := config.GetConfigPath("/home/user")
	want := filepath.Join("/home/user", ".winapps", "cfg.yaml")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEnsureConfigExistsWritesDefaults(t *testing.T) {
	home := t.TempDir()
	configPath := config.GetConfigPath(home)

	if err := config.EnsureConfigExists(configPath); err != nil {
		t.Fatalf("EnsureConfigExists returned error: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	conf := cfg.Configuration()
	if !conf.Bool(constants.IncludePackagedApps, false) {
		t.Fatal("expected packaged apps enabled by default")
	}
	if !conf.Bool(constants.IncludeShortcutApps, false) {
		t.Fatal("expected start menu apps enabled by default")
	}
	if conf.Bool(constants.ReturnErrorMessages, true) {
		t.Fatal("expected error messages disabled by default")
	}
}

func TestEnsureConfigExistsKeepsExistingFile(t *testing.T) {
	home := t.TempDir()
	configPath := writeConfig(t, home, map[string]any{
		"toggles": map[string]any{constants.ReturnErrorMessages: true},
	})

	if err := config.EnsureConfigExists(configPath); err != nil {
		t.Fatalf("EnsureConfigExists returned error: %v", err)
	}

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if !cfg.Configuration().Bool(constants.ReturnErrorMessages, false) {
		t.Fatal("expected existing toggle to survive")
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	configPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(configPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Toggles) != len(config.ToggleKeys) {
		t.Fatalf("expected %d default toggles, got %#v", len(config.ToggleKeys), cfg.Toggles)
	}
}

func TestLoadKeepsWrongTypedToggle(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"toggles": map[string]any{constants.IncludeShortcutApps: "yes"},
	})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected wrong-typed toggle to load, got %v", err)
	}

	if !cfg.Configuration().Bool(constants.IncludeShortcutApps, true) {
		t.Fatal("expected wrong-typed toggle to fall back to the default")
	}
}

func TestLoadReadsRootOverrides(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"machine_root": filepath.Join(home, "menu"),
		"extra_roots":  []string{filepath.Join(home, "extra")},
		"log_level":    "debug",
	})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.MachineRoot != filepath.Join(home, "menu") {
		t.Fatalf("unexpected machine root %q", cfg.MachineRoot)
	}
	if len(cfg.ExtraRoots) != 1 {
		t.Fatalf("unexpected extra roots %#v", cfg.ExtraRoots)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level %q", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{"log_level": "loud"})

	_, err := config.Load(home)
	if err == nil {
		t.Fatal("expected load to fail for invalid log level")
	}

	var initErr *config.ConfigInitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected ConfigInitError, got %T", err)
	}
}

func TestSetTogglePersists(t *testing.T) {
	home := t.TempDir()
	configPath := config.GetConfigPath(home)
	if err := config.EnsureConfigExists(configPath); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}

	if err := cfg.SetToggle(constants.IncludePackagedApps, false); err != nil {
		t.Fatalf("SetToggle returned error: %v", err)
	}

	reloaded, err := config.LoadFile(configPath)
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if reloaded.Configuration().Bool(constants.IncludePackagedApps, true) {
		t.Fatal("expected persisted toggle to be false")
	}
}

func TestSetToggleRejectsUnknownKey(t *testing.T) {
	cfg := config.New(filepath.Join(t.TempDir(), "cfg.yaml"))

	err := cfg.SetToggle("include_everything", true)
	if !errors.Is(err, config.ErrUnknownToggle) {
		t.Fatalf("expected ErrUnknownToggle, got %v", err)
	}
	if !strings.Contains(err.Error(), constants.ReturnErrorMessages) {
		t.Fatalf("expected error to list valid keys, got %v", err)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	cfg := config.New(filepath.Join(t.TempDir(), "cfg.yaml"))
	cfg.MachineRoot = "/menu"
	if err := cfg.SetToggle(constants.ReturnErrorMessages, true); err != nil {
		t.Fatal(err)
	}

	if err := cfg.Reset(); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}

	if cfg.Configuration().Bool(constants.ReturnErrorMessages, true) {
		t.Fatal("expected reset to disable error messages")
	}
	if cfg.MachineRoot != "/menu" {
		t.Fatalf("expected reset to keep machine root, got %q", cfg.MachineRoot)
	}
}

func TestConfigurationIsACopy(t *testing.T) {
	cfg := config.New("")
	conf := cfg.Configuration()
	conf[constants.IncludePackagedApps] = false

	if v, _ := cfg.Toggles[constants.IncludePackagedApps].(bool); !v {
		t.Fatal("expected Configuration to return an independent map")
	}
}

func TestSaveWithoutPathFails(t *testing.T) {
	if err := config.New("").Save(); err == nil {
		t.Fatal("expected Save without a path to fail")
	}
}
