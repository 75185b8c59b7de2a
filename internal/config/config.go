package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/winapps/internal/constants"
	"github.com/Paintersrp/winapps/internal/search"
)

var ErrUnknownToggle = errors.New("unknown toggle")

// ToggleKeys lists the toggles a configuration file may set.
var ToggleKeys = []string{
	constants.IncludePackagedApps,
	constants.IncludeShortcutApps,
	constants.ReturnErrorMessages,
}

// DefaultToggles returns the value each toggle takes when the file omits it.
func DefaultToggles() map[string]any {
	return map[string]any{
		constants.IncludePackagedApps: true,
		constants.IncludeShortcutApps: true,
		constants.ReturnErrorMessages: false,
	}
}

// Config is the persisted host configuration. Toggle values are kept as
// decoded so that a wrong-typed entry falls back to its default at search
// time instead of failing the load.
type Config struct {
	Toggles     map[string]any `yaml:"toggles"                json:"toggles"`
	MachineRoot string         `yaml:"machine_root,omitempty" json:"machine_root,omitempty"`
	ExtraRoots  []string       `yaml:"extra_roots,omitempty"  json:"extra_roots,omitempty"`
	LogLevel    string         `yaml:"log_level,omitempty"    json:"log_level,omitempty"`

	path string `yaml:"-"`
}

func New(path string) *Config {
	return &Config{Toggles: DefaultToggles(), path: path}
}

func Load(home string) (*Config, error) {
	return LoadFile(GetConfigPath(home))
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := New(path)
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.path = path
	if cfg.Toggles == nil {
		cfg.Toggles = DefaultToggles()
	}

	if cfg.LogLevel != "" {
		if err := ValidateLogLevel(cfg.LogLevel); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func ValidateLogLevel(level string) error {
	if _, err := log.ParseLevel(level); err != nil {
		return &ConfigInitError{msg: fmt.Sprintf("invalid log level: %q", level)}
	}
	return nil
}

// Path is where Save writes.
func (cfg *Config) Path() string {
	return cfg.path
}

// Configuration maps the toggles onto a search configuration. The result
// shares nothing with cfg.
func (cfg *Config) Configuration() search.Configuration {
	return search.Configuration(cfg.Toggles).Clone()
}

func (cfg *Config) SetToggle(key string, value bool) error {
	if !slices.Contains(ToggleKeys, key) {
		return fmt.Errorf("%w: %q. Please choose from %s.", ErrUnknownToggle, key, strings.Join(ToggleKeys, ", "))
	}
	if cfg.Toggles == nil {
		cfg.Toggles = DefaultToggles()
	}
	cfg.Toggles[key] = value
	return cfg.Save()
}

// Reset restores every toggle to its default and keeps the root overrides.
func (cfg *Config) Reset() error {
	cfg.Toggles = DefaultToggles()
	return cfg.Save()
}

func (cfg *Config) Save() error {
	if cfg.path == "" {
		return &ConfigInitError{msg: "config has no file path"}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return os.WriteFile(cfg.path, data, 0o644)
}
