package state

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Paintersrp/winapps/internal/config"
	"github.com/Paintersrp/winapps/internal/constants"
	"github.com/Paintersrp/winapps/internal/engine"
	"github.com/Paintersrp/winapps/internal/launch"
	"github.com/Paintersrp/winapps/internal/packages"
	"github.com/Paintersrp/winapps/internal/shortcut"
)

type State struct {
	Config *config.Config
	Engine *engine.Engine
	Logger *log.Logger
	Home   string
}

// Options overrides parts of the process wiring. Zero values select the
// platform defaults.
type Options struct {
	ConfigPath string
	Output     io.Writer
	Probe      func() packages.Capability
	Enumerator packages.Enumerator
	Opener     launch.Opener
	Apps       launch.AppLauncher
}

func NewState(opts Options) (*State, error) {
	s := &State{}
	if err := s.Load(opts); err != nil {
		return nil, err
	}
	return s, nil
}

// Load builds the process wiring into s. Commands are constructed before
// flags are parsed, so they hold s and the root command loads it.
func (s *State) Load(opts Options) error {
	home, err := GetHomeDir()
	if err != nil {
		return err
	}

	if err := LoadEnv(config.GetEnvPath(home)); err != nil {
		return err
	}

	path := opts.ConfigPath
	if path == "" {
		path = config.GetConfigPath(home)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	logger, err := NewLogger(out, LogLevel(cfg))
	if err != nil {
		return err
	}

	probe := opts.Probe
	if probe == nil {
		probe = packages.Probe
	}
	capability := probe()

	eng := engine.Default(logger, engine.Options{
		Capability: capability,
		Roots:      Roots(cfg),
		Enumerator: opts.Enumerator,
		Opener:     opts.Opener,
		Apps:       opts.Apps,
	})
	eng.ApplyConfig(cfg.Configuration())

	logger.Debug("state ready", "config", path, "packages", capability.Supported, "elevated", capability.Elevated)

	s.Config = cfg
	s.Engine = eng
	s.Logger = logger
	s.Home = home
	return nil
}

// Loaded reports whether Load has succeeded.
func (s *State) Loaded() bool {
	return s != nil && s.Engine != nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

// LoadEnv reads an optional dotenv file. Variables already set in the
// process win.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func LoadConfig(path string) (*config.Config, error) {
	if err := config.EnsureConfigExists(path); err != nil {
		return nil, err
	}

	return config.LoadFile(path)
}

// LogLevel picks the level from the flag or WINAPPS_LOG_LEVEL through viper,
// then the config file, then the default. Viper never reads the file itself.
func LogLevel(cfg *config.Config) string {
	if level := strings.TrimSpace(viper.GetString("log_level")); level != "" {
		return level
	}
	if cfg != nil && cfg.LogLevel != "" {
		return cfg.LogLevel
	}
	return constants.DefaultLogLevel
}

func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: constants.AppName,
		Level:  lvl,
	}), nil
}

// Roots applies the config file's root overrides to the default roots.
func Roots(cfg *config.Config) shortcut.Roots {
	roots := shortcut.DefaultRoots()
	if cfg == nil {
		return roots
	}
	if strings.TrimSpace(cfg.MachineRoot) != "" {
		roots.Machine = cfg.MachineRoot
	}
	roots.Extra = append(roots.Extra, cfg.ExtraRoots...)
	return roots
}
