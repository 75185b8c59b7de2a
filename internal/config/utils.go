package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Paintersrp/winapps/internal/constants"
)

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

func GetEnvPath(homeDir string) string {
	return filepath.Join(homeDir, constants.ConfigDir, constants.EnvFile)
}

// EnsureConfigExists creates the config file with default toggles when it is
// missing, then checks that it loads.
func EnsureConfigExists(configPath string) error {
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := New(configPath).Save(); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	}

	if _, err := LoadFile(configPath); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	return nil
}
