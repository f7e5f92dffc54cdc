package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName names the config directory.
const AppName = "taskflow"

// DefaultDir returns the default config directory, honouring XDG_CONFIG_HOME
// through os.UserConfigDir.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// EnsureDir resolves dir (DefaultDir when empty) and creates it.
func EnsureDir(dir string) (string, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("could not create config directory: %w", err)
	}
	return dir, nil
}
