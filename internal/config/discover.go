package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Discover when no config file exists.
// The daemon then runs on defaults plus $TMDB_API_KEY.
var ErrNotFound = errors.New("config not found")

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./moviems.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "moviems", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. MOVIEMS_CONFIG environment variable
//  2. ./moviems.toml (current directory)
//  3. $XDG_CONFIG_HOME/moviems/config.toml
//  4. /etc/moviems/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("MOVIEMS_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("MOVIEMS_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./moviems.toml",
		DefaultPath(),
		"/etc/moviems/config.toml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}
