package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed default_config.toml
var exampleConfig []byte

// ErrExists is returned by WriteDefault when the target file already exists.
var ErrExists = errors.New("config file already exists")

// WriteDefault writes the example config to path, creating parent
// directories. An existing file is never overwritten. The file is created
// 0600 since it may later hold the TMDB key.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}

	if _, err := f.Write(exampleConfig); err != nil {
		_ = f.Close()
		return fmt.Errorf("write config: %w", err)
	}
	return f.Close()
}
