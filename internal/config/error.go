package config

import (
	"fmt"
	"strings"
)

// ConfigError aggregates problems found while loading a configuration.
type ConfigError struct {
	Path    string   // Config file path, empty when running on defaults
	Missing []string // Unresolved environment variables
	Errors  []string // Validation errors
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	source := e.Path
	if source == "" {
		source = "defaults"
	}
	parts := []string{fmt.Sprintf("config %s:", source)}

	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing environment variables: %s", strings.Join(e.Missing, ", ")))
	}

	if len(e.Errors) > 0 {
		parts = append(parts, "validation failed:")
		for _, msg := range e.Errors {
			parts = append(parts, "  - "+msg)
		}
	}

	return strings.Join(parts, "\n")
}

// HasErrors returns true if there are any errors.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
