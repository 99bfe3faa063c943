package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		errs = append(errs, "log: max_size_mb, max_backups and max_age_days must not be negative")
	}

	if err := checkURL(c.TMDB.BaseURL); err != nil {
		errs = append(errs, fmt.Sprintf("tmdb.base_url: %v", err))
	}
	if err := checkURL(c.Fallback.URL); err != nil {
		errs = append(errs, fmt.Sprintf("fallback.url: %v", err))
	}

	if c.Cache.TTL <= 0 {
		errs = append(errs, fmt.Sprintf("cache.ttl: must be positive, got %s", c.Cache.TTL))
	}

	return errs
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
