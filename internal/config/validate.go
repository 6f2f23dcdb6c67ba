package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

const (
	minTokenLength = 50 // Discord tokens are typically 50+ characters

	minXivapiTimeout = 1 * time.Second
	maxXivapiTimeout = 2 * time.Minute

	maxServerNameLength = 32

	minLogSizeMB = 1
	maxLogSizeMB = 1024
)

var (
	validLanguages = []string{"", "en", "ja", "de", "fr"}
	validLogLevels = []string{"debug", "info", "warn", "warning", "error"}
)

// Validate checks every configuration value and returns all failures at once
// joined with errors.Join.
//
//   - Token: at least 50 characters
//   - XivapiBaseURL: absolute http(s) URL
//   - XivapiTimeout: between 1s and 2m
//   - XivapiLanguage: empty, en, ja, de or fr
//   - DefaultServer: at most 32 characters, no spaces
//   - LogLevel: debug, info, warn or error
//   - Log rotation: positive size, non-negative backups and age
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateToken(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateXivapi(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateDefaultServer(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateLogging(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateToken() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required but not set")
	}

	if len(c.Token) < minTokenLength {
		return fmt.Errorf(
			"DISCORD_TOKEN appears invalid (too short: %d chars, expected %d+)",
			len(c.Token), minTokenLength,
		)
	}

	return nil
}

func (c *Config) validateXivapi() error {
	var errs []error

	u, err := url.Parse(c.XivapiBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("XIVAPI_BASE_URL must be an absolute http(s) URL, got %q", c.XivapiBaseURL))
	}

	if c.XivapiTimeout < minXivapiTimeout || c.XivapiTimeout > maxXivapiTimeout {
		errs = append(errs, fmt.Errorf(
			"XIVAPI_TIMEOUT must be between %v and %v, got %v",
			minXivapiTimeout, maxXivapiTimeout, c.XivapiTimeout,
		))
	}

	if !slices.Contains(validLanguages, c.XivapiLanguage) {
		errs = append(errs, fmt.Errorf("XIVAPI_LANGUAGE must be one of en, ja, de, fr, got %q", c.XivapiLanguage))
	}

	return errors.Join(errs...)
}

// validateDefaultServer accepts an empty value; commands then require a server
// or a guild home server.
func (c *Config) validateDefaultServer() error {
	if len(c.DefaultServer) > maxServerNameLength {
		return fmt.Errorf(
			"DEFAULT_SERVER must be at most %d characters, got %d",
			maxServerNameLength, len(c.DefaultServer),
		)
	}

	if strings.ContainsAny(c.DefaultServer, " \t") {
		return fmt.Errorf("DEFAULT_SERVER must be a single world name, got %q", c.DefaultServer)
	}

	return nil
}

func (c *Config) validateLogging() error {
	var errs []error

	if !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel))
	}

	if c.LogDir != "" {
		if c.LogMaxSizeMB < minLogSizeMB || c.LogMaxSizeMB > maxLogSizeMB {
			errs = append(errs, fmt.Errorf(
				"LOG_MAX_SIZE_MB must be between %d and %d, got %d",
				minLogSizeMB, maxLogSizeMB, c.LogMaxSizeMB,
			))
		}
		if c.LogMaxBackups < 0 {
			errs = append(errs, fmt.Errorf("LOG_MAX_BACKUPS cannot be negative, got %d", c.LogMaxBackups))
		}
		if c.LogMaxAgeDays < 0 {
			errs = append(errs, fmt.Errorf("LOG_MAX_AGE_DAYS cannot be negative, got %d", c.LogMaxAgeDays))
		}
	}

	return errors.Join(errs...)
}
