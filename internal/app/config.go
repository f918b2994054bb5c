package app

import (
	"os"
	"strconv"
	"time"

	"code.cloudfoundry.org/bytefmt"

	"github.com/shhac/courier/internal/logging"
)

// DefaultURL is the request URL shown on first launch.
const DefaultURL = "https://jsonplaceholder.typicode.com/posts"

// DefaultShutdownGrace bounds how long Run waits for in-flight dispatches
// after the window closes.
const DefaultShutdownGrace = 2 * time.Second

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// DefaultURL is the URL the request starts with
	DefaultURL string

	// Theme is "dark", "light" or "system"; empty keeps the saved preference
	Theme string

	// LogMaxSize is the log size that triggers rotation on startup
	LogMaxSize uint64

	// LogBackups is the number of rotated logs kept
	LogBackups int

	// ShutdownGrace bounds the wait for in-flight dispatches on exit;
	// dispatches still running after it are abandoned
	ShutdownGrace time.Duration
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		DefaultURL:    DefaultURL,
		LogMaxSize:    logging.DefaultMaxSize,
		LogBackups:    logging.DefaultMaxBackups,
		ShutdownGrace: DefaultShutdownGrace,
	}
}

// ConfigFromEnv creates a configuration from environment variables.
// Reads COURIER_DEBUG, COURIER_DEFAULT_URL, COURIER_THEME,
// COURIER_LOG_MAX_SIZE (e.g. "10M"), COURIER_LOG_BACKUPS and
// COURIER_SHUTDOWN_GRACE (e.g. "500ms"). Invalid values are ignored.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if debugStr := os.Getenv("COURIER_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if url := os.Getenv("COURIER_DEFAULT_URL"); url != "" {
		cfg.DefaultURL = url
	}

	switch theme := os.Getenv("COURIER_THEME"); theme {
	case "dark", "light", "system":
		cfg.Theme = theme
	}

	if sizeStr := os.Getenv("COURIER_LOG_MAX_SIZE"); sizeStr != "" {
		if size, err := bytefmt.ToBytes(sizeStr); err == nil && size > 0 {
			cfg.LogMaxSize = size
		}
	}

	if backupsStr := os.Getenv("COURIER_LOG_BACKUPS"); backupsStr != "" {
		if backups, err := strconv.Atoi(backupsStr); err == nil && backups > 0 {
			cfg.LogBackups = backups
		}
	}

	if graceStr := os.Getenv("COURIER_SHUTDOWN_GRACE"); graceStr != "" {
		if grace, err := time.ParseDuration(graceStr); err == nil && grace >= 0 {
			cfg.ShutdownGrace = grace
		}
	}

	return cfg
}

// LogOptions returns the file logger options for this configuration.
func (c *Config) LogOptions() logging.Options {
	return logging.Options{
		Debug:      c.Debug,
		MaxSize:    c.LogMaxSize,
		MaxBackups: c.LogBackups,
	}
}
