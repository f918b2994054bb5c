package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"code.cloudfoundry.org/bytefmt"
	"github.com/mattn/go-isatty"
)

// Rotation defaults used when Options leaves them unset.
const (
	DefaultMaxSize    uint64 = 5 * bytefmt.MEGABYTE
	DefaultMaxBackups        = 3
)

// Options controls the file logger.
type Options struct {
	// Debug selects DEBUG level and source locations
	Debug bool

	// MaxSize is the size at which the log is rotated on startup
	MaxSize uint64

	// MaxBackups is how many rotated files (courier.log.1 ...) are kept
	MaxBackups int
}

func (o Options) withDefaults() Options {
	if o.MaxSize == 0 {
		o.MaxSize = DefaultMaxSize
	}
	if o.MaxBackups <= 0 {
		o.MaxBackups = DefaultMaxBackups
	}
	return o
}

// InitLogger initializes a structured logger with platform-specific log file paths.
// The logger writes JSON-formatted logs to a file in the appropriate platform location:
//   - macOS:   ~/Library/Logs/<app>/<app>.log
//   - Linux:   ~/.local/state/<app>/<app>.log
//   - Windows: %LOCALAPPDATA%\<app>\Logs\<app>.log
//
// An existing log at least opts.MaxSize long is rotated first.
func InitLogger(appName string, opts Options) (*slog.Logger, error) {
	opts = opts.withDefaults()

	dir, err := logDir(appName)
	if err != nil {
		return nil, fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	logPath := filepath.Join(dir, appName+".log")
	rotated, err := rotate(logPath, opts.MaxSize, opts.MaxBackups)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate log file: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	logger := slog.New(slog.NewJSONHandler(logFile, handlerOptions(opts.Debug)))
	if rotated {
		logger.Info("log rotated",
			slog.String("limit", bytefmt.ByteSize(opts.MaxSize)),
			slog.Int("backups", opts.MaxBackups))
	}
	return logger, nil
}

// NewBootstrapLogger returns the logger used before configuration is loaded.
// It writes human-readable text when f is a terminal and JSON otherwise.
func NewBootstrapLogger(f *os.File) *slog.Logger {
	opts := handlerOptions(false)
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return slog.New(slog.NewTextHandler(f, opts))
	}
	return slog.New(slog.NewJSONHandler(f, opts))
}

func handlerOptions(debug bool) *slog.HandlerOptions {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}
}

func backupName(logPath string, n int) string {
	return fmt.Sprintf("%s.%d", logPath, n)
}

// rotate moves logPath to logPath.1 once it reaches maxSize, shifting older
// backups up by one and dropping whatever would land past maxBackups.
// It reports whether a rotation happened.
func rotate(logPath string, maxSize uint64, maxBackups int) (bool, error) {
	info, err := os.Stat(logPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if uint64(info.Size()) < maxSize {
		return false, nil
	}

	if err := os.Remove(backupName(logPath, maxBackups)); err != nil && !os.IsNotExist(err) {
		return false, err
	}
	for n := maxBackups - 1; n >= 1; n-- {
		err := os.Rename(backupName(logPath, n), backupName(logPath, n+1))
		if err != nil && !os.IsNotExist(err) {
			return false, err
		}
	}

	if err := os.Rename(logPath, backupName(logPath, 1)); err != nil {
		return false, fmt.Errorf("rotate log file: %w", err)
	}
	return true, nil
}

// logDir returns the per-platform directory holding appName's logs.
func logDir(appName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", appName), nil
	case "linux":
		return filepath.Join(home, ".local", "state", appName), nil
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			base = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(base, appName, "Logs"), nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// NewNopLogger returns a logger that discards everything, for tests.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}
