package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

var errInvalidLogLevel = errors.New("invalid log level")

// ParseLogLevel parses DEBUG, INFO, WARN or ERROR in any case.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", errInvalidLogLevel, level)
	}
}

// SetupLogging sets the default logger to write text logs with at least the given level to w.
func SetupLogging(level string, w io.Writer) error {
	slogLevel, err := ParseLogLevel(level)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel})))
	return nil
}

// OpenLogFile opens path for appending, creating parent directories if needed.
// An empty path selects the log file in the XDG state directory.
func OpenLogFile(path string) (*os.File, error) {
	if path == "" {
		var err error
		path, err = xdg.StateFile(LogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to find log file location: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}
