// Package logging sets up the zerolog logger. Output goes to a file: the
// alternate screen owns stdout, so writing log lines there would corrupt
// the rendered frame.
package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Setup creates a leveled file-backed logger. The returned cleanup closes
// the log file.
func Setup(path, level string) (zerolog.Logger, func(), error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("parse log level: %w", err)
		}
		lvl = parsed
	}

	if path == "" {
		logger := zerolog.Nop()
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).With().Timestamp().Logger().Level(lvl)
	cleanup := func() { _ = f.Close() }
	return logger, cleanup, nil
}
