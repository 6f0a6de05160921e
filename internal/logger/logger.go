// Package logger builds the structured slog logger shared by the service and the CLI.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const logFileName = "code-sage.log"

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Writer resolves the configured output destination. An unopenable log file
// falls back to stdout.
func Writer(cfg Config) io.Writer {
	switch cfg.Output {
	case "stderr":
		return os.Stderr
	case "file":
		file, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			return os.Stdout
		}
		return file
	default:
		return os.Stdout
	}
}

// NewLogger initializes a new slog logger based on the provided configuration.
// A nil output is resolved with Writer.
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		output = Writer(cfg)
	}

	level := new(slog.Level)
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		*level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler).With("service", "code-sage")
}
