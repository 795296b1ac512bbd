package telemetry

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// NewLogger creates a logger for cfg. When Output names a file, the returned
// closer closes it; otherwise closing is a no-op.
func NewLogger(cfg LoggingConfig) (zerolog.Logger, io.Closer, error) {
	var (
		writer io.Writer
		closer io.Closer = nopCloser{}
	)
	switch cfg.Output {
	case "", "stderr":
		writer = os.Stderr
	case "stdout":
		writer = os.Stdout
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("telemetry: open log output: %w", err)
		}
		writer, closer = file, file
	}

	l, err := NewLoggerTo(writer, cfg)
	if err != nil {
		_ = closer.Close()
		return zerolog.Nop(), nopCloser{}, err
	}
	return l, closer, nil
}

// NewLoggerTo creates a logger for cfg writing to w; cfg.Output is ignored.
// Console output is colored only when w is a terminal and NoColor is unset.
func NewLoggerTo(w io.Writer, cfg LoggingConfig) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor || !isTerminal(w),
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// ParseLevel converts a level name into a zerolog.Level; empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("telemetry: invalid log level %q: %w", level, err)
	}
	return l, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
