// Package logging configures the process-wide charmbracelet logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DebugEnvVar forces debug output when set to any non-empty value
const DebugEnvVar = "TL_DEBUG"

// Options holds configuration for the process logger
type Options struct {
	Level  string
	Format string
	// File receives log output. Empty means discard, "-" means stderr.
	File string
}

var (
	mu     sync.Mutex
	logger = log.NewWithOptions(io.Discard, log.Options{Prefix: "tasklist"})
)

// DebugEnabled returns true if debug mode is enabled via TL_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// Configure replaces the process logger. The returned closer releases the
// log file, if one was opened.
func Configure(opts Options) (io.Closer, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)

	switch opts.File {
	case "":
		if DebugEnabled() {
			w = os.Stderr
		}
	case "-":
		w = os.Stderr
	default:
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	SetLogger(New(w, opts))
	return closer, nil
}

// New builds a logger writing to w with the given level and format
func New(w io.Writer, opts Options) *log.Logger {
	level := ParseLevel(opts.Level)
	if DebugEnabled() {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       ParseFormatter(opts.Format),
		ReportTimestamp: true,
		Prefix:          "tasklist",
	})
}

// SetLogger swaps the process logger, mainly for tests
func SetLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Logger returns the process logger
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	Logger().Debugf(format, args...)
}

// Debugln logs its arguments at debug level, space separated
func Debugln(args ...interface{}) {
	Logger().Debug(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// ParseLevel parses a string log level, defaulting to info
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a formatter name, defaulting to text
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
