// Package logging builds the application logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Stderr as the log file sends output to the terminal instead of a file.
const Stderr = "-"

// Options holds logger configuration.
type Options struct {
	Level string
	File  string
	// MaxSizeMB caps one log file before it is rotated.
	MaxSizeMB  int
	MaxBackups int
}

// DefaultOptions returns info-level logging to data/todo.log.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		File:       "data/todo.log",
		MaxSizeMB:  5,
		MaxBackups: 3,
	}
}

// ParseLevel maps a level name to a log.Level. Names are case-insensitive;
// "warning" is accepted for "warn".
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	case "fatal":
		return log.FatalLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("unknown log level %q", s)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to opts.File, rotated by lumberjack.
// The returned Closer releases the file and must be closed on exit.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch opts.File {
	case Stderr:
		w = os.Stderr
	case "":
		w = io.Discard
	default:
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		}
		w, closer = lj, lj
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          "todo",
	})
	if opts.File == Stderr {
		logger.SetFormatter(log.TextFormatter)
	}
	return logger, closer, nil
}
