// Package logger owns the process-wide zerolog logger for the back-office
// API. main calls Init once with the configured level; everything that does
// not receive a logger explicitly reaches it through Get.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how Init builds the logger.
type Options struct {
	// Level is the minimum level to emit: trace, debug, info, warn, error.
	// Unrecognised or empty values fall back to info.
	Level string
	// Pretty switches from JSON to coloured console output, for development.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	global      zerolog.Logger
	initOnce    sync.Once
	initialized bool
)

// Init builds the process logger and returns it. Only the first call takes
// effect; later calls return the already-built logger unchanged.
func Init(opts Options) zerolog.Logger {
	initOnce.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		level := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(level)

		global = zerolog.New(out).
			Level(level).
			With().
			Timestamp().
			Caller().
			Logger()
		initialized = true
	})
	return global
}

// Get returns the logger built by Init. Panics when called before Init — that
// is a wiring bug, not a runtime condition.
func Get() zerolog.Logger {
	if !initialized {
		panic("logger: Get called before Init")
	}
	return global
}

// Reset discards the logger so the next Init rebuilds it. For tests.
func Reset() {
	initOnce = sync.Once{}
	global = zerolog.Logger{}
	initialized = false
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
