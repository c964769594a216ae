package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger     = zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	loggerLock sync.RWMutex
)

// Setup replaces the global logger. format is "console" or "json";
// anything else falls back to console.
func Setup(levelStr, format string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	out := w
	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
			NoColor:    w != os.Stderr && w != os.Stdout,
		}
	}

	loggerLock.Lock()
	logger = zerolog.New(out).
		Level(parseLogLevel(levelStr)).
		With().
		Timestamp().
		Logger()
	loggerLock.Unlock()
}

// SetLevel sets the global log level at runtime
func SetLevel(levelStr string) {
	loggerLock.Lock()
	logger = logger.Level(parseLogLevel(levelStr))
	loggerLock.Unlock()
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func current() zerolog.Logger {
	loggerLock.RLock()
	defer loggerLock.RUnlock()
	return logger
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	l := current()
	return l.Debug()
}

// Info logs an info message
func Info() *zerolog.Event {
	l := current()
	return l.Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	l := current()
	return l.Warn()
}

// Error logs an error message
func Error() *zerolog.Event {
	l := current()
	return l.Error()
}

// Component is a named sub-logger. It resolves the global logger on every
// call so that loggers created at package init pick up a later Setup.
type Component struct {
	name string
}

// GetLogger returns a logger that tags every event with the component name.
func GetLogger(name string) Component { return Component{name: name} }

func (c Component) with() zerolog.Logger {
	return current().With().Str("component", c.name).Logger()
}

func (c Component) Debug() *zerolog.Event {
	l := c.with()
	return l.Debug()
}

func (c Component) Info() *zerolog.Event {
	l := c.with()
	return l.Info()
}

func (c Component) Warn() *zerolog.Event {
	l := c.with()
	return l.Warn()
}

func (c Component) Error() *zerolog.Event {
	l := c.with()
	return l.Error()
}
