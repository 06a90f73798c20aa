package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var guard sync.RWMutex

var logger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "2006-01-02 15:04:05",
}).With().Timestamp().Logger().Level(zerolog.InfoLevel)

// SetDebug enables or disables debug level logging.
func SetDebug(enabled bool) {
	guard.Lock()
	defer guard.Unlock()

	if enabled {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
}

// SetOutput replaces the log writer. Used by the tests to capture log output as JSON.
func SetOutput(w io.Writer) {
	guard.Lock()
	defer guard.Unlock()

	level := logger.GetLevel()
	logger = zerolog.New(w).With().Timestamp().Logger().Level(level)
}

// Logger returns the underlying logger e.g. for request logging.
func Logger() zerolog.Logger {
	guard.RLock()
	defer guard.RUnlock()

	return logger
}

func Debugf(tag string, format string, args ...any) {
	event(zerolog.DebugLevel, tag).Msg(fmt.Sprintf(format, args...))
}

func Infof(tag string, format string, args ...any) {
	event(zerolog.InfoLevel, tag).Msg(fmt.Sprintf(format, args...))
}

func Warnf(tag string, format string, args ...any) {
	event(zerolog.WarnLevel, tag).Msg(fmt.Sprintf(format, args...))
}

func Errorf(tag string, format string, args ...any) {
	event(zerolog.ErrorLevel, tag).Msg(fmt.Sprintf(format, args...))
}

func event(level zerolog.Level, tag string) *zerolog.Event {
	guard.RLock()
	defer guard.RUnlock()

	return logger.WithLevel(level).Str("tag", tag)
}
