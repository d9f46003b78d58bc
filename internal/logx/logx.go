package logx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger writing to stderr, so stdout stays free for results.
func NewLogger(level zerolog.Level) zerolog.Logger {
	return newLogger(os.Stderr, level)
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	var output = zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	zerolog.CallerMarshalFunc = shortCaller
	return zerolog.New(output).Level(level).With().Timestamp().Caller().Logger()
}

// shortCaller pads file:line to 28 characters for alignment.
func shortCaller(pc uintptr, file string, line int) string {
	return fmt.Sprintf("%-28s", fmt.Sprintf("%s:%d", filepath.Base(file), line))
}

// ParseLevel accepts zerolog level names and falls back to info.
func ParseLevel(s string) zerolog.Level {
	var level, err = zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return level
}
