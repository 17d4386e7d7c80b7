package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/rench/blog/config"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type zerologLogger struct {
	zl zerolog.Logger
}

func New(cfg *config.Config) Logger {
	var out io.Writer = os.Stdout
	if cfg.App.Env == config.Local {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return NewWithWriter(out, level)
}

func NewWithWriter(w io.Writer, level zerolog.Level) Logger {
	return &zerologLogger{
		zl: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

// Nop discards everything. Handy in tests.
func Nop() Logger {
	return &zerologLogger{zl: zerolog.Nop()}
}

func (l *zerologLogger) Debug(format string, args ...any) {
	l.zl.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Info(format string, args ...any) {
	l.zl.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Warn(format string, args ...any) {
	l.zl.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Error(format string, args ...any) {
	l.zl.Error().Msg(fmt.Sprintf(format, args...))
}
