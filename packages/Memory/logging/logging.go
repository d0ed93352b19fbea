package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const prefix = "[d2mapi] "

// Logger prefixes every record so host output can be told apart from the game's own.
type Logger struct {
	logger *slog.Logger
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Stderr, slog.LevelInfo)
	})
	return defaultLogger
}

func New(w io.Writer, level slog.Level) *Logger {
	return &Logger{logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))}
}

func Discard() *Logger {
	return &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Or returns l, or the default logger when l is nil.
func Or(l *Logger) *Logger {
	if l == nil {
		return Default()
	}
	return l
}

func ParseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...)}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(prefix+msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(prefix+msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(prefix+msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(prefix+msg, args...)
}
