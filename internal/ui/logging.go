package ui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	Debug bool

	slog   *slog.Logger
	closer io.Closer
}

type LoggerOptions struct {
	Debug bool
	// LogFile, when set, receives a copy of every record through a rotating writer.
	LogFile string
	Output  io.Writer
}

func NewLogger(opts LoggerOptions) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var closer io.Closer
	if opts.LogFile != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		out = io.MultiWriter(out, rotating)
		closer = rotating
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	h := NewRedactingHandler(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	return &Logger{
		Debug:  opts.Debug,
		slog:   slog.New(h),
		closer: closer,
	}
}

// Slog exposes the underlying structured logger for key/value logging.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.Debug {
		l.slog.Debug(line(format, args...))
	}
}

func (l *Logger) Infof(format string, args ...any) {
	l.slog.Info(line(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.slog.Warn(line(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.slog.Error(line(format, args...))
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}

	return l.closer.Close()
}

func line(format string, args ...any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
