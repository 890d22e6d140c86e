package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	// default logger instance
	defaultLogger *slog.Logger
)

// builds the default logger from ENVIRONMENT and LOG_LEVEL
func init() {
	defaultLogger = New(os.Getenv("ENVIRONMENT"), os.Getenv("LOG_LEVEL"))
}

// creates a logger for the given environment.
// production writes JSON to stdout, everything else writes text to stderr.
func New(environment, level string) *slog.Logger {
	var out io.Writer = os.Stderr
	production := environment == "production"

	if production {
		out = os.Stdout
	}

	return slog.New(newHandler(out, production, parseLevel(level, production)))
}

func newHandler(out io.Writer, jsonOutput bool, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	if jsonOutput {
		return slog.NewJSONHandler(out, opts)
	}

	return slog.NewTextHandler(out, opts)
}

// maps a LOG_LEVEL value to a slog level, defaulting by environment
func parseLevel(level string, production bool) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	if production {
		return slog.LevelInfo
	}

	return slog.LevelDebug
}

// replaces the default logger (used once config is loaded)
func SetDefault(l *slog.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// returns the default logger instance
func Default() *slog.Logger {
	return defaultLogger
}

// creates a logger with additional context fields
func With(args ...any) *slog.Logger {
	return defaultLogger.With(args...)
}

// returns the request-scoped logger, or the default one
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}

	return defaultLogger
}

// adds logger to context
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

type loggerKey struct{}

// logs a debug message
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// logs an info message
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// logs a warning message
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// logs an error message
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// logs an error with context
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// logs a fatal error and exits
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}

// logs a fatal error with error and exits
func FatalErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
