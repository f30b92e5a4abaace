package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger defines the minimal logging interface used throughout the module.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoOpLogger discards all log messages. Useful for tests or when logging is
// disabled.
type NoOpLogger struct{}

// Debug discards the message.
func (NoOpLogger) Debug(string, ...any) {}

// Info discards the message.
func (NoOpLogger) Info(string, ...any) {}

// Warn discards the message.
func (NoOpLogger) Warn(string, ...any) {}

// Error discards the message.
func (NoOpLogger) Error(string, ...any) {}

// SlogAdapter wraps *slog.Logger to implement Logger.
type SlogAdapter struct{ *slog.Logger }

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from an existing *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger { return &SlogAdapter{Logger: logger} }

// Config configures construction of a ChatLogger.
type Config struct {
	Level     slog.Level
	Format    string // "json" or "text"
	Output    io.Writer
	AddSource bool
}

// DefaultConfig returns a baseline JSON info-level configuration.
func DefaultConfig() Config {
	return Config{Level: slog.LevelInfo, Format: "json", Output: os.Stdout}
}

// ChatLogger wraps slog.Logger adding contextual cloning helpers and domain
// convenience methods. It is cheap to copy via the With* methods.
type ChatLogger struct {
	logger    *slog.Logger
	component string
	sessionID string
}

// New builds a ChatLogger from a config.
func New(cfg Config) *ChatLogger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: cfg.Level, AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(cfg.Output, opts)
	} else {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	}
	return &ChatLogger{logger: slog.New(handler)}
}

// WithComponent sets the logical component (router, agent, dispatcher, ...).
func (l *ChatLogger) WithComponent(c string) *ChatLogger {
	nl := *l
	nl.component = c
	return &nl
}

// WithSession attaches a session identifier to every entry.
func (l *ChatLogger) WithSession(sid string) *ChatLogger {
	nl := *l
	nl.sessionID = sid
	return &nl
}

func (l *ChatLogger) attrs(extra ...slog.Attr) []slog.Attr {
	out := make([]slog.Attr, 0, len(extra)+2)
	if l.component != "" {
		out = append(out, slog.String("component", l.component))
	}
	if l.sessionID != "" {
		out = append(out, slog.String("session_id", l.sessionID))
	}
	return append(out, extra...)
}

func (l *ChatLogger) log(level slog.Level, msg string, args []any) {
	attrs := l.attrs()
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			attrs = append(attrs, slog.Any(key, args[i+1]))
		}
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Debug logs at debug level.
func (l *ChatLogger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args) }

// Info logs at info level.
func (l *ChatLogger) Info(msg string, args ...any) { l.log(slog.LevelInfo, msg, args) }

// Warn logs at warn level.
func (l *ChatLogger) Warn(msg string, args ...any) { l.log(slog.LevelWarn, msg, args) }

// Error logs at error level.
func (l *ChatLogger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args) }

// LogModelCall records model call latency and success.
func (l *ChatLogger) LogModelCall(model string, dur time.Duration, success bool, err error) {
	attrs := l.attrs(
		slog.String("model", model),
		slog.Duration("duration", dur),
		slog.Bool("success", success),
	)
	level, msg := slog.LevelInfo, "model call completed"
	if !success {
		level, msg = slog.LevelError, "model call failed"
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// LogRoute records one routing decision.
func (l *ChatLogger) LogRoute(domain, reason string) {
	l.logger.LogAttrs(context.Background(), slog.LevelInfo, "input routed",
		l.attrs(slog.String("domain", domain), slog.String("reason", reason))...)
}
