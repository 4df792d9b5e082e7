package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const (
	requestIDKey ctxKey = "requestID"
	operationKey ctxKey = "operation"
)

// InitLogger installs the default slog logger writing to stdout.
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs the default slog logger writing to w.
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// Debug logs at debug level on the default logger.
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }

// Info logs at info level on the default logger.
func Info(msg string, args ...any) { slog.Info(msg, args...) }

// Warn logs at warn level on the default logger.
func Warn(msg string, args ...any) { slog.Warn(msg, args...) }

// Error logs at error level on the default logger.
func Error(msg string, args ...any) { slog.Error(msg, args...) }

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// GetRequestID returns the request ID or "" when none is set.
func GetRequestID(ctx context.Context) string {
	id, _ := RequestIDFromContext(ctx)
	return id
}

// WithOperation tags the context with the name of the operation being run,
// such as "move" or "loadout".
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// FromContext returns a logger that includes the request_id and operation
// attributes when present.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id, ok := RequestIDFromContext(ctx); ok {
		log = log.With(AttrKeyRequestID, id)
	}
	if op, ok := ctx.Value(operationKey).(string); ok {
		log = log.With(AttrKeyOperation, op)
	}
	return log
}
