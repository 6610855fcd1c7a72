package logger

import (
	"context"
	"log/slog"
)

// unexported key type keeps the logger entry from colliding with other
// context values
type contextKey struct{}

var loggerKey contextKey

// WithLogger attaches a request-scoped logger to the context. The access-log
// middleware calls this once per request with the request id bound.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger attached by WithLogger. Outside a request,
// or in tests that skip the middleware, it falls back to the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
