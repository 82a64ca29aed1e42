// Package ctxlog carries the slog.Logger for a generation run on its
// context.Context, so the loader and emitter log through the logger the
// application configured without threading it through every signature.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to keep this package's context entry collision-free.
type key struct{}

var loggerKey = key{}

// WithLogger returns a context carrying the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from the context, falling back to the
// process default when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
