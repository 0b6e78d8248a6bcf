package logutil

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type (
	key struct{}
)

// WithLogger stores a request scoped logger in the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// GetOrDefault returns the logger from the context, falling back to the
// process wide logger when none was stored.
func GetOrDefault(ctx context.Context) zerolog.Logger {
	v := ctx.Value(key{})
	if v == nil {
		return log.Logger
	}
	return v.(zerolog.Logger)
}
