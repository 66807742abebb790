package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithGeneration creates a child logger with a generation field
func WithGeneration(ctx context.Context, generation uint64) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Uint64("generation", generation).Logger()
	return WithContext(ctx, childLogger)
}

// WithFontPath creates a child logger with a font_path field
func WithFontPath(ctx context.Context, path string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("font_path", path).Logger()
	return WithContext(ctx, childLogger)
}
