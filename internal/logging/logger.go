// Package logging defines the structured-logging interface used across
// lendboard. The only implementation wraps log/slog; the interface keeps
// call sites decoupled from the backend.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are
// key–value pairs:
//
//	log.Info(ctx, "collection seeded", "count", n)
type Logger interface {
	// Debug logs fine-grained diagnostics.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
