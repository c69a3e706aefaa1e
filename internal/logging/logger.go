// Package logging defines the structured logger the rest of the code logs
// through. Call sites stay decoupled from the backend; the only shipped
// implementation wraps slog.
package logging

import "context"

// Logger logs structured, context-aware records. Variadic args are
// alternating key/value pairs:
//
//	log.Info(ctx, "report created", "id", r.ID, "category", r.Category)
type Logger interface {
	// Debug logs fine-grained diagnostics, usually off in production.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs normal operational events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but recoverable conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key/value pairs on
	// every record.
	With(args ...any) Logger
}
