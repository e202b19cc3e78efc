package maxslog

import "context"

type loggerKey struct{}

// WithLogger stores l in the context so that calculation steps can report
// without a package-level log.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext retrieves the Logger stored by WithLogger.
func FromContext(ctx context.Context) (*Logger, bool) {
	l, ok := ctx.Value(loggerKey{}).(*Logger)
	return l, ok && l != nil
}

// RequireLogger returns the Logger from ctx or ErrNoLogger.
func RequireLogger(ctx context.Context) (*Logger, error) {
	if l, ok := FromContext(ctx); ok {
		return l, nil
	}
	return nil, ErrNoLogger
}
