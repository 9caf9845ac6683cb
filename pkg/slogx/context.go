package slogx

import (
	"context"
	"log/slog"
	"sync"
)

type ctxKey struct{}

type annotationsKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// annotations collects attributes added while a request is being served so
// the access log line can include them.
type annotations struct {
	mu    sync.Mutex
	attrs []any
}

// Annotate adds key/value pairs to the current request's access log line and
// returns a context whose logger carries them too. Outside HTTPMiddleware only
// the logger is updated.
func Annotate(ctx context.Context, args ...any) context.Context {
	if a, ok := ctx.Value(annotationsKey{}).(*annotations); ok {
		a.mu.Lock()
		a.attrs = append(a.attrs, args...)
		a.mu.Unlock()
	}
	return WithContext(ctx, FromContext(ctx).With(args...))
}

func (a *annotations) snapshot() []any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]any(nil), a.attrs...)
}
