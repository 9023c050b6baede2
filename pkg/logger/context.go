package logger

import (
	"context"
	"log/slog"
	"sync"
)

type ctxKey string

const (
	loggerKey ctxKey = "logger"
	fieldsKey ctxKey = "request-fields"
)

// RequestFields collects attributes added while a request travels inward so
// the access log written on the way out can carry them. The auth gate, for
// one, only learns the caller after the access log middleware has run.
type RequestFields struct {
	mu    sync.Mutex
	attrs []any
}

func (f *RequestFields) add(attrs ...any) {
	f.mu.Lock()
	f.attrs = append(f.attrs, attrs...)
	f.mu.Unlock()
}

// Attrs returns a copy of the collected key/value pairs.
func (f *RequestFields) Attrs() []any {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]any(nil), f.attrs...)
}

// WithRequestFields starts a fresh collector for one request.
func WithRequestFields(ctx context.Context) (context.Context, *RequestFields) {
	f := &RequestFields{}
	return context.WithValue(ctx, fieldsKey, f), f
}

// With returns a context whose logger carries fields. The fields are also
// recorded on the request collector when one is present.
func With(ctx context.Context, fields ...any) context.Context {
	if f, ok := ctx.Value(fieldsKey).(*RequestFields); ok {
		f.add(fields...)
	}
	l := From(ctx).With(fields...)
	return context.WithValue(ctx, loggerKey, l)
}

// From returns the logger stored in context, or default if missing.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
