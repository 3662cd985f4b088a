package log

import (
	"context"
	"log/slog"
)

type contextKey struct{}

var attrsKey contextKey

// WithAttrs returns a new context carrying the given attributes. Records
// logged with a ContextHandler-backed logger will include them.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing := contextAttrs(ctx)
	merged := make([]slog.Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, attrsKey, merged)
}

func contextAttrs(ctx context.Context) []slog.Attr {
	attrs, ok := ctx.Value(attrsKey).([]slog.Attr)
	if !ok {
		return nil
	}
	return attrs
}

// ContextHandler decorates a slog.Handler with the attributes attached to
// the record's context via WithAttrs.
type ContextHandler struct {
	slog.Handler
}

func (h ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs := contextAttrs(ctx); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, record)
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

var _ slog.Handler = ContextHandler{}
