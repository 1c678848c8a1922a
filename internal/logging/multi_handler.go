package logging

import (
	"context"
	"errors"
	"log/slog"
)

type requestAttrsKey struct{}

// WithRequestAttrs returns a context that carries attrs on top of those ctx already holds.
// RequestLogger and the actor middleware store request_id and user_id this way.
func WithRequestAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	prev, _ := ctx.Value(requestAttrsKey{}).([]slog.Attr)
	merged := make([]slog.Attr, 0, len(prev)+len(attrs))
	merged = append(merged, prev...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, requestAttrsKey{}, merged)
}

// MultiHandler sends each record to every handler enabled for its level, so stdout and
// the system_logs sink see the same entry. Records logged with a request context gain
// that request's attributes unless they already set the same key.
type MultiHandler struct {
	handlers []slog.Handler
	bound    map[string]struct{}
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle keeps going when one handler fails; a broken sink must not silence stdout.
func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	record = m.addRequestAttrs(ctx, record)

	var errs []error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiHandler) addRequestAttrs(ctx context.Context, record slog.Record) slog.Record {
	if ctx == nil {
		return record
	}
	attrs, _ := ctx.Value(requestAttrsKey{}).([]slog.Attr)
	if len(attrs) == 0 {
		return record
	}

	present := make(map[string]struct{}, record.NumAttrs()+len(m.bound))
	for key := range m.bound {
		present[key] = struct{}{}
	}
	record.Attrs(func(a slog.Attr) bool {
		present[a.Key] = struct{}{}
		return true
	})

	record = record.Clone()
	for _, a := range attrs {
		if _, ok := present[a.Key]; ok {
			continue
		}
		record.AddAttrs(a)
		present[a.Key] = struct{}{}
	}
	return record
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}

	bound := make(map[string]struct{}, len(m.bound)+len(attrs))
	for key := range m.bound {
		bound[key] = struct{}{}
	}
	for _, a := range attrs {
		bound[a.Key] = struct{}{}
	}
	return &MultiHandler{handlers: handlers, bound: bound}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &MultiHandler{handlers: handlers, bound: m.bound}
}
