package logger

import (
	"context"
	"log/slog"
)

// ServiceHandler is a slog.Handler that adds static service metadata
// (service name, environment) to every record before delegating.
type ServiceHandler struct {
	handler  slog.Handler
	metadata []slog.Attr
}

// NewServiceHandler wraps handler, attaching the non-empty metadata values.
func NewServiceHandler(handler slog.Handler, metadata map[string]string) *ServiceHandler {
	attrs := make([]slog.Attr, 0, len(metadata))
	for k, v := range metadata {
		if v == "" {
			continue
		}
		attrs = append(attrs, slog.String(k, v))
	}
	return &ServiceHandler{handler: handler, metadata: attrs}
}

// Enabled implements the slog.Handler interface.
func (h *ServiceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *ServiceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ServiceHandler{handler: h.handler.WithAttrs(attrs), metadata: h.metadata}
}

// WithGroup implements the slog.Handler interface.
// Metadata stays at the top level because it was attached before the group.
func (h *ServiceHandler) WithGroup(name string) slog.Handler {
	return &ServiceHandler{handler: h.handler.WithAttrs(h.metadata).WithGroup(name)}
}

// Handle implements the slog.Handler interface.
func (h *ServiceHandler) Handle(ctx context.Context, record slog.Record) error {
	if len(h.metadata) == 0 {
		return h.handler.Handle(ctx, record)
	}
	enhanced := record.Clone()
	enhanced.AddAttrs(h.metadata...)
	return h.handler.Handle(ctx, enhanced)
}
