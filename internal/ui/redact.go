package ui

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

// Mask replaces sensitive attribute values in log output.
const Mask = "***REDACTED***"

var sensitiveKeywords = []string{
	"api_key", "apikey", "api-key", "password", "secret", "token", "cookie", "authorization",
}

var sensitiveValues = []*regexp.Regexp{
	regexp.MustCompile(`^sk-[A-Za-z0-9_\-]{16,}$`),
	regexp.MustCompile(`^sk-ant-[A-Za-z0-9_\-]{16,}$`),
	regexp.MustCompile(`(?i)^bearer\s+.+`),
}

// RedactingHandler wraps an slog.Handler and masks attributes that carry
// API keys, cookies or tokens before they reach the output.
type RedactingHandler struct {
	handler slog.Handler
}

func NewRedactingHandler(h slog.Handler) *RedactingHandler {
	if h == nil {
		h = slog.Default().Handler()
	}

	return &RedactingHandler{handler: h}
}

func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *RedactingHandler) Handle(ctx context.Context, r slog.Record) error {
	clean := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(redactAttr(a))
		return true
	})

	return h.handler.Handle(ctx, clean)
}

func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clean[i] = redactAttr(a)
	}

	return &RedactingHandler{handler: h.handler.WithAttrs(clean)}
}

func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{handler: h.handler.WithGroup(name)}
}

func redactAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		clean := make([]slog.Attr, len(group))
		for i, g := range group {
			clean[i] = redactAttr(g)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clean...)}
	}

	key := strings.ToLower(a.Key)
	for _, kw := range sensitiveKeywords {
		if strings.Contains(key, kw) {
			return slog.String(a.Key, Mask)
		}
	}

	if a.Value.Kind() == slog.KindString {
		v := a.Value.String()
		for _, re := range sensitiveValues {
			if re.MatchString(v) {
				return slog.String(a.Key, Mask)
			}
		}
	}

	return a
}
