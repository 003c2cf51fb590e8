package logging

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Handler is a slog.Handler that writes records to a zap logger.
type Handler struct {
	logger *zap.Logger
	fields []zap.Field
	groups []string
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Core().Enabled(zapLevelOf(level))
}

func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	entry := h.logger.Check(zapLevelOf(record.Level), record.Message)
	if entry == nil {
		return nil
	}

	if !record.Time.IsZero() {
		entry.Time = record.Time
	}

	fields := slices.Clone(h.fields)
	record.Attrs(func(attr slog.Attr) bool {
		fields = appendAttr(fields, h.prefix(), attr)
		return true
	})

	entry.Write(fields...)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := slices.Clone(h.fields)
	for _, attr := range attrs {
		fields = appendAttr(fields, h.prefix(), attr)
	}

	return &Handler{logger: h.logger, fields: fields, groups: h.groups}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &Handler{
		logger: h.logger,
		fields: h.fields,
		groups: append(slices.Clone(h.groups), name),
	}
}

func (h *Handler) prefix() string {
	if len(h.groups) == 0 {
		return ""
	}

	return strings.Join(h.groups, ".") + "."
}

func appendAttr(fields []zap.Field, prefix string, attr slog.Attr) []zap.Field {
	value := attr.Value.Resolve()
	key := prefix + attr.Key

	switch value.Kind() {
	case slog.KindGroup:
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = key + "."
		}

		for _, nested := range value.Group() {
			fields = appendAttr(fields, groupPrefix, nested)
		}

		return fields

	case slog.KindString:
		return append(fields, zap.String(key, value.String()))

	case slog.KindInt64:
		return append(fields, zap.Int64(key, value.Int64()))

	case slog.KindUint64:
		return append(fields, zap.Uint64(key, value.Uint64()))

	case slog.KindFloat64:
		return append(fields, zap.Float64(key, value.Float64()))

	case slog.KindBool:
		return append(fields, zap.Bool(key, value.Bool()))

	case slog.KindDuration:
		return append(fields, zap.Duration(key, value.Duration()))

	case slog.KindTime:
		return append(fields, zap.Time(key, value.Time()))

	default:
		if attr.Equal(slog.Attr{}) {
			return fields
		}

		return append(fields, zap.Any(key, value.Any()))
	}
}

func zapLevelOf(level slog.Level) zapcore.Level {
	switch {
	case level < slog.LevelInfo:
		return zapcore.DebugLevel
	case level < slog.LevelWarn:
		return zapcore.InfoLevel
	case level < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
