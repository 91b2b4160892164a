// Пакет ctxmeta — нейтральный слой для метаданных запроса в context.Context:
// request_id, источник изменения (web/api/cli) и идентификаторы трейса.
// HTTP-слой, логгер и сервис корзины зависят от него, но не друг от друга.
package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
	KeyOrigin    ctxKey = "origin"
)

// Источники изменений корзины.
const (
	OriginWeb = "web"
	OriginAPI = "api"
	OriginCLI = "cli"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithOrigin помечает контекст источником изменения (web, api, cli).
func WithOrigin(ctx context.Context, origin string) context.Context {
	return withString(ctx, KeyOrigin, origin)
}

// OriginFromContext достаёт источник изменения.
func OriginFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyOrigin)
}

// TraceIDFromContext — trace_id активного спана (если спан валиден).
func TraceIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return "", false
	}
	return sc.TraceID().String(), true
}

// SpanIDFromContext — span_id активного спана (если спан валиден).
func SpanIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return "", false
	}
	return sc.SpanID().String(), true
}

// Fields — пары ключ/значение для структурного логгера; отсутствующие значения пропускаются.
func Fields(ctx context.Context) []any {
	fields := make([]any, 0, 8)
	if v, ok := RequestIDFromContext(ctx); ok {
		fields = append(fields, string(KeyRequestID), v)
	}
	if v, ok := OriginFromContext(ctx); ok {
		fields = append(fields, string(KeyOrigin), v)
	}
	if v, ok := TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", v)
	}
	if v, ok := SpanIDFromContext(ctx); ok {
		fields = append(fields, "span_id", v)
	}
	return fields
}

func withString(ctx context.Context, key ctxKey, value string) context.Context {
	if ctx == nil || value == "" {
		return ctx
	}
	return context.WithValue(ctx, key, value)
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
