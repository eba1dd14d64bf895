package observability

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const dbTracerName = "listingpay/db"

type contextKey string

const (
	requestIDKey      contextKey = "observability.request_id"
	routeKey          contextKey = "observability.route"
	webhookEventIDKey contextKey = "observability.webhook_event_id"
)

// Span is the application-level tracing span contract.
type Span interface {
	End()
	RecordError(error)
}

type otelSpan struct {
	inner trace.Span
}

// StartDBSpan starts a database tracing span for one query operation.
func StartDBSpan(ctx context.Context, queryName, operation string) (context.Context, Span) {
	queryName = strings.TrimSpace(queryName)
	if queryName == "" {
		queryName = "unknown"
	}
	ctx, span := otel.Tracer(dbTracerName).Start(ctx, "db."+queryName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system.name", "sqlite"),
			attribute.String("db.query_name", queryName),
			attribute.String("db.operation", strings.TrimSpace(operation)),
		),
	)
	return ctx, otelSpan{inner: span}
}

// WithRequestMetadata enriches context and current span with request metadata.
func WithRequestMetadata(ctx context.Context, requestID, route string) context.Context {
	requestID = strings.TrimSpace(requestID)
	route = strings.TrimSpace(route)
	attrs := make([]attribute.KeyValue, 0, 2)
	if requestID != "" {
		ctx = context.WithValue(ctx, requestIDKey, requestID)
		attrs = append(attrs, attribute.String("request.id", requestID))
	}
	if route != "" {
		ctx = context.WithValue(ctx, routeKey, route)
		attrs = append(attrs, attribute.String("http.route", route))
	}
	setSpanAttributes(ctx, attrs...)
	return ctx
}

// WithWebhookEvent tags context and current span with the provider delivery
// identifiers of one webhook.
func WithWebhookEvent(ctx context.Context, eventID, eventType string) context.Context {
	eventID = strings.TrimSpace(eventID)
	eventType = strings.TrimSpace(eventType)
	attrs := make([]attribute.KeyValue, 0, 2)
	if eventID != "" {
		ctx = context.WithValue(ctx, webhookEventIDKey, eventID)
		attrs = append(attrs, attribute.String("webhook.event_id", eventID))
	}
	if eventType != "" {
		attrs = append(attrs, attribute.String("webhook.event_type", eventType))
	}
	setSpanAttributes(ctx, attrs...)
	return ctx
}

// RequestIDFromContext extracts request id.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, requestIDKey)
}

// RouteFromContext extracts normalized route path.
func RouteFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, routeKey)
}

// WebhookEventIDFromContext extracts the provider delivery id.
func WebhookEventIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, webhookEventIDKey)
}

func stringFromContext(ctx context.Context, key contextKey) (string, bool) {
	value, ok := ctx.Value(key).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func setSpanAttributes(ctx context.Context, attrs ...attribute.KeyValue) {
	if len(attrs) == 0 {
		return
	}
	span := trace.SpanFromContext(ctx)
	if span == nil {
		return
	}
	span.SetAttributes(attrs...)
}

func (s otelSpan) End() {
	if s.inner == nil {
		return
	}
	s.inner.End()
}

func (s otelSpan) RecordError(err error) {
	if s.inner == nil || err == nil {
		return
	}
	s.inner.RecordError(err)
	s.inner.SetStatus(codes.Error, err.Error())
}
