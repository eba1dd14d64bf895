package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestWrapSlogHandlerAddsContextFields(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(WrapSlogHandler(slog.NewTextHandler(&buf, nil)))

	ctx := WithRequestMetadata(context.Background(), "req-1", "/webhooks/razorpay")
	ctx = WithWebhookEvent(ctx, "evt_42", "payment.captured")
	log.InfoContext(ctx, "webhook_received")

	out := buf.String()
	for _, want := range []string{"request_id=req-1", "route=/webhooks/razorpay", "webhook_event_id=evt_42"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log line, got %q", want, out)
		}
	}
}

func TestContextAccessorsIgnoreBlankValues(t *testing.T) {
	ctx := WithRequestMetadata(context.Background(), "  ", "")
	ctx = WithWebhookEvent(ctx, "", "")

	if _, ok := RequestIDFromContext(ctx); ok {
		t.Fatal("expected blank request id to be ignored")
	}
	if _, ok := RouteFromContext(ctx); ok {
		t.Fatal("expected blank route to be ignored")
	}
	if _, ok := WebhookEventIDFromContext(ctx); ok {
		t.Fatal("expected blank event id to be ignored")
	}
}

func TestSetupOpenTelemetryDisabledIsNoop(t *testing.T) {
	shutdown, err := SetupOpenTelemetry(context.Background(), slog.Default(), OpenTelemetryConfig{})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
