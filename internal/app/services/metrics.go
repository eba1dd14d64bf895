package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type webhookMetrics struct {
	outcomes         metric.Int64Counter
	rejected         metric.Int64Counter
	inconsistencies  metric.Int64Counter
	providerFailures metric.Int64Counter
}

func newWebhookMetrics() webhookMetrics {
	meter := otel.Meter("github.com/fr0stylo/listingpay/internal/app/services")
	outcomes, _ := meter.Int64Counter("listingpay.webhook.outcomes")
	rejected, _ := meter.Int64Counter("listingpay.webhook.rejected")
	inconsistencies, _ := meter.Int64Counter("listingpay.reconciliation.inconsistencies")
	providerFailures, _ := meter.Int64Counter("listingpay.provider.failures")
	return webhookMetrics{
		outcomes:         outcomes,
		rejected:         rejected,
		inconsistencies:  inconsistencies,
		providerFailures: providerFailures,
	}
}

func (m webhookMetrics) recordOutcome(ctx context.Context, outcome WebhookOutcome, eventKind string) {
	m.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", string(outcome)),
		attribute.String("event", eventKind),
	))
}

func (m webhookMetrics) recordRejected(ctx context.Context, reason WebhookErrorKind) {
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", string(reason))))
}

func (m webhookMetrics) recordInconsistency(ctx context.Context, failedWrite string) {
	m.inconsistencies.Add(ctx, 1, metric.WithAttributes(attribute.String("write", failedWrite)))
}

func (m webhookMetrics) recordProviderFailure(ctx context.Context, reason WebhookErrorKind) {
	m.providerFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", string(reason))))
}
