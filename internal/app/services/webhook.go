package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/fr0stylo/listingpay/internal/app/domain"
	"github.com/fr0stylo/listingpay/internal/app/ports"
	"github.com/fr0stylo/listingpay/internal/observability"
	"github.com/fr0stylo/listingpay/internal/razorpay"
)

const defaultProviderTimeout = 10 * time.Second

// WebhookOutcome is the terminal state of an accepted webhook delivery.
type WebhookOutcome string

const (
	OutcomeReconciled          WebhookOutcome = "reconciled"
	OutcomePartiallyReconciled WebhookOutcome = "partially_reconciled"
	OutcomeIgnoredEvent        WebhookOutcome = "ignored_event"
	OutcomeNoOrderID           WebhookOutcome = "no_order_id"
	OutcomeOrderNotFound       WebhookOutcome = "order_not_found"
	OutcomeNoListing           WebhookOutcome = "no_listing"
	OutcomeMalformedPayload    WebhookOutcome = "malformed_payload"
)

// WebhookCommand is transport-agnostic webhook input.
type WebhookCommand struct {
	Body            []byte
	SignatureHeader string
	EventID         string
}

// WebhookResult reports how an accepted delivery was handled.
type WebhookResult struct {
	Outcome        WebhookOutcome
	Event          domain.PaymentEvent
	ListingID      string
	Reconciliation ReconciliationResult
}

// WebhookConfig configures webhook authentication and provider lookups.
type WebhookConfig struct {
	Secret          string
	ProviderTimeout time.Duration
}

// WebhookService authenticates Razorpay deliveries and reconciles paid orders.
type WebhookService struct {
	secret          string
	providerTimeout time.Duration
	orders          ports.OrderResolver
	engine          *ReconciliationEngine
	metrics         webhookMetrics
}

// NewWebhookService constructs a webhook service.
func NewWebhookService(cfg WebhookConfig, orders ports.OrderResolver, engine *ReconciliationEngine) *WebhookService {
	timeout := cfg.ProviderTimeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &WebhookService{
		secret:          cfg.Secret,
		providerTimeout: timeout,
		orders:          orders,
		engine:          engine,
		metrics:         newWebhookMetrics(),
	}
}

// Process verifies, normalizes, resolves, and reconciles one delivery.
// A nil error means the delivery should be acknowledged.
func (s *WebhookService) Process(ctx context.Context, cmd WebhookCommand) (WebhookResult, error) {
	result, err := s.process(ctx, cmd)
	if err != nil {
		s.metrics.recordRejected(ctx, ClassifyWebhookError(err))
		return result, err
	}
	s.metrics.recordOutcome(ctx, result.Outcome, result.Event.Kind.String())
	return result, nil
}

func (s *WebhookService) process(ctx context.Context, cmd WebhookCommand) (WebhookResult, error) {
	if s.secret == "" {
		return WebhookResult{}, ErrWebhookNotConfigured
	}
	if strings.TrimSpace(cmd.SignatureHeader) == "" {
		return WebhookResult{}, ErrMissingSignature
	}
	if !razorpay.VerifySignature(cmd.Body, cmd.SignatureHeader, s.secret) {
		return WebhookResult{}, ErrInvalidSignature
	}

	event, err := razorpay.NormalizeEvent(cmd.Body)
	if err != nil {
		slog.WarnContext(ctx, "webhook_malformed_payload", "event_id", cmd.EventID, "error", err)
		return WebhookResult{Outcome: OutcomeMalformedPayload}, nil
	}
	ctx = observability.WithWebhookEvent(ctx, cmd.EventID, event.RawKind)
	result := WebhookResult{Event: event}

	if !event.Kind.TriggersMutation() {
		result.Outcome = OutcomeIgnoredEvent
		return result, nil
	}
	if event.OrderID == "" {
		result.Outcome = OutcomeNoOrderID
		return result, nil
	}

	order, err := s.fetchOrder(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, ports.ErrOrderNotFound) {
			slog.WarnContext(ctx, "webhook_order_not_found", "order_id", event.OrderID, "error", err)
			result.Outcome = OutcomeOrderNotFound
			return result, nil
		}
		s.metrics.recordProviderFailure(ctx, ClassifyWebhookError(err))
		return result, err
	}

	receipt, ok := domain.DecodeReceipt(order.Receipt)
	if !ok {
		slog.InfoContext(ctx, "webhook_no_listing", "order_id", order.ID, "receipt", order.Receipt)
		result.Outcome = OutcomeNoListing
		return result, nil
	}
	result.ListingID = receipt.ListingID

	reconciliation, err := s.engine.Apply(ctx, event, order, receipt)
	result.Reconciliation = reconciliation
	if err != nil {
		slog.ErrorContext(ctx, "reconciliation_failed",
			"listing_id", receipt.ListingID,
			"order_id", order.ID,
			"payment_id", event.PaymentID,
			"error", err,
		)
		return result, err
	}
	if reconciliation.Inconsistent {
		result.Outcome = OutcomePartiallyReconciled
	} else {
		result.Outcome = OutcomeReconciled
	}
	return result, nil
}

func (s *WebhookService) fetchOrder(ctx context.Context, orderID string) (domain.ProviderOrder, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()
	return s.orders.FetchOrder(fetchCtx, orderID)
}
