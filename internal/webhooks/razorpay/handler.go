package razorpay

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fr0stylo/listingpay/internal/app/services"
	rzp "github.com/fr0stylo/listingpay/internal/razorpay"
)

const maxPayloadBytes = 1 << 20

// Handler serves Razorpay webhook deliveries.
type Handler struct {
	webhooks *services.WebhookService
}

// NewHandler constructs a Razorpay webhook handler.
func NewHandler(webhooks *services.WebhookService) *Handler {
	return &Handler{webhooks: webhooks}
}

// Handle reads the raw body, runs it through the webhook service and writes
// the plain-text acknowledgement Razorpay expects.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) error {
	body, readErr := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if readErr != nil {
		writeText(w, http.StatusBadRequest, "invalid payload")
		return nil
	}

	result, err := h.webhooks.Process(r.Context(), services.WebhookCommand{
		Body:            body,
		SignatureHeader: r.Header.Get(rzp.SignatureHeader),
		EventID:         strings.TrimSpace(r.Header.Get(rzp.EventIDHeader)),
	})
	if err != nil {
		writeWebhookHTTPError(w, r, err)
		return nil
	}

	switch result.Outcome {
	case services.OutcomeNoOrderID:
		writeText(w, http.StatusOK, "No order id")
	case services.OutcomeOrderNotFound:
		writeText(w, http.StatusOK, "Order not found")
	case services.OutcomeNoListing:
		writeText(w, http.StatusOK, "No listing in receipt")
	default:
		writeText(w, http.StatusOK, "ok")
	}
	return nil
}

func writeWebhookHTTPError(w http.ResponseWriter, r *http.Request, err error) {
	kind := services.ClassifyWebhookError(err)
	switch kind {
	case services.WebhookErrorNotConfigured:
		slog.ErrorContext(r.Context(), "webhook_rejected", "reason", kind, "error", err)
		writeText(w, http.StatusInternalServerError, "No webhook secret configured")
	case services.WebhookErrorMissingSignature:
		writeText(w, http.StatusBadRequest, "Missing signature")
	case services.WebhookErrorInvalidSignature:
		slog.WarnContext(r.Context(), "webhook_rejected", "reason", kind)
		writeText(w, http.StatusBadRequest, "Invalid signature")
	case services.WebhookErrorProviderNotConfigured:
		slog.ErrorContext(r.Context(), "webhook_rejected", "reason", kind, "error", err)
		writeText(w, http.StatusInternalServerError, "Razorpay not configured")
	case services.WebhookErrorProviderUnavailable:
		slog.WarnContext(r.Context(), "webhook_provider_unavailable", "error", err)
		writeText(w, http.StatusBadGateway, "Provider unavailable")
	default:
		slog.ErrorContext(r.Context(), "webhook_failed", "reason", kind, "error", err)
		writeText(w, http.StatusInternalServerError, "error")
	}
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
