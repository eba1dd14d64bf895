package services

import (
	"errors"

	"github.com/fr0stylo/listingpay/internal/app/ports"
)

var (
	// ErrWebhookNotConfigured indicates no webhook secret is available.
	ErrWebhookNotConfigured = errors.New("webhook secret not configured")
	// ErrMissingSignature indicates the signature header was absent.
	ErrMissingSignature = errors.New("missing signature")
	// ErrInvalidSignature indicates the signature did not match the body.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrPersistenceFailed indicates neither reconciliation write succeeded.
	ErrPersistenceFailed = errors.New("persistence failed")
)

// WebhookErrorKind classifies webhook failures for transport-specific mapping.
type WebhookErrorKind string

const (
	// WebhookErrorUnknown is used when error is nil or not classified.
	WebhookErrorUnknown WebhookErrorKind = "unknown"
	// WebhookErrorNotConfigured indicates the webhook secret is missing.
	WebhookErrorNotConfigured WebhookErrorKind = "not_configured"
	// WebhookErrorMissingSignature indicates an absent signature header.
	WebhookErrorMissingSignature WebhookErrorKind = "missing_signature"
	// WebhookErrorInvalidSignature indicates signature mismatch.
	WebhookErrorInvalidSignature WebhookErrorKind = "invalid_signature"
	// WebhookErrorProviderNotConfigured indicates missing provider credentials.
	WebhookErrorProviderNotConfigured WebhookErrorKind = "provider_not_configured"
	// WebhookErrorProviderUnavailable indicates a transient provider failure.
	WebhookErrorProviderUnavailable WebhookErrorKind = "provider_unavailable"
	// WebhookErrorPersistence indicates both store writes failed.
	WebhookErrorPersistence WebhookErrorKind = "persistence"
)

// ClassifyWebhookError classifies an error returned by WebhookService.Process.
func ClassifyWebhookError(err error) WebhookErrorKind {
	switch {
	case err == nil:
		return WebhookErrorUnknown
	case errors.Is(err, ErrWebhookNotConfigured):
		return WebhookErrorNotConfigured
	case errors.Is(err, ErrMissingSignature):
		return WebhookErrorMissingSignature
	case errors.Is(err, ErrInvalidSignature):
		return WebhookErrorInvalidSignature
	case errors.Is(err, ports.ErrProviderNotConfigured):
		return WebhookErrorProviderNotConfigured
	case errors.Is(err, ports.ErrProviderUnavailable):
		return WebhookErrorProviderUnavailable
	case errors.Is(err, ErrPersistenceFailed):
		return WebhookErrorPersistence
	default:
		return WebhookErrorUnknown
	}
}
