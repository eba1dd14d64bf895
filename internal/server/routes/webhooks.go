package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/fr0stylo/listingpay/internal/app/services"
	razorpaywebhook "github.com/fr0stylo/listingpay/internal/webhooks/razorpay"
)

// WebhookRoutes registers payment webhook endpoints.
type WebhookRoutes struct {
	razorpay *razorpaywebhook.Handler
}

// NewWebhookRoutes constructs webhook routes.
func NewWebhookRoutes(webhooks *services.WebhookService) *WebhookRoutes {
	return &WebhookRoutes{
		razorpay: razorpaywebhook.NewHandler(webhooks),
	}
}

// RegisterRoutes registers webhook endpoints.
func (w *WebhookRoutes) RegisterRoutes(s *echo.Echo) {
	s.POST("/api/razorpay/webhook", w.handleRazorpayWebhook)
	s.POST("/webhooks/razorpay", w.handleRazorpayWebhook)
}

func (w *WebhookRoutes) handleRazorpayWebhook(c echo.Context) error {
	return w.razorpay.Handle(c.Response(), c.Request())
}
