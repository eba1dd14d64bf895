package razorpay

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fr0stylo/listingpay/internal/app/domain"
	"github.com/fr0stylo/listingpay/internal/app/ports"
)

const (
	DefaultAPIBaseURL = "https://api.razorpay.com"
	orderPath         = "/v1/orders/{id}"
	badRequestCode    = "BAD_REQUEST_ERROR"
)

// OrderClientConfig configures the Razorpay Orders API client.
type OrderClientConfig struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// OrderClient resolves orders against the Razorpay Orders API.
type OrderClient struct {
	http       *resty.Client
	configured bool
}

// NewOrderClient builds an order client. Missing credentials are reported by
// FetchOrder, not here.
func NewOrderClient(cfg OrderClientConfig) *OrderClient {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetBasicAuth(cfg.KeyID, cfg.KeySecret).
		SetHeader("Accept", "application/json")
	if cfg.Transport != nil {
		client.SetTransport(cfg.Transport)
	}

	return &OrderClient{
		http:       client,
		configured: cfg.KeyID != "" && cfg.KeySecret != "",
	}
}

// FetchOrder loads the authoritative order for orderID.
func (c *OrderClient) FetchOrder(ctx context.Context, orderID string) (domain.ProviderOrder, error) {
	if !c.configured {
		return domain.ProviderOrder{}, ports.ErrProviderNotConfigured
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return domain.ProviderOrder{}, fmt.Errorf("%w: empty order id", ports.ErrOrderNotFound)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", orderID).
		Get(orderPath)
	if err != nil {
		return domain.ProviderOrder{}, fmt.Errorf("%w: fetch order %s: %v", ports.ErrProviderUnavailable, orderID, err)
	}

	status := resp.StatusCode()
	switch {
	case status >= 200 && status < 300:
		return decodeOrder(resp.Body())
	case status == http.StatusNotFound:
		return domain.ProviderOrder{}, fmt.Errorf("%w: %s", ports.ErrOrderNotFound, orderID)
	case status == http.StatusBadRequest && isMissingOrderError(resp.Body()):
		return domain.ProviderOrder{}, fmt.Errorf("%w: %s", ports.ErrOrderNotFound, orderID)
	default:
		return domain.ProviderOrder{}, fmt.Errorf("%w: fetch order %s: status %d", ports.ErrProviderUnavailable, orderID, status)
	}
}

func decodeOrder(body []byte) (domain.ProviderOrder, error) {
	raw, err := decodeObject(body)
	if err != nil {
		return domain.ProviderOrder{}, fmt.Errorf("%w: decode order: %v", ports.ErrProviderUnavailable, err)
	}
	id := readString(raw, "id")
	amount, ok := readInt64(raw, "amount")
	if id == "" || !ok {
		return domain.ProviderOrder{}, fmt.Errorf("%w: order response missing id or amount", ports.ErrProviderUnavailable)
	}
	return domain.ProviderOrder{
		ID:               id,
		AmountMinorUnits: amount,
		Receipt:          readString(raw, "receipt"),
	}, nil
}

// isMissingOrderError matches the 400 Razorpay returns for unknown order ids.
func isMissingOrderError(body []byte) bool {
	raw, err := decodeObject(body)
	if err != nil {
		return false
	}
	apiErr := readMap(raw, "error")
	if readString(apiErr, "code") != badRequestCode {
		return false
	}
	description := strings.ToLower(readString(apiErr, "description"))
	return strings.Contains(description, "does not exist")
}

var _ ports.OrderResolver = (*OrderClient)(nil)
