package razorpay

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fr0stylo/listingpay/internal/adapters/sqlite"
	"github.com/fr0stylo/listingpay/internal/app/services"
	"github.com/fr0stylo/listingpay/internal/db"
	rzp "github.com/fr0stylo/listingpay/internal/razorpay"
)

const testWebhookSecret = "whsec_e2e"

type testStack struct {
	handler       *Handler
	database      *db.Database
	providerCalls *atomic.Int64
}

func newTestStack(t *testing.T, secret string, provider http.HandlerFunc) testStack {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "webhook-e2e"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	calls := &atomic.Int64{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		provider(w, r)
	}))
	t.Cleanup(server.Close)

	orders := rzp.NewOrderClient(rzp.OrderClientConfig{
		BaseURL:   server.URL,
		KeyID:     "rzp_test_key",
		KeySecret: "rzp_test_secret",
		Timeout:   2 * time.Second,
	})
	engine := services.NewReconciliationEngine(sqlite.NewSharedReconciliationStoreFactory(database), services.ReconciliationConfig{
		FeaturedDuration: 7 * 24 * time.Hour,
		Currency:         "INR",
		StoreTimeout:     2 * time.Second,
	})
	webhooks := services.NewWebhookService(services.WebhookConfig{Secret: secret, ProviderTimeout: 2 * time.Second}, orders, engine)

	return testStack{handler: NewHandler(webhooks), database: database, providerCalls: calls}
}

func orderResponder(amount int, receipt string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_A","entity":"order","amount":` + strconv.Itoa(amount) + `,"currency":"INR","receipt":"` + receipt + `","status":"paid"}`))
	}
}

func deliver(t *testing.T, h *Handler, body string, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/razorpay/webhook", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(rzp.SignatureHeader, signature)
	}
	req.Header.Set(rzp.EventIDHeader, "evt_test")
	rec := httptest.NewRecorder()
	if err := h.Handle(rec, req); err != nil {
		t.Fatalf("handle request: %v", err)
	}
	return rec
}

// The webhook body claims amount 1; only the provider's amount may be recorded.
const capturedBody = `{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_A","amount":1}}}}`

func TestHandleFeaturesListingFromAuthoritativeOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stack := newTestStack(t, testWebhookSecret, orderResponder(49900, "listing_L1_featured_1700000000"))
	if _, err := stack.database.CreateListing(ctx, "L1", "Sea view flat"); err != nil {
		t.Fatalf("create listing: %v", err)
	}

	before := time.Now()
	rec := deliver(t, stack.handler, capturedBody, rzp.Sign([]byte(capturedBody), testWebhookSecret))
	after := time.Now()

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}

	listing, err := stack.database.GetListing(ctx, "L1")
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}
	if listing.IsFeatured != 1 || listing.Paid != 1 || !listing.FeaturedUntilMs.Valid {
		t.Fatalf("expected featured paid listing, got %+v", listing)
	}
	until := time.UnixMilli(listing.FeaturedUntilMs.Int64)
	week := 7 * 24 * time.Hour
	if until.Before(before.Add(week).Add(-time.Second)) || until.After(after.Add(week).Add(time.Second)) {
		t.Fatalf("featured until %s not within a week of processing", until)
	}

	payments, err := stack.database.ListPaymentsByListing(ctx, "L1")
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(payments))
	}
	p := payments[0]
	if p.AmountMinor != 49900 || p.Currency != "INR" || p.Status != "captured" || p.ProviderOrderID != "order_A" || p.ProviderPaymentID != "pay_1" {
		t.Fatalf("unexpected payment %+v", p)
	}
}

func TestHandleRedeliveryIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stack := newTestStack(t, testWebhookSecret, orderResponder(49900, "listing_L1_featured_1700000000"))
	if _, err := stack.database.CreateListing(ctx, "L1", "Sea view flat"); err != nil {
		t.Fatalf("create listing: %v", err)
	}
	signature := rzp.Sign([]byte(capturedBody), testWebhookSecret)

	if rec := deliver(t, stack.handler, capturedBody, signature); rec.Code != http.StatusOK {
		t.Fatalf("first delivery status %d", rec.Code)
	}
	first, err := stack.database.GetListing(ctx, "L1")
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if rec := deliver(t, stack.handler, capturedBody, signature); rec.Code != http.StatusOK {
		t.Fatalf("second delivery status %d", rec.Code)
	}
	second, err := stack.database.GetListing(ctx, "L1")
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}

	if first.FeaturedUntilMs != second.FeaturedUntilMs {
		t.Fatalf("redelivery moved featured window from %d to %d", first.FeaturedUntilMs.Int64, second.FeaturedUntilMs.Int64)
	}
	count, err := stack.database.CountPaymentsByOrder(ctx, "order_A")
	if err != nil {
		t.Fatalf("count payments: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one payment after redelivery, got %d", count)
	}
}

func TestHandleIgnoresUnrelatedEvents(t *testing.T) {
	t.Parallel()

	stack := newTestStack(t, testWebhookSecret, orderResponder(49900, "listing_L1_featured_1"))
	body := `{"event":"refund.created","payload":{"refund":{"entity":{"id":"rfnd_1","payment_id":"pay_1"}}}}`

	rec := deliver(t, stack.handler, body, rzp.Sign([]byte(body), testWebhookSecret))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
	if calls := stack.providerCalls.Load(); calls != 0 {
		t.Fatalf("expected no provider calls, got %d", calls)
	}
}

func TestHandleProviderFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stack := newTestStack(t, testWebhookSecret, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"code":"SERVER_ERROR"}}`, http.StatusInternalServerError)
	})
	if _, err := stack.database.CreateListing(ctx, "L1", "Sea view flat"); err != nil {
		t.Fatalf("create listing: %v", err)
	}

	rec := deliver(t, stack.handler, capturedBody, rzp.Sign([]byte(capturedBody), testWebhookSecret))
	if rec.Code < 500 {
		t.Fatalf("expected 5xx so the provider redelivers, got %d", rec.Code)
	}

	listing, err := stack.database.GetListing(ctx, "L1")
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}
	if listing.IsFeatured != 0 || listing.Paid != 0 {
		t.Fatalf("expected listing untouched, got %+v", listing)
	}
	count, err := stack.database.CountPaymentsByOrder(ctx, "order_A")
	if err != nil {
		t.Fatalf("count payments: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no payments, got %d", count)
	}
}

func TestHandleRejectsUnauthenticatedRequests(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		secret    string
		signature string
		status    int
		body      string
	}{
		{name: "missing signature", secret: testWebhookSecret, signature: "", status: http.StatusBadRequest, body: "Missing signature"},
		{name: "invalid signature", secret: testWebhookSecret, signature: rzp.Sign([]byte(capturedBody), "forged"), status: http.StatusBadRequest, body: "Invalid signature"},
		{name: "no secret", secret: "", signature: rzp.Sign([]byte(capturedBody), testWebhookSecret), status: http.StatusInternalServerError, body: "No webhook secret configured"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stack := newTestStack(t, tc.secret, orderResponder(49900, "listing_L1_featured_1"))
			rec := deliver(t, stack.handler, capturedBody, tc.signature)
			if rec.Code != tc.status || rec.Body.String() != tc.body {
				t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
			}
			if calls := stack.providerCalls.Load(); calls != 0 {
				t.Fatalf("expected no provider calls, got %d", calls)
			}
		})
	}
}

func TestHandleAcknowledgesUnresolvableDeliveries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		body     string
		provider http.HandlerFunc
		want     string
	}{
		{
			name:     "no order id",
			body:     `{"event":"payment.authorized","payload":{"payment":{"entity":{"id":"pay_9"}}}}`,
			provider: orderResponder(100, "listing_L1_featured_1"),
			want:     "No order id",
		},
		{
			name: "unknown order",
			body: capturedBody,
			provider: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"The id provided does not exist"}}`))
			},
			want: "Order not found",
		},
		{
			name:     "receipt without listing",
			body:     capturedBody,
			provider: orderResponder(100, "garbage"),
			want:     "No listing in receipt",
		},
		{
			name:     "malformed payload",
			body:     `{"event":"payment.captured",`,
			provider: orderResponder(100, "listing_L1_featured_1"),
			want:     "ok",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stack := newTestStack(t, testWebhookSecret, tc.provider)
			rec := deliver(t, stack.handler, tc.body, rzp.Sign([]byte(tc.body), testWebhookSecret))
			if rec.Code != http.StatusOK || rec.Body.String() != tc.want {
				t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleUnknownListingRecordsPaymentAndAcknowledges(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stack := newTestStack(t, testWebhookSecret, orderResponder(49900, "listing_ghost_featured_1"))

	rec := deliver(t, stack.handler, capturedBody, rzp.Sign([]byte(capturedBody), testWebhookSecret))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected partial reconciliation to be acknowledged, got %d", rec.Code)
	}

	payments, err := stack.database.ListPaymentsByListing(ctx, "ghost")
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("expected payment recorded for missing listing, got %d", len(payments))
	}
}
