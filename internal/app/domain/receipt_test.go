package domain

import (
	"testing"
	"time"
)

func TestDecodeReceipt(t *testing.T) {
	cases := []struct {
		name    string
		receipt string
		want    Receipt
		ok      bool
	}{
		{
			name:    "full receipt",
			receipt: "listing_abc123_featured_1700000000",
			want:    Receipt{ListingID: "abc123", PurchaseType: "featured", IssuedAtToken: "1700000000"},
			ok:      true,
		},
		{name: "listing only", receipt: "listing_abc123", want: Receipt{ListingID: "abc123"}, ok: true},
		{name: "single token", receipt: "garbage"},
		{name: "empty listing id", receipt: "listing_"},
		{name: "empty", receipt: ""},
		{name: "prefix not checked", receipt: "order_xyz_featured", want: Receipt{ListingID: "xyz", PurchaseType: "featured"}, ok: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DecodeReceipt(tc.receipt)
			if ok != tc.ok {
				t.Fatalf("DecodeReceipt(%q) ok = %v, want %v", tc.receipt, ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("DecodeReceipt(%q) = %+v, want %+v", tc.receipt, got, tc.want)
			}
		})
	}
}

func TestEncodeReceiptRoundTrip(t *testing.T) {
	issuedAt := time.Unix(1700000000, 0)
	receipt := EncodeReceipt("abc123", "featured", issuedAt)
	if receipt != "listing_abc123_featured_1700000000" {
		t.Fatalf("unexpected receipt %q", receipt)
	}

	decoded, ok := DecodeReceipt(receipt)
	if !ok {
		t.Fatalf("expected receipt %q to decode", receipt)
	}
	if decoded.ListingID != "abc123" || decoded.PurchaseType != "featured" || decoded.IssuedAtToken != "1700000000" {
		t.Fatalf("unexpected decoded receipt %+v", decoded)
	}
}

func TestEventKindTriggersMutation(t *testing.T) {
	for _, raw := range []string{"payment.captured", "payment.authorized", "order.paid"} {
		if !ParseEventKind(raw).TriggersMutation() {
			t.Fatalf("expected %s to trigger mutation", raw)
		}
	}
	for _, raw := range []string{"refund.created", "payment.failed", ""} {
		if ParseEventKind(raw).TriggersMutation() {
			t.Fatalf("expected %q to be ignored", raw)
		}
	}
}
