package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/fr0stylo/listingpay/internal/db/queries"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "testdb"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestMarkListingFeaturedNeverMovesWindowBackwards(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openTestDB(t)
	if _, err := database.CreateListing(ctx, "L1", "Corner flat"); err != nil {
		t.Fatalf("create listing: %v", err)
	}

	later := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	earlier := later.Add(-48 * time.Hour)

	found, err := database.MarkListingFeatured(ctx, "L1", later)
	if err != nil || !found {
		t.Fatalf("mark featured: found=%v err=%v", found, err)
	}
	if _, err := database.MarkListingFeatured(ctx, "L1", earlier); err != nil {
		t.Fatalf("mark featured again: %v", err)
	}

	listing, err := database.GetListing(ctx, "L1")
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}
	if listing.IsFeatured != 1 || listing.Paid != 1 {
		t.Fatalf("expected featured and paid listing, got %+v", listing)
	}
	if !listing.FeaturedUntilMs.Valid || listing.FeaturedUntilMs.Int64 != later.UnixMilli() {
		t.Fatalf("featured_until regressed: got=%v want=%d", listing.FeaturedUntilMs, later.UnixMilli())
	}
}

func TestMarkListingFeaturedReportsMissingListing(t *testing.T) {
	t.Parallel()

	database := openTestDB(t)
	found, err := database.MarkListingFeatured(context.Background(), "missing", time.Now())
	if err != nil {
		t.Fatalf("mark featured: %v", err)
	}
	if found {
		t.Fatal("expected missing listing to report not found")
	}
}

func TestInsertPaymentIfAbsentIsUniquePerProviderRef(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openTestDB(t)

	params := queries.InsertPaymentIfAbsentParams{
		ID:                "p-1",
		ListingID:         "L1",
		ProviderOrderID:   "order_1",
		ProviderPaymentID: "pay_1",
		AmountMinor:       49900,
		Currency:          "INR",
		Status:            "captured",
		EventKind:         "payment.captured",
		FeaturedUntilMs:   1700000000000,
		CreatedAtMs:       1699395200000,
	}
	created, err := database.InsertPaymentIfAbsent(ctx, params)
	if err != nil || !created {
		t.Fatalf("first insert: created=%v err=%v", created, err)
	}

	params.ID = "p-2"
	params.FeaturedUntilMs = 1800000000000
	created, err = database.InsertPaymentIfAbsent(ctx, params)
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if created {
		t.Fatal("expected duplicate provider ref to be ignored")
	}

	count, err := database.CountPaymentsByOrder(ctx, "order_1")
	if err != nil {
		t.Fatalf("count payments: %v", err)
	}
	if count != 1 {
		t.Fatalf("unexpected payment count: got=%d want=1", count)
	}

	stored, err := database.GetPaymentByProviderRef(ctx, "order_1", "pay_1")
	if err != nil {
		t.Fatalf("get payment: %v", err)
	}
	if stored.ID != "p-1" || stored.FeaturedUntilMs != 1700000000000 {
		t.Fatalf("expected first payment to win, got %+v", stored)
	}

	_, err = database.GetPaymentByProviderRef(ctx, "order_1", "pay_other")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows for unknown ref, got %v", err)
	}
}

func TestRepairFeaturedListingsHealsListingsBehindTheirPayments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openTestDB(t)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	until := now.Add(7 * 24 * time.Hour)

	for _, id := range []string{"L1", "L2"} {
		if _, err := database.CreateListing(ctx, id, id); err != nil {
			t.Fatalf("create listing %s: %v", id, err)
		}
	}
	if _, err := database.MarkListingFeatured(ctx, "L2", until); err != nil {
		t.Fatalf("feature L2: %v", err)
	}

	payments := []queries.InsertPaymentIfAbsentParams{
		{ID: "p-1", ListingID: "L1", ProviderOrderID: "order_1", ProviderPaymentID: "pay_1", AmountMinor: 49900, Currency: "INR", Status: "captured", EventKind: "payment.captured", FeaturedUntilMs: until.UnixMilli(), CreatedAtMs: now.UnixMilli()},
		{ID: "p-2", ListingID: "L2", ProviderOrderID: "order_2", ProviderPaymentID: "pay_2", AmountMinor: 49900, Currency: "INR", Status: "captured", EventKind: "order.paid", FeaturedUntilMs: until.UnixMilli(), CreatedAtMs: now.UnixMilli()},
		{ID: "p-3", ListingID: "gone", ProviderOrderID: "order_3", ProviderPaymentID: "pay_3", AmountMinor: 49900, Currency: "INR", Status: "captured", EventKind: "payment.captured", FeaturedUntilMs: until.UnixMilli(), CreatedAtMs: now.UnixMilli()},
	}
	for _, params := range payments {
		if _, err := database.InsertPaymentIfAbsent(ctx, params); err != nil {
			t.Fatalf("insert payment %s: %v", params.ID, err)
		}
	}

	stats, err := database.RepairFeaturedListings(ctx, now)
	if err != nil {
		t.Fatalf("repair: %v", err)
	}
	if stats.Scanned != 1 || stats.ListingsHealed != 1 || stats.OrphanPayments != 1 {
		t.Fatalf("unexpected repair stats: %+v", stats)
	}

	listing, err := database.GetListing(ctx, "L1")
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}
	if listing.IsFeatured != 1 || listing.FeaturedUntilMs.Int64 != until.UnixMilli() {
		t.Fatalf("expected L1 healed, got %+v", listing)
	}

	again, err := database.RepairFeaturedListings(ctx, now)
	if err != nil {
		t.Fatalf("second repair: %v", err)
	}
	if again.Scanned != 0 {
		t.Fatalf("expected repair to be idempotent, got %+v", again)
	}
}

func TestQueryNameParsesSQLCHeader(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"-- name: GetListing :one\nSELECT 1": "GetListing",
		"SELECT 1":                           "unknown",
		"-- name:":                           "unknown",
	}
	for query, want := range cases {
		if got := queryName(query); got != want {
			t.Fatalf("queryName(%q): got=%q want=%q", query, got, want)
		}
	}
}
