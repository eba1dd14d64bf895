package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/fr0stylo/listingpay/internal/config"
	"github.com/fr0stylo/listingpay/internal/db"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.LoadForTool()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	dbPath := flag.String("db", cfg.Database.Path, "database path without .sqlite suffix")
	dryRun := flag.Bool("dry-run", false, "list listings that would be re-featured without writing")
	flag.Parse()

	database, err := db.New(strings.TrimSpace(*dbPath))
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() {
		_ = database.Close()
	}()

	now := time.Now()
	if *dryRun {
		pending, err := database.ListPaymentsNeedingListingRepair(ctx, now.UTC().UnixMilli())
		if err != nil {
			log.Fatalf("list payments needing repair: %v", err)
		}
		for _, payment := range pending {
			log.Printf("would feature listing=%s until=%s order=%s payment=%s",
				payment.ListingID,
				time.UnixMilli(payment.FeaturedUntilMs).UTC().Format(time.RFC3339),
				payment.ProviderOrderID,
				payment.ProviderPaymentID,
			)
		}
		log.Printf("dry run complete: %d listings need repair", len(pending))
		return
	}

	stats, err := database.RepairFeaturedListings(ctx, now)
	if err != nil {
		log.Fatalf("repair featured listings: %v", err)
	}
	log.Printf("repair complete: scanned=%d healed=%d orphan_payments=%d", stats.Scanned, stats.ListingsHealed, stats.OrphanPayments)
}
