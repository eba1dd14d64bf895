package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fr0stylo/listingpay/internal/adapters/sqlite"
	"github.com/fr0stylo/listingpay/internal/app/services"
	"github.com/fr0stylo/listingpay/internal/config"
	"github.com/fr0stylo/listingpay/internal/db"
	"github.com/fr0stylo/listingpay/internal/observability"
	"github.com/fr0stylo/listingpay/internal/razorpay"
	"github.com/fr0stylo/listingpay/internal/server"
	"github.com/fr0stylo/listingpay/internal/server/routes"
)

func Run() error {
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	log := slog.New(observability.WrapSlogHandler(baseHandler))
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if !cfg.WebhookConfigured() {
		slog.Warn("RAZORPAY_WEBHOOK_SECRET and RAZORPAY_KEY_SECRET not set, webhooks will be rejected")
	}
	if !cfg.ProviderConfigured() {
		slog.Warn("RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET not set, paid orders cannot be resolved")
	}

	shutdownTelemetry, err := observability.SetupOpenTelemetry(context.Background(), log, observability.OpenTelemetryConfig{
		Enabled:           cfg.Observability.Enabled,
		OTLPEndpoint:      cfg.Observability.OTLPEndpoint,
		OTLPTraceHeaders:  cfg.Observability.OTLPTraceHeaders,
		OTLPMetricHeaders: cfg.Observability.OTLPMetricHeaders,
		ServiceName:       cfg.Observability.ServiceName,
		ServiceVer:        cfg.Observability.ServiceVer,
		SamplingRatio:     cfg.Observability.SamplingRatio,
		MetricsConsole:    cfg.Observability.MetricsConsole,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			slog.Error("Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	if cfg.Database.LogTiming {
		go logDBLatencyStats(log, database)
	}

	orders := razorpay.NewOrderClient(razorpay.OrderClientConfig{
		BaseURL:   cfg.Razorpay.APIBaseURL,
		KeyID:     cfg.Razorpay.KeyID,
		KeySecret: cfg.Razorpay.KeySecret,
		Timeout:   cfg.ProviderTimeout(),
		Transport: observability.InstrumentedTransport(nil),
	})
	engine := services.NewReconciliationEngine(sqlite.NewSharedReconciliationStoreFactory(database), services.ReconciliationConfig{
		FeaturedDuration: cfg.FeaturedDuration(),
		Currency:         cfg.Featuring.Currency,
		StoreTimeout:     cfg.StoreTimeout(),
	})
	webhooks := services.NewWebhookService(services.WebhookConfig{
		Secret:          cfg.Razorpay.WebhookSecret,
		ProviderTimeout: cfg.ProviderTimeout(),
	}, orders, engine)

	srv := server.New(log, cfg.Observability.ServiceName)
	srv.RegisterRouter(routes.NewHealthRoutes(database))
	srv.RegisterRouter(routes.NewWebhookRoutes(webhooks))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("Starting server", "port", cfg.Server.Port, "featured_days", cfg.Featuring.Days)
	return srv.Start(addr)
}

func main() {
	if err := Run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func logDBLatencyStats(log *slog.Logger, database *db.Database) {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		stats := database.QueryLatencyStats()
		if len(stats) == 0 {
			continue
		}
		limit := 5
		if len(stats) < limit {
			limit = len(stats)
		}
		for index := 0; index < limit; index++ {
			entry := stats[index]
			log.Info("db_query_latency",
				"query", entry.Name,
				"count", entry.Count,
				"p50_ms", entry.P50.Milliseconds(),
				"p95_ms", entry.P95.Milliseconds(),
				"max_ms", entry.Max.Milliseconds(),
			)
		}
	}
}
