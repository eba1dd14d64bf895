package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/fr0stylo/listingpay/internal/razorpay"
)

const defaultWebhookPath = "/api/razorpay/webhook"

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	interval, err := time.ParseDuration(cfg.Interval)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid interval duration:", err)
		os.Exit(1)
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(10 * time.Second)

	for sent := 0; sent < cfg.Count; sent++ {
		if sent > 0 {
			time.Sleep(interval)
		}
		if err := sendWebhook(client, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "webhook error:", err)
		}
	}
}

func loadConfig(path string) (config, error) {
	if strings.TrimSpace(path) == "" {
		return config{}, fmt.Errorf("config path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("path", defaultWebhookPath)
	v.SetDefault("event", "payment.captured")
	v.SetDefault("amount", "499")
	v.SetDefault("currency", "INR")
	v.SetDefault("count", 1)
	v.SetDefault("interval", "1s")
	if err := v.ReadInConfig(); err != nil {
		return config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Path = strings.TrimSpace(cfg.Path)
	cfg.Secret = strings.TrimSpace(cfg.Secret)
	cfg.Event = strings.TrimSpace(cfg.Event)
	cfg.OrderID = strings.TrimSpace(cfg.OrderID)
	cfg.PaymentID = strings.TrimSpace(cfg.PaymentID)
	cfg.Amount = strings.TrimSpace(cfg.Amount)
	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	cfg.Interval = strings.TrimSpace(cfg.Interval)

	if cfg.BaseURL == "" || cfg.Secret == "" || cfg.OrderID == "" {
		return config{}, fmt.Errorf("config must include base_url, secret, order_id")
	}
	if cfg.Count <= 0 {
		return config{}, fmt.Errorf("count must be positive")
	}
	if _, err := minorUnits(cfg.Amount); err != nil {
		return config{}, err
	}

	return cfg, nil
}

// minorUnits converts a major-unit amount such as "499.00" to paise.
func minorUnits(amount string) (int64, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if value.Sign() <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	minor := value.Shift(2)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("amount %q has more than two decimal places", amount)
	}
	return minor.IntPart(), nil
}

func buildEvent(cfg config, paymentID string) ([]byte, error) {
	amount, err := minorUnits(cfg.Amount)
	if err != nil {
		return nil, err
	}
	paymentEntity := map[string]any{
		"id":       paymentID,
		"entity":   "payment",
		"order_id": cfg.OrderID,
		"amount":   amount,
		"currency": cfg.Currency,
		"status":   "captured",
	}
	payload := map[string]any{
		"payment": map[string]any{"entity": paymentEntity},
	}
	if cfg.Event == "order.paid" {
		payload["order"] = map[string]any{"entity": map[string]any{
			"id":     cfg.OrderID,
			"entity": "order",
			"amount": amount,
			"status": "paid",
		}}
	}
	return json.Marshal(map[string]any{
		"entity":     "event",
		"event":      cfg.Event,
		"contains":   []string{"payment"},
		"payload":    payload,
		"created_at": time.Now().Unix(),
	})
}

func sendWebhook(client *resty.Client, cfg config) error {
	paymentID := cfg.PaymentID
	if paymentID == "" {
		paymentID = "pay_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
	}

	body, err := buildEvent(cfg, paymentID)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	eventID := "evt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader(razorpay.SignatureHeader, razorpay.Sign(body, cfg.Secret)).
		SetHeader(razorpay.EventIDHeader, eventID).
		SetBody(body).
		Post(cfg.Path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() >= 300 {
		return fmt.Errorf("webhook failed: %d %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	fmt.Printf("Webhook status: %s (event %s, payment %s)\n", resp.Status(), eventID, paymentID)
	return nil
}
