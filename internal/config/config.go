package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultPort            = 8080
	defaultDBPath          = "data/listingpay"
	defaultRazorpayBaseURL = "https://api.razorpay.com"
	defaultFeaturedDays    = 7
	defaultCurrency        = "INR"
	defaultProviderTimeout = 10000
	defaultStoreTimeout    = 5000
	minTimeoutMS           = 100
	maxTimeoutMS           = 60000
)

type Config struct {
	Environment   string
	Server        ServerConfig
	Database      DatabaseConfig
	Razorpay      RazorpayConfig
	Featuring     FeaturingConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Path      string
	LogTiming bool
	TimeoutMS int
}

type RazorpayConfig struct {
	WebhookSecret string
	KeyID         string
	KeySecret     string
	APIBaseURL    string
	TimeoutMS     int
}

type FeaturingConfig struct {
	Days     int
	Currency string
}

type ObservabilityConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	OTLPTraceHeaders  map[string]string
	OTLPMetricHeaders map[string]string
	ServiceName       string
	ServiceVer        string
	SamplingRatio     float64
	MetricsConsole    bool
}

// Load loads server configuration from the environment. Missing Razorpay
// secrets are not an error here: the webhook endpoint reports them per request.
func Load() (Config, error) {
	return load()
}

// LoadForTool loads config for CLI tools.
func LoadForTool() (Config, error) {
	return load()
}

func load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("listingpay_env", "")
	v.SetDefault("app_env", "")
	v.SetDefault("go_env", "")
	v.SetDefault("listingpay_port", defaultPort)
	v.SetDefault("listingpay_db_path", defaultDBPath)
	v.SetDefault("listingpay_db_timing", false)
	v.SetDefault("listingpay_store_timeout_ms", defaultStoreTimeout)
	v.SetDefault("razorpay_webhook_secret", "")
	v.SetDefault("razorpay_key_id", "")
	v.SetDefault("razorpay_key_secret", "")
	v.SetDefault("razorpay_api_base_url", defaultRazorpayBaseURL)
	v.SetDefault("razorpay_timeout_ms", defaultProviderTimeout)
	v.SetDefault("featured_days", defaultFeaturedDays)
	v.SetDefault("listingpay_currency", defaultCurrency)
	v.SetDefault("listingpay_otel_enabled", false)
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_exporter_otlp_traces_headers", "")
	v.SetDefault("otel_exporter_otlp_metrics_headers", "")
	v.SetDefault("otel_service_name", "")
	v.SetDefault("listingpay_version", "dev")
	v.SetDefault("listingpay_otel_sampling_ratio", 1.0)
	v.SetDefault("listingpay_otel_metrics_console", false)

	port := v.GetInt("listingpay_port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid LISTINGPAY_PORT: %d", port)
	}

	featuredDays := v.GetInt("featured_days")
	if featuredDays <= 0 {
		featuredDays = defaultFeaturedDays
	}

	keySecret := strings.TrimSpace(v.GetString("razorpay_key_secret"))
	webhookSecret := strings.TrimSpace(v.GetString("razorpay_webhook_secret"))
	if webhookSecret == "" {
		webhookSecret = keySecret
	}

	baseURL := strings.TrimRight(strings.TrimSpace(v.GetString("razorpay_api_base_url")), "/")
	if baseURL == "" {
		baseURL = defaultRazorpayBaseURL
	}

	currency := strings.ToUpper(strings.TrimSpace(v.GetString("listingpay_currency")))
	if currency == "" {
		currency = defaultCurrency
	}

	dbPath := strings.TrimSpace(v.GetString("listingpay_db_path"))
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	serviceName := strings.TrimSpace(v.GetString("otel_service_name"))
	if serviceName == "" {
		serviceName = "listingpay"
	}
	serviceVersion := strings.TrimSpace(v.GetString("listingpay_version"))
	if serviceVersion == "" {
		serviceVersion = "dev"
	}

	samplingRatio := v.GetFloat64("listingpay_otel_sampling_ratio")
	if samplingRatio < 0 {
		samplingRatio = 0
	}
	if samplingRatio > 1 {
		samplingRatio = 1
	}

	otlpEndpoint := strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint"))
	commonHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_headers"))
	metricsConsole := v.GetBool("listingpay_otel_metrics_console")

	return Config{
		Environment: resolveEnvironment(v),
		Server:      ServerConfig{Port: port},
		Database: DatabaseConfig{
			Path:      dbPath,
			LogTiming: v.GetBool("listingpay_db_timing"),
			TimeoutMS: clampTimeout(v.GetInt("listingpay_store_timeout_ms"), defaultStoreTimeout),
		},
		Razorpay: RazorpayConfig{
			WebhookSecret: webhookSecret,
			KeyID:         strings.TrimSpace(v.GetString("razorpay_key_id")),
			KeySecret:     keySecret,
			APIBaseURL:    baseURL,
			TimeoutMS:     clampTimeout(v.GetInt("razorpay_timeout_ms"), defaultProviderTimeout),
		},
		Featuring: FeaturingConfig{
			Days:     featuredDays,
			Currency: currency,
		},
		Observability: ObservabilityConfig{
			Enabled:           v.GetBool("listingpay_otel_enabled") || otlpEndpoint != "" || metricsConsole,
			OTLPEndpoint:      otlpEndpoint,
			OTLPTraceHeaders:  mergeHeaderMaps(commonHeaders, parseOTLPHeaders(v.GetString("otel_exporter_otlp_traces_headers"))),
			OTLPMetricHeaders: mergeHeaderMaps(commonHeaders, parseOTLPHeaders(v.GetString("otel_exporter_otlp_metrics_headers"))),
			ServiceName:       serviceName,
			ServiceVer:        serviceVersion,
			SamplingRatio:     samplingRatio,
			MetricsConsole:    metricsConsole,
		},
	}, nil
}

func clampTimeout(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	if value < minTimeoutMS {
		return minTimeoutMS
	}
	if value > maxTimeoutMS {
		return maxTimeoutMS
	}
	return value
}

func parseOTLPHeaders(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeHeaderMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func resolveEnvironment(v *viper.Viper) string {
	for _, key := range []string{"listingpay_env", "app_env", "go_env"} {
		value := strings.TrimSpace(v.GetString(key))
		if value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}

func (c Config) IsLocalDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

// FeaturedDuration is how long a paid listing stays featured.
func (c Config) FeaturedDuration() time.Duration {
	return time.Duration(c.Featuring.Days) * 24 * time.Hour
}

// ProviderTimeout bounds one Razorpay order lookup.
func (c Config) ProviderTimeout() time.Duration {
	return time.Duration(c.Razorpay.TimeoutMS) * time.Millisecond
}

// StoreTimeout bounds one persistent-store write.
func (c Config) StoreTimeout() time.Duration {
	return time.Duration(c.Database.TimeoutMS) * time.Millisecond
}

// WebhookConfigured reports whether incoming webhooks can be authenticated.
func (c Config) WebhookConfigured() bool {
	return c.Razorpay.WebhookSecret != ""
}

// ProviderConfigured reports whether Razorpay API credentials are present.
func (c Config) ProviderConfigured() bool {
	return c.Razorpay.KeyID != "" && c.Razorpay.KeySecret != ""
}
