package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Upstream open data API.
	DataGovAPIKey     string
	DataGovResourceID string
	DataGovBaseURL    string
	UpstreamTimeout   time.Duration
	BulkLimit         int

	// Geocoding providers.
	NominatimBaseURL string
	IPAPIBaseURL     string
	GeocodeTimeout   time.Duration

	// Trend window: number of trailing periods fetched for the trend view.
	TrendWindow int

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables, applying defaults
// where unset. The data.gov.in API key and resource ID have no defaults and
// are required.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	upstreamTimeout, err := parseDuration("UPSTREAM_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	geocodeTimeout, err := parseDuration("GEOCODE_TIMEOUT", "8s")
	if err != nil {
		return nil, err
	}
	bulkLimit, err := parseInt("BULK_LIMIT", 5000)
	if err != nil {
		return nil, err
	}
	trendWindow, err := parseInt("TREND_WINDOW", 6)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		DataGovAPIKey:     os.Getenv("DATA_GOV_API_KEY"),
		DataGovResourceID: os.Getenv("DATA_GOV_RESOURCE_ID"),
		DataGovBaseURL:    envOrDefault("DATA_GOV_BASE_URL", "https://api.data.gov.in/resource"),
		UpstreamTimeout:   upstreamTimeout,
		BulkLimit:         bulkLimit,

		NominatimBaseURL: envOrDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		IPAPIBaseURL:     envOrDefault("IPAPI_BASE_URL", "https://ipapi.co"),
		GeocodeTimeout:   geocodeTimeout,

		TrendWindow: trendWindow,

		CORSAllowedOrigins: splitList(envOrDefault("CORS_ALLOWED_ORIGINS", "*")),
	}

	if cfg.DataGovAPIKey == "" {
		return nil, errors.New("DATA_GOV_API_KEY is required")
	}
	if cfg.DataGovResourceID == "" {
		return nil, errors.New("DATA_GOV_RESOURCE_ID is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
