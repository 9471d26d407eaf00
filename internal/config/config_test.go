package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATA_GOV_API_KEY", "test-key")
	t.Setenv("DATA_GOV_RESOURCE_ID", "test-resource")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	assert.Equal(t, "test-key", cfg.DataGovAPIKey)
	assert.Equal(t, "test-resource", cfg.DataGovResourceID)
	assert.Equal(t, "https://api.data.gov.in/resource", cfg.DataGovBaseURL)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 5000, cfg.BulkLimit)

	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.NominatimBaseURL)
	assert.Equal(t, "https://ipapi.co", cfg.IPAPIBaseURL)
	assert.Equal(t, 8*time.Second, cfg.GeocodeTimeout)

	assert.Equal(t, 6, cfg.TrendWindow)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoad_CustomEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("DATA_GOV_BASE_URL", "http://localhost:8081/resource")
	t.Setenv("UPSTREAM_TIMEOUT", "500ms")
	t.Setenv("BULK_LIMIT", "100")
	t.Setenv("TREND_WINDOW", "12")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8081/resource", cfg.DataGovBaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.UpstreamTimeout)
	assert.Equal(t, 100, cfg.BulkLimit)
	assert.Equal(t, 12, cfg.TrendWindow)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_RequiredKeys(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		t.Setenv("DATA_GOV_API_KEY", "")
		t.Setenv("DATA_GOV_RESOURCE_ID", "test-resource")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATA_GOV_API_KEY")
	})

	t.Run("missing resource id", func(t *testing.T) {
		t.Setenv("DATA_GOV_API_KEY", "test-key")
		t.Setenv("DATA_GOV_RESOURCE_ID", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATA_GOV_RESOURCE_ID")
	})
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad duration", "UPSTREAM_TIMEOUT", "soon"},
		{"negative duration", "SHUTDOWN_TIMEOUT", "-5s"},
		{"bad int", "BULK_LIMIT", "many"},
		{"zero int", "TREND_WINDOW", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
