package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/axomdata/nrega-dashboard/internal/domain"
	"github.com/axomdata/nrega-dashboard/internal/observability"
)

// IPAPIClient implements domain.IPLocator using the ipapi.co JSON endpoint,
// which geolocates the caller's network address. It is the coarse fallback
// when browser geolocation is unavailable or denied.
type IPAPIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewIPAPI creates an ipapi.co client.
func NewIPAPI(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *IPAPIClient {
	return &IPAPIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    metrics,
	}
}

// ipapiResponse is the flat payload shape; region naming differs across
// provider versions so both variants are read.
type ipapiResponse struct {
	City       string `json:"city"`
	Region     string `json:"region"`
	RegionName string `json:"region_name"`
}

// Locate resolves the caller's network address to coarse address components.
// IP geolocation carries no district-level signal, so the district field is
// left empty and resolution relies on the city alias table.
func (c *IPAPIClient) Locate(ctx context.Context) (domain.Address, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/json/", nil)
	if err != nil {
		return domain.Address{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("ipapi", "error").Inc()
		return domain.Address{}, fmt.Errorf("ip geolocation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.GeocodeRequests.WithLabelValues("ipapi", "error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.Address{}, fmt.Errorf("ipapi error: status %d: %s", resp.StatusCode, body)
	}

	var ir ipapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("ipapi", "error").Inc()
		return domain.Address{}, fmt.Errorf("decode response: %w", err)
	}

	addr := domain.Address{
		State: firstNonEmpty(ir.Region, ir.RegionName),
		City:  ir.City,
	}

	if addr.Empty() {
		c.metrics.GeocodeRequests.WithLabelValues("ipapi", "empty").Inc()
	} else {
		c.metrics.GeocodeRequests.WithLabelValues("ipapi", "success").Inc()
	}
	return addr, nil
}
