// Package geocode provides the external geolocation lookups behind district
// auto-detection: reverse geocoding by coordinates (Nominatim) and coarse
// network-address lookup (ipapi.co).
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/axomdata/nrega-dashboard/internal/domain"
	"github.com/axomdata/nrega-dashboard/internal/observability"
)

// NominatimClient implements domain.ReverseGeocoder using the OpenStreetMap
// Nominatim reverse geocoding API.
type NominatimClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewNominatim creates a Nominatim reverse-geocoding client.
func NewNominatim(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *NominatimClient {
	return &NominatimClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    metrics,
	}
}

// nominatimResponse is the subset of the reverse-geocoding payload the
// resolver reads. Which address sub-fields are present varies by location.
type nominatimResponse struct {
	Address struct {
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
		County        string `json:"county"`
		StateDistrict string `json:"state_district"`
		State         string `json:"state"`
	} `json:"address"`
}

// Reverse converts coordinates to address components. The city field takes
// the most specific locality name available; the district field the most
// district-like one.
func (c *NominatimClient) Reverse(ctx context.Context, lat, lng float64) (domain.Address, error) {
	params := url.Values{
		"lat":            {fmt.Sprintf("%.6f", lat)},
		"lon":            {fmt.Sprintf("%.6f", lng)},
		"format":         {"json"},
		"addressdetails": {"1"},
	}
	fullURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.Address{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("nominatim", "error").Inc()
		return domain.Address{}, fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.GeocodeRequests.WithLabelValues("nominatim", "error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.Address{}, fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var nr nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("nominatim", "error").Inc()
		return domain.Address{}, fmt.Errorf("decode response: %w", err)
	}

	addr := domain.Address{
		State:    nr.Address.State,
		City:     firstNonEmpty(nr.Address.City, nr.Address.Town, nr.Address.Village, nr.Address.County),
		District: firstNonEmpty(nr.Address.StateDistrict, nr.Address.County, nr.Address.City),
	}

	if addr.Empty() {
		c.metrics.GeocodeRequests.WithLabelValues("nominatim", "empty").Inc()
	} else {
		c.metrics.GeocodeRequests.WithLabelValues("nominatim", "success").Inc()
	}
	return addr, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
