// Package datagov fetches MGNREGS progress records from the data.gov.in
// open data API.
package datagov

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/axomdata/nrega-dashboard/internal/config"
	"github.com/axomdata/nrega-dashboard/internal/domain"
	"github.com/axomdata/nrega-dashboard/internal/observability"
)

const stateFilterValue = "ASSAM"

// districtAttemptLimit caps single-district queries; a district has at most a
// handful of recent records per filter combination.
const districtAttemptLimit = 10

// UpstreamError is a transport- or HTTP-level upstream failure. The bulk
// endpoint surfaces it to callers as a bad-gateway condition; the
// single-district path absorbs it.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Upstream error %d: %s", e.Status, e.Body)
}

// Client queries the open data resource endpoint. Safe for concurrent use.
type Client struct {
	apiKey     string
	resourceID string
	baseURL    string
	bulkLimit  int
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a data.gov.in client from service configuration.
func NewClient(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey:     cfg.DataGovAPIKey,
		resourceID: cfg.DataGovResourceID,
		baseURL:    cfg.DataGovBaseURL,
		bulkLimit:  cfg.BulkLimit,
		httpClient: &http.Client{Timeout: cfg.UpstreamTimeout},
		logger:     logger,
		metrics:    metrics,
	}
}

// apiResponse is the upstream envelope.
type apiResponse struct {
	Records []domain.RawRecord `json:"records"`
	Total   int                `json:"total"`
}

// FetchDistrict returns the best-available record for a district, at most
// one. It tries query URLs in decreasing specificity, state plus district
// filter first and district filter alone second, and takes the first attempt
// that returns any records. Every failure (HTTP error, network error, empty
// response) is logged and absorbed; exhausting all attempts yields an empty
// slice, which means "no data for this query", not an error. Month and
// financial-year filters are advisory: they narrow the result only when they
// do not eliminate it entirely.
func (c *Client) FetchDistrict(ctx context.Context, districtCode, monthName, finYear string) []domain.DistrictRecord {
	attempts := []string{
		c.resourceURL(districtAttemptLimit, stateFilterValue, districtCode),
		c.resourceURL(districtAttemptLimit, "", districtCode),
	}

	for i, attemptURL := range attempts {
		records, err := c.query(ctx, attemptURL, "district")
		if err != nil {
			c.logger.Warn("district fetch attempt failed",
				"attempt", i+1,
				"district_code", districtCode,
				"error", err,
			)
			c.metrics.UpstreamAttempts.WithLabelValues("district", "error").Inc()
			continue
		}
		if len(records) == 0 {
			c.metrics.UpstreamAttempts.WithLabelValues("district", "empty").Inc()
			continue
		}
		c.metrics.UpstreamAttempts.WithLabelValues("district", "success").Inc()

		filtered := c.applyFilters(records, monthName, finYear)
		c.metrics.RecordsReturned.Observe(float64(len(filtered)))
		return filtered[:1]
	}

	return []domain.DistrictRecord{}
}

// FetchState returns all records for the state, filtered with the same
// advisory month and financial-year rules. Unlike FetchDistrict, upstream
// transport or HTTP failures surface as errors (HTTP failures as
// *UpstreamError) so the bulk endpoint can report a bad gateway.
func (c *Client) FetchState(ctx context.Context, monthName, finYear string) ([]domain.DistrictRecord, error) {
	records, err := c.query(ctx, c.resourceURL(c.bulkLimit, stateFilterValue, ""), "state")
	if err != nil {
		c.metrics.UpstreamAttempts.WithLabelValues("state", "error").Inc()
		return nil, err
	}
	c.metrics.UpstreamAttempts.WithLabelValues("state", "success").Inc()

	filtered := c.applyFilters(records, monthName, finYear)
	c.metrics.RecordsReturned.Observe(float64(len(filtered)))
	return filtered, nil
}

func (c *Client) applyFilters(records []domain.DistrictRecord, monthName, finYear string) []domain.DistrictRecord {
	out := domain.FilterRecords(records, monthName, finYear)
	if out.MonthFallback {
		c.metrics.FilterFallbacks.WithLabelValues("month").Inc()
	}
	if out.YearFallback {
		c.metrics.FilterFallbacks.WithLabelValues("fin_year").Inc()
	}
	return out.Records
}

// resourceURL builds a resource query URL. Empty stateName or districtCode
// omit the corresponding filter.
func (c *Client) resourceURL(limit int, stateName, districtCode string) string {
	params := url.Values{
		"api-key": {c.apiKey},
		"format":  {"json"},
		"limit":   {strconv.Itoa(limit)},
	}
	if stateName != "" {
		params.Set("filters[state_name]", stateName)
	}
	if districtCode != "" {
		params.Set("filters[district_code]", districtCode)
	}
	return fmt.Sprintf("%s/%s?%s", c.baseURL, c.resourceID, params.Encode())
}

func (c *Client) query(ctx context.Context, fullURL, endpoint string) ([]domain.DistrictRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	records := make([]domain.DistrictRecord, 0, len(envelope.Records))
	for _, raw := range envelope.Records {
		records = append(records, domain.NormalizeRecord(raw))
	}
	return records, nil
}
