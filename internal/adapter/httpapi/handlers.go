package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/axomdata/nrega-dashboard/internal/domain"
	"github.com/axomdata/nrega-dashboard/internal/observability"
)

// districtCodeRe validates the 4-digit district code format. Existence in
// the catalog is deliberately not checked: whether a code has data is an
// upstream concern.
var districtCodeRe = regexp.MustCompile(`^\d{4}$`)

// UpstreamFetcher is the upstream fetch strategy consumed by the handlers.
type UpstreamFetcher interface {
	// FetchDistrict never fails: all upstream failures are absorbed into an
	// empty result.
	FetchDistrict(ctx context.Context, districtCode, monthName, finYear string) []domain.DistrictRecord
	// FetchState surfaces upstream failures so the bulk endpoints can report
	// a bad gateway.
	FetchState(ctx context.Context, monthName, finYear string) ([]domain.DistrictRecord, error)
}

// Handlers carries the dependencies of the API endpoints.
type Handlers struct {
	upstream    UpstreamFetcher
	reverse     domain.ReverseGeocoder
	iplocator   domain.IPLocator
	catalog     *domain.Catalog
	aliases     domain.AliasTable
	trendWindow int
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
}

// NewHandlers wires the API endpoints to their collaborators.
func NewHandlers(
	upstream UpstreamFetcher,
	reverse domain.ReverseGeocoder,
	iplocator domain.IPLocator,
	catalog *domain.Catalog,
	aliases domain.AliasTable,
	trendWindow int,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		upstream:    upstream,
		reverse:     reverse,
		iplocator:   iplocator,
		catalog:     catalog,
		aliases:     aliases,
		trendWindow: trendWindow,
		logger:      logger,
		metrics:     metrics,
	}
}

// HandleReady reports readiness: the service is ready once it has completed
// one successful upstream fetch.
func (h *Handlers) HandleReady(w http.ResponseWriter, _ *http.Request) {
	if !h.ready.Load() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  "no successful upstream fetch yet",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// FetchData serves GET /api/fetch-data?district_code&month&year: the
// single-district query. The response is always HTTP 200 with a JSON array
// of zero or one normalized records; upstream failures are indistinguishable
// from "no data" here by design.
func (h *Handlers) FetchData(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("district_code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "district_code is required")
		return
	}
	if !districtCodeRe.MatchString(code) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("invalid district_code format: %s, expected 4 digits like 0407", code))
		return
	}

	monthName, finYear := filterParams(r)
	records := h.upstream.FetchDistrict(r.Context(), code, monthName, finYear)
	if records == nil {
		records = []domain.DistrictRecord{}
	}
	if len(records) > 0 {
		h.ready.Store(true)
	}
	writeJSON(w, http.StatusOK, records)
}

// FetchDataAll serves GET /api/fetch-data/all?month&year: the bulk
// state-wide query, trimmed to the comparison field subset. Upstream
// failures surface as HTTP 502 with the upstream status and body embedded.
func (h *Handlers) FetchDataAll(w http.ResponseWriter, r *http.Request) {
	monthName, finYear := filterParams(r)

	records, err := h.upstream.FetchState(r.Context(), monthName, finYear)
	if err != nil {
		h.logger.Error("bulk fetch failed", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	h.ready.Store(true)

	trimmed := make([]domain.TrimmedRecord, 0, len(records))
	for _, rec := range records {
		trimmed = append(trimmed, domain.TrimRecord(rec))
	}
	writeJSON(w, http.StatusOK, trimmed)
}

// TrendPoint is one period of the trailing trend series.
type TrendPoint struct {
	Period  string                `json:"period"`
	Month   int                   `json:"month"`
	FinYear string                `json:"fin_year"`
	Record  domain.DistrictRecord `json:"record"`
}

// FetchDataTrend serves GET /api/fetch-data/trend?district_code&month&year:
// the trailing trend window for one district. The per-period upstream
// fetches run concurrently and are reassembled by period index, so the
// response is ordered oldest to newest regardless of arrival order. Periods
// with no data are dropped.
func (h *Handlers) FetchDataTrend(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("district_code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "district_code is required")
		return
	}
	if !districtCodeRe.MatchString(code) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("invalid district_code format: %s, expected 4 digits like 0407", code))
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "month is required and must be 1-12")
		return
	}
	if _, ok := domain.MonthName(month); !ok {
		writeError(w, http.StatusBadRequest, "month is required and must be 1-12")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year is required and must be a financial-year base year")
		return
	}

	periods := domain.TrailingPeriods(month, year, h.trendWindow)
	results := make([]*TrendPoint, len(periods))

	g, ctx := errgroup.WithContext(r.Context())
	for i, p := range periods {
		g.Go(func() error {
			name, _ := domain.MonthName(p.Month)
			records := h.upstream.FetchDistrict(ctx, code, name, p.FinYearString())
			if len(records) > 0 {
				results[i] = &TrendPoint{
					Period:  p.Label(),
					Month:   p.Month,
					FinYear: p.FinYearString(),
					Record:  records[0],
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	points := make([]TrendPoint, 0, len(results))
	for _, pt := range results {
		if pt != nil {
			points = append(points, *pt)
		}
	}
	if len(points) > 0 {
		h.ready.Store(true)
	}
	writeJSON(w, http.StatusOK, points)
}

// FetchDataSummary serves GET /api/fetch-data/summary?month&year: the
// state-wide overview: headline totals, top districts by households worked,
// and per-district performance scores. Same 502 semantics as the bulk
// endpoint.
func (h *Handlers) FetchDataSummary(w http.ResponseWriter, r *http.Request) {
	monthName, finYear := filterParams(r)

	records, err := h.upstream.FetchState(r.Context(), monthName, finYear)
	if err != nil {
		h.logger.Error("summary fetch failed", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	h.ready.Store(true)

	writeJSON(w, http.StatusOK, domain.BuildSummary(records, monthName, finYear, 5))
}

// Districts serves GET /api/districts: the static district catalog.
func (h *Handlers) Districts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Districts())
}

// locationRequest is the POST /api/location body: either coordinates or a
// request to geolocate by network address.
type locationRequest struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	UseIP bool    `json:"useIP"`
}

// locationDistrict is the district payload of a location response. For
// out-of-region results only the name fields and the message are set.
type locationDistrict struct {
	StateCode    string `json:"state_code,omitempty"`
	StateName    string `json:"state_name,omitempty"`
	DistrictCode string `json:"district_code,omitempty"`
	DistrictName string `json:"district_name,omitempty"`
	CityName     string `json:"city_name,omitempty"`
	Message      string `json:"message,omitempty"`
}

type locationResponse struct {
	Success  bool              `json:"success"`
	District *locationDistrict `json:"district,omitempty"`
	Error    string            `json:"error,omitempty"`
}

const outOfRegionMessage = "Currently available only for Assam."

// Location serves POST /api/location. Failures are represented in the
// response envelope, not the HTTP status: the client falls back to manual
// district selection on success=false.
func (h *Handlers) Location(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, locationResponse{Success: false, Error: "invalid request body"})
		return
	}

	addr, err := h.lookupAddress(r.Context(), req)
	if err != nil {
		h.logger.Warn("location lookup failed", "error", err)
		writeJSON(w, http.StatusOK, locationResponse{Success: false, Error: err.Error()})
		return
	}

	res := domain.ResolveDistrict(addr, h.catalog, h.aliases)
	switch res.Status {
	case domain.ResolutionMatched:
		writeJSON(w, http.StatusOK, locationResponse{
			Success: true,
			District: &locationDistrict{
				StateCode:    domain.StateCode,
				StateName:    domain.StateName,
				DistrictCode: res.District.Code,
				DistrictName: res.District.Name,
				CityName:     res.City,
			},
		})
	case domain.ResolutionOutOfRegion:
		writeJSON(w, http.StatusOK, locationResponse{
			Success: true,
			District: &locationDistrict{
				StateName:    res.Region,
				DistrictName: res.DistrictName,
				CityName:     res.City,
				Message:      outOfRegionMessage,
			},
		})
	default:
		writeJSON(w, http.StatusOK, locationResponse{Success: false, Error: "could not extract address details"})
	}
}

// lookupAddress picks the geolocation strategy from caller intent. A failed
// coordinate lookup falls through to the network-address strategy exactly
// once; a failed network-address lookup has no further fallback.
func (h *Handlers) lookupAddress(ctx context.Context, req locationRequest) (domain.Address, error) {
	if req.UseIP {
		return h.iplocator.Locate(ctx)
	}
	if req.Lat == 0 && req.Lng == 0 {
		return domain.Address{}, errors.New("missing coordinates")
	}
	addr, err := h.reverse.Reverse(ctx, req.Lat, req.Lng)
	if err != nil {
		h.logger.Warn("reverse geocode failed, falling back to ip lookup", "error", err)
		return h.iplocator.Locate(ctx)
	}
	return addr, nil
}

// filterParams converts the optional month (1-12) and year (financial-year
// base) query parameters into upstream filter values. Unparseable values are
// ignored, leaving the corresponding filter off, matching the advisory
// nature of the filters.
func filterParams(r *http.Request) (monthName, finYear string) {
	if m := r.URL.Query().Get("month"); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			if name, ok := domain.MonthName(n); ok {
				monthName = name
			}
		}
	}
	if y := r.URL.Query().Get("year"); y != "" {
		if n, err := strconv.Atoi(y); err == nil {
			finYear = domain.FinancialYearString(n)
		}
	}
	return monthName, finYear
}
