package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the dashboard API.
type Metrics struct {
	// Upstream fetch strategy metrics.
	UpstreamAttempts *prometheus.CounterVec   // labels: endpoint={district,state}, outcome={success,empty,error}
	UpstreamDuration *prometheus.HistogramVec // labels: endpoint={district,state}
	FilterFallbacks  *prometheus.CounterVec   // labels: filter={month,fin_year}
	RecordsReturned  prometheus.Histogram

	// Geocoding metrics.
	GeocodeRequests *prometheus.CounterVec // labels: provider={nominatim,ipapi}, outcome={success,empty,error}

	// HTTP surface metrics.
	HTTPDuration *prometheus.HistogramVec // labels: route
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		UpstreamAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nrega_dashboard",
			Name:      "upstream_attempts_total",
			Help:      "Upstream open-data API attempts by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nrega_dashboard",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream open-data API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"endpoint"}),
		FilterFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nrega_dashboard",
			Name:      "filter_fallbacks_total",
			Help:      "Advisory filters that matched nothing and fell back to the unfiltered set.",
		}, []string{"filter"}),
		RecordsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nrega_dashboard",
			Name:      "records_returned",
			Help:      "Records returned per upstream query after filtering.",
			Buckets:   []float64{0, 1, 5, 10, 27, 50, 100, 500, 1000, 5000},
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nrega_dashboard",
			Name:      "geocode_requests_total",
			Help:      "Geocoding lookups by provider and outcome.",
		}, []string{"provider", "outcome"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nrega_dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "Inbound HTTP request duration by route.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"route"}),
	}

	prometheus.MustRegister(
		m.UpstreamAttempts,
		m.UpstreamDuration,
		m.FilterFallbacks,
		m.RecordsReturned,
		m.GeocodeRequests,
		m.HTTPDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		UpstreamAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "nrega_dashboard", Name: "upstream_attempts_total"}, []string{"endpoint", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "nrega_dashboard", Name: "upstream_request_duration_seconds"}, []string{"endpoint"}),
		FilterFallbacks:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "nrega_dashboard", Name: "filter_fallbacks_total"}, []string{"filter"}),
		RecordsReturned:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "nrega_dashboard", Name: "records_returned"}),
		GeocodeRequests:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "nrega_dashboard", Name: "geocode_requests_total"}, []string{"provider", "outcome"}),
		HTTPDuration:     prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "nrega_dashboard", Name: "http_request_duration_seconds"}, []string{"route"}),
	}
}
