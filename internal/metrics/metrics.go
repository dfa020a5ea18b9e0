package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banner_http_requests_total",
			Help: "HTTP requests by route and status code.",
		},
		[]string{"method", "route", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "banner_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	rendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banner_renders_total",
			Help: "Server renders by outcome (placeholder, custom, product).",
		},
		[]string{"outcome"},
	)

	productLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banner_product_lookups_total",
			Help: "Product lookups by result (cache_hit, store, not_found, error).",
		},
		[]string{"result"},
	)

	editorFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banner_editor_fetches_total",
			Help: "Editor fetches by kind and result (applied, discarded, failed).",
		},
		[]string{"kind", "result"},
	)

	editorSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "banner_editor_sessions",
			Help: "Editor sessions currently mounted.",
		},
	)
)

func ObserveHTTPRequest(method, route, statusCode string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func RecordRender(outcome string) {
	rendersTotal.WithLabelValues(outcome).Inc()
}

func RecordProductLookup(result string) {
	productLookupsTotal.WithLabelValues(result).Inc()
}

func RecordEditorFetch(kind, result string) {
	editorFetchesTotal.WithLabelValues(kind, result).Inc()
}

func SessionMounted() {
	editorSessions.Inc()
}

func SessionClosed() {
	editorSessions.Dec()
}
