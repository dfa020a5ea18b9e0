package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func requestCounts(t *testing.T) map[string]float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	counts := make(map[string]float64)
	for _, family := range families {
		if family.GetName() != "banner_http_requests_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			key := ""
			for _, label := range m.GetLabel() {
				key += label.GetName() + "=" + label.GetValue() + ";"
			}
			counts[key] = m.GetCounter().GetValue()
		}
	}
	return counts
}

func TestMetrics(t *testing.T) {
	r := chi.NewMux()
	r.Use(Metrics)
	r.Get("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/quiet", func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/things/1", "/things/2", "/quiet", "/missing"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Equal(t, map[string]float64{
		"method=GET;route=/quiet;status_code=200;":       1,
		"method=GET;route=/things/{id};status_code=418;": 2,
		"method=GET;route=unmatched;status_code=404;":    1,
	}, requestCounts(t))
}
