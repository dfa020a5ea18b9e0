package v1

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/The-Gleb/product_banner/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const unmatchedRoute = "unmatched"

// Metrics records request counts and latency per route pattern, so
// /editor/sessions/{id} is one series regardless of the session id.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		elapsed := time.Since(start)
		metrics.ObserveHTTPRequest(r.Method, route, strconv.Itoa(status), elapsed.Seconds())

		slog.Debug("request served",
			"method", r.Method,
			"route", route,
			"status", status,
			"duration", elapsed,
		)
	})
}
