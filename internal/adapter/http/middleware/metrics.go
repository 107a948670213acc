package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "juscalc_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "juscalc_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "juscalc_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Metrics middleware records HTTP metrics.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		// Wrap response writer to capture status code
		wrapped := &metricsRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

type metricsRecorder struct {
	http.ResponseWriter

	statusCode int
}

func (r *metricsRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// normalizePath normalizes URL paths to avoid high cardinality.
// /api/v1/calculations/01ABC -> /api/v1/calculations/:id
// /api/v1/indexes/INPC/rates -> /api/v1/indexes/:code/rates
func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/v1/calculations/"):
		rest := path[len("/api/v1/calculations/"):]
		// Named calculation endpoints keep their own label.
		switch rest {
		case "correction", "late-payment", "fgts", "":
			return path
		}
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			return "/api/v1/calculations/:id" + rest[i:]
		}
		return "/api/v1/calculations/:id"

	case strings.HasPrefix(path, "/api/v1/indexes/"):
		rest := path[len("/api/v1/indexes/"):]
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			return "/api/v1/indexes/:code" + rest[i:]
		}
		return "/api/v1/indexes/:code"
	}

	return path
}
