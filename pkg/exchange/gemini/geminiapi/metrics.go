package geminiapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var latencyMetrics = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "gemini_api_latency_ms",
		Help:    "The histogram of latency returned by Gemini API",
		Buckets: prometheus.ExponentialBuckets(20, 2, 9), // 20ms to 5120ms
	},
	[]string{"path", "status_code"},
)

var requestCounterMetrics = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gemini_api_requests_total",
		Help: "The number of requests sent to Gemini API",
	},
	[]string{"http_method", "path", "status_code"},
)

// recordRequestMetrics records one request, statusCode 0 means the request
// failed before a response was received.
func recordRequestMetrics(req *http.Request, start time.Time, statusCode int) {
	path := req.URL.Path
	code := strconv.Itoa(statusCode)

	latencyMetrics.With(prometheus.Labels{
		"path":        path,
		"status_code": code,
	}).Observe(float64(time.Since(start).Milliseconds()))

	requestCounterMetrics.With(prometheus.Labels{
		"http_method": req.Method,
		"path":        path,
		"status_code": code,
	}).Inc()
}
