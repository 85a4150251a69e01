// Package metrics holds the prometheus collectors of the subway server.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "subway_"

	resultSuccess = "success"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	lineOperations    *prometheus.CounterVec
	stationOperations *prometheus.CounterVec
)

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)
		lineOperations = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "line_operations_total",
				Help: "Line operations by operation and result",
			},
			[]string{"operation", "result"},
		)
		stationOperations = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "station_operations_total",
				Help: "Station operations by operation and result",
			},
			[]string{"operation", "result"},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			lineOperations,
			stationOperations,
		)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest records a completed request.
// route is the chi route pattern so that path ids do not explode the label set.
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	if httpRequests != nil {
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	}
	if httpLatency != nil {
		httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
	}
}

// ObserveLineOperation counts a line operation; result is an error kind or "" for success.
func ObserveLineOperation(operation, result string) {
	if result == "" {
		result = resultSuccess
	}
	if lineOperations != nil {
		lineOperations.WithLabelValues(operation, result).Inc()
	}
}

// ObserveStationOperation counts a station operation; result is an error kind or "" for success.
func ObserveStationOperation(operation, result string) {
	if result == "" {
		result = resultSuccess
	}
	if stationOperations != nil {
		stationOperations.WithLabelValues(operation, result).Inc()
	}
}
