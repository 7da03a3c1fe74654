// Package metrics holds the server's Prometheus metrics plus the plain
// fileserver hit counter shown on the admin page.
package metrics

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles every counter the server records. FileserverHits is a bare
// atomic rather than a Prometheus counter because the admin page needs to
// read and reset it, which the Prometheus API does not allow.
type Metrics struct {
	fileserverHits atomic.Int64

	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	LoginsTotal      *prometheus.CounterVec
	RefreshesTotal   *prometheus.CounterVec
	RevocationsTotal *prometheus.CounterVec
	SweptTokensTotal prometheus.Counter
}

// New creates all metrics and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chirpy_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chirpy_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		LoginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chirpy_logins_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"},
		),
		RefreshesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chirpy_token_refreshes_total",
				Help: "Total number of access token refreshes",
			},
			[]string{"status"},
		),
		RevocationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chirpy_token_revocations_total",
				Help: "Total number of refresh token revocations",
			},
			[]string{"status"},
		),
		SweptTokensTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "chirpy_swept_tokens_total",
				Help: "Total number of expired refresh tokens garbage-collected",
			},
		),
	}

	m.registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.LoginsTotal,
		m.RefreshesTotal,
		m.RevocationsTotal,
		m.SweptTokensTotal,
	)

	return m
}

// IncFileserverHits records one static file request.
func (m *Metrics) IncFileserverHits() {
	m.fileserverHits.Add(1)
}

// FileserverHits returns the current hit count.
func (m *Metrics) FileserverHits() int64 {
	return m.fileserverHits.Load()
}

// ResetFileserverHits zeroes the hit counter.
func (m *Metrics) ResetFileserverHits() {
	m.fileserverHits.Store(0)
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
