package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests served, by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	BackendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backend_requests_total",
		Help: "Calls made to the imports backend, by operation and outcome.",
	}, []string{"operation", "outcome"})

	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backend_request_duration_seconds",
		Help:    "Latency of calls to the imports backend.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	LedgerCommitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_commits_total",
		Help: "Import form submissions, by mode (create, update) and result.",
	}, []string{"mode", "result"})

	LookupCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lookup_cache_requests_total",
		Help: "Lookup cache reads, by key and result (hit, miss, error).",
	}, []string{"key", "result"})
)
