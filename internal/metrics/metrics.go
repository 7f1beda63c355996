// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tamrah_http_requests_total",
			Help: "HTTP requests handled, by method, route pattern and status code.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tamrah_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RecommendationResults observes how many records each recommendation returned.
	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tamrah_recommendation_results",
			Help:    "Number of records returned per recommendation request.",
			Buckets: []float64{0, 1, 2, 3},
		},
	)

	// CatalogMutations counts successful catalog writes by operation.
	CatalogMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tamrah_catalog_mutations_total",
			Help: "Successful catalog mutations, by operation.",
		},
		[]string{"op"},
	)

	// EventPublishFailures counts catalog events that could not be published.
	EventPublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tamrah_event_publish_failures_total",
			Help: "Catalog events that failed to publish.",
		},
	)

	// BlobUploadBytes counts bytes accepted by the blob store.
	BlobUploadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tamrah_blob_upload_bytes_total",
			Help: "Bytes stored through image uploads.",
		},
	)

	// AuthFailures counts rejected admin requests by reason.
	AuthFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tamrah_auth_failures_total",
			Help: "Admin requests rejected by the session gate, by reason.",
		},
		[]string{"reason"},
	)
)
