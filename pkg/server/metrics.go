package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vectorprime_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vectorprime_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.005, .01, .05, .1, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	analysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vectorprime_analyses_total",
			Help: "RFP analyses by outcome",
		},
		[]string{"outcome"}, // "ok", "rejected" or "canceled"
	)

	uploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vectorprime_upload_bytes",
			Help:    "Size of uploaded RFP documents",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 9),
		},
	)

	catalogReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vectorprime_catalog_reloads_total",
			Help: "Catalog file reloads by outcome",
		},
		[]string{"outcome"}, // "ok" or "rejected"
	)
)
