// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wanderplan"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	// ItineraryGenerationsTotal counts generations by outcome: success, transport_error or malformed_payload.
	ItineraryGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "itinerary",
			Name:      "generations_total",
			Help:      "Total number of itinerary generations by outcome",
		},
		[]string{"outcome"},
	)

	ItineraryGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "itinerary",
			Name:      "generation_duration_seconds",
			Help:      "Itinerary generation duration in seconds, remote call included",
			Buckets:   []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
		},
		[]string{"outcome"},
	)

	ItineraryRecognitionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "itinerary",
			Name:      "documents_total",
			Help:      "Successfully parsed itinerary documents by recognized shape",
		},
		[]string{"recognition"},
	)
)
