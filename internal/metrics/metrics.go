package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uxpulse_events_ingested_total",
		Help: "Total number of telemetry events accepted, labelled by aggregation mode.",
	}, []string{"mode"})

	EventsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uxpulse_events_rejected_total",
		Help: "Total number of telemetry events rejected with a client error.",
	})

	SnapshotQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uxpulse_snapshot_queries_total",
		Help: "Total number of aggregate stats queries served.",
	})

	InsightRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uxpulse_insight_requests_total",
		Help: "Total number of insight report requests, labelled by status.",
	}, []string{"status"})

	InsightGenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "uxpulse_insight_generation_seconds",
		Help:    "Wall time spent obtaining and segmenting one generated report.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	})
)
