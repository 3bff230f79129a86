package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Pipeline Metrics
var (
	IntentsRouted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIntentsRouted,
			Help: HelpTextIntentsRouted,
		},
		[]string{LabelIntent},
	)

	EvidenceLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEvidenceLookups,
			Help: HelpTextEvidenceLookups,
		},
		[]string{LabelStatus},
	)

	EvidenceCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEvidenceCacheHits,
			Help: HelpTextEvidenceCacheHits,
		},
	)

	Verdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVerdicts,
			Help: HelpTextVerdicts,
		},
		[]string{LabelOutcome},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameBackendRequestDuration,
			Help:    HelpTextBackendRequestDuration,
			Buckets: BackendLatencyBuckets,
		},
		[]string{LabelBackend},
	)
)
