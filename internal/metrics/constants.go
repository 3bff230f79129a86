package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Pipeline metric names
const (
	MetricNameIntentsRouted          = "intents_routed_total"
	MetricNameEvidenceLookups        = "evidence_lookups_total"
	MetricNameEvidenceCacheHits      = "evidence_cache_hits_total"
	MetricNameVerdicts               = "verdicts_total"
	MetricNameBackendRequestDuration = "backend_request_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Pipeline metric help text
const (
	HelpTextIntentsRouted          = "Total number of inbound messages routed, by intent"
	HelpTextEvidenceLookups        = "Total number of evidence lookups, by result status"
	HelpTextEvidenceCacheHits      = "Total number of evidence lookups served from cache"
	HelpTextVerdicts               = "Total number of verdicts produced, by outcome"
	HelpTextBackendRequestDuration = "Outbound backend call latency in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelIntent  = "intent"
	LabelOutcome = "outcome"
	LabelBackend = "backend"
)

// Backend label values
const (
	BackendSearch = "search"
	BackendGenAI  = "genai"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// BackendLatencyBuckets covers outbound calls up to the longest configured timeout.
var BackendLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2, 4, 8, 15, 30}
