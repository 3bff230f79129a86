package metrics

import (
	"time"

	"github.com/osse101/MisinfoX_Go/internal/domain"
)

// RecordIntent counts a routed message.
func RecordIntent(kind domain.IntentKind) {
	IntentsRouted.WithLabelValues(string(kind)).Inc()
}

// RecordEvidence counts an evidence lookup by its result status.
func RecordEvidence(status domain.EvidenceStatus) {
	EvidenceLookups.WithLabelValues(string(status)).Inc()
}

// RecordEvidenceCacheHit counts a lookup answered from the evidence cache.
func RecordEvidenceCacheHit() {
	EvidenceCacheHits.Inc()
}

// RecordVerdict counts a produced verdict by outcome.
func RecordVerdict(outcome domain.VerdictOutcome) {
	Verdicts.WithLabelValues(string(outcome)).Inc()
}

// ObserveBackend records the latency of an outbound backend call started at start.
func ObserveBackend(backend string, start time.Time) {
	BackendRequestDuration.WithLabelValues(backend).Observe(time.Since(start).Seconds())
}
