// Package detector classifies free text as forward-like: long, link-bearing,
// or shaped like a forwarded chain message.
package detector

import (
	"strings"

	"github.com/osse101/MisinfoX_Go/internal/domain"
)

// DefaultWordThreshold is used when a non-positive threshold is configured.
const DefaultWordThreshold = 20

var (
	linkMarkers     = []string{"http://", "https://"}
	forwardPrefixes = []string{"fw:", "fwd:"}
)

// minNewlines is the number of line breaks that marks pasted chain content.
const minNewlines = 2

// Detector is safe for concurrent use; it holds only read-only configuration.
type Detector struct {
	wordThreshold int
}

// New creates a Detector flagging texts with at least wordThreshold words.
func New(wordThreshold int) *Detector {
	if wordThreshold <= 0 {
		wordThreshold = DefaultWordThreshold
	}
	return &Detector{wordThreshold: wordThreshold}
}

// WordThreshold returns the configured word-count threshold.
func (d *Detector) WordThreshold() int {
	return d.wordThreshold
}

// IsForwardLike reports whether text looks like forwarded content.
// Signals are checked in order and any one is sufficient.
func (d *Detector) IsForwardLike(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	if len(strings.Fields(text)) >= d.wordThreshold {
		return true
	}

	normalized := domain.Normalize(text)

	for _, marker := range linkMarkers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}

	for _, prefix := range forwardPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return true
		}
	}

	return strings.Count(text, "\n") >= minNewlines
}
