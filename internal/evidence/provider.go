// Package evidence looks up external search evidence for a claim and reduces
// the outcome to a domain.EvidenceSnippet. Failures never escape as errors.
package evidence

import (
	"context"

	"github.com/osse101/MisinfoX_Go/internal/domain"
)

// Provider fetches evidence for a free-text query.
// Implementations must always return a snippet, using sentinel statuses for failures.
type Provider interface {
	FetchEvidence(ctx context.Context, query string) domain.EvidenceSnippet
}
