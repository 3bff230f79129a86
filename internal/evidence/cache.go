package evidence

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MisinfoX_Go/internal/domain"
	"github.com/osse101/MisinfoX_Go/internal/logger"
	"github.com/osse101/MisinfoX_Go/internal/metrics"
)

// CachingProvider decorates a Provider with an in-memory expiring LRU.
// Only Found and NoResults snippets are cached; sentinels for missing
// configuration or backend errors always go back to the wrapped provider.
type CachingProvider struct {
	next Provider
	lru  *expirable.LRU[string, domain.EvidenceSnippet]
}

// NewCachingProvider wraps next with a cache of at most size entries living for ttl.
func NewCachingProvider(next Provider, size int, ttl time.Duration) *CachingProvider {
	return &CachingProvider{
		next: next,
		lru:  expirable.NewLRU[string, domain.EvidenceSnippet](size, nil, ttl),
	}
}

// FetchEvidence returns a cached snippet when available, otherwise delegates.
func (c *CachingProvider) FetchEvidence(ctx context.Context, query string) domain.EvidenceSnippet {
	key := domain.Normalize(query)

	if snippet, ok := c.lru.Get(key); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "status", snippet.Status)
		metrics.RecordEvidenceCacheHit()
		snippet.Query = query
		return snippet
	}

	snippet := c.next.FetchEvidence(ctx, query)
	if cacheable(snippet.Status) {
		c.lru.Add(key, snippet)
	}
	return snippet
}

// Len returns the number of cached entries.
func (c *CachingProvider) Len() int {
	return c.lru.Len()
}

func cacheable(status domain.EvidenceStatus) bool {
	return status == domain.EvidenceFound || status == domain.EvidenceNoResults
}
