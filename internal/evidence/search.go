package evidence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/MisinfoX_Go/internal/domain"
	"github.com/osse101/MisinfoX_Go/internal/logger"
	"github.com/osse101/MisinfoX_Go/internal/metrics"
	"github.com/osse101/MisinfoX_Go/internal/validation"
)

// Config holds the search backend settings.
type Config struct {
	APIKey      string
	EngineID    string
	Endpoint    string
	Timeout     time.Duration
	ResultCount int
}

// Configured reports whether credentials for the backend are present.
func (c Config) Configured() bool {
	return c.APIKey != "" && c.EngineID != ""
}

// HTTPDoer is the subset of *http.Client used by SearchProvider.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// SearchProvider queries a Custom Search JSON API endpoint.
type SearchProvider struct {
	cfg    Config
	client HTTPDoer
	schema validation.SchemaValidator
}

// searchResponse is the part of the backend payload we read.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// NewSearchProvider creates a provider. A nil client gets an *http.Client bounded by cfg.Timeout.
func NewSearchProvider(cfg Config, client HTTPDoer) *SearchProvider {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.ResultCount <= 0 {
		cfg.ResultCount = DefaultResultCount
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &SearchProvider{cfg: cfg, client: client, schema: validation.NewSchemaValidator()}
}

// FetchEvidence performs a single lookup with no retries.
func (p *SearchProvider) FetchEvidence(ctx context.Context, query string) domain.EvidenceSnippet {
	log := logger.FromContext(ctx)

	if !p.cfg.Configured() {
		log.Debug(LogMsgSearchNotConfigured)
		metrics.RecordEvidence(domain.EvidenceNotConfigured)
		return domain.NewNotConfiguredEvidence(query)
	}

	start := time.Now()
	item, found, err := p.search(ctx, query)
	metrics.ObserveBackend(metrics.BackendSearch, start)

	var snippet domain.EvidenceSnippet
	switch {
	case err != nil:
		log.Warn(LogMsgSearchFailed, "error", err, "duration", time.Since(start))
		snippet = domain.NewProviderErrorEvidence(query, err)
	case !found:
		snippet = domain.NewNoResultsEvidence(query)
	default:
		snippet = domain.NewFoundEvidence(query, item.Title, item.Snippet, item.Link)
	}

	log.Info(LogMsgSearchCompleted, "status", snippet.Status, "duration", time.Since(start))
	metrics.RecordEvidence(snippet.Status)
	return snippet
}

// search returns the top result, whether any result exists, and any transport or parse error.
func (p *SearchProvider) search(ctx context.Context, query string) (searchItem, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	params := url.Values{}
	params.Set(ParamKey, p.cfg.APIKey)
	params.Set(ParamScope, p.cfg.EngineID)
	params.Set(ParamQuery, query)
	params.Set(ParamCount, strconv.Itoa(p.cfg.ResultCount))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return searchItem{}, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return searchItem{}, false, fmt.Errorf("request failed: %w", redactKey(err, p.cfg.APIKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return searchItem{}, false, fmt.Errorf("%w: %d", domain.ErrBackendStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return searchItem{}, false, fmt.Errorf("failed to read response: %w", err)
	}
	if err := p.schema.ValidateBytes(data, validation.SchemaSearchResponse); err != nil {
		return searchItem{}, false, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	var body searchResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return searchItem{}, false, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	if len(body.Items) == 0 {
		return searchItem{}, false, nil
	}
	return body.Items[0], true, nil
}

// redactKey keeps the API key out of errors that embed the request URL.
// The cause text ends up in user-visible replies.
func redactKey(err error, key string) error {
	var urlErr *url.Error
	if key == "" || !errors.As(err, &urlErr) {
		return err
	}

	u, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		return urlErr.Err
	}
	q := u.Query()
	q.Set(ParamKey, redactedValue)
	u.RawQuery = q.Encode()

	return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
}
