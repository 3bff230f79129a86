package evidence

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MisinfoX_Go/internal/domain"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*SearchProvider, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	p := NewSearchProvider(Config{
		APIKey:   "test-key",
		EngineID: "test-cx",
		Endpoint: srv.URL,
		Timeout:  2 * time.Second,
	}, srv.Client())
	return p, &calls
}

func TestSearchProvider_NotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing key", Config{EngineID: "cx"}},
		{"missing engine id", Config{APIKey: "key"}},
		{"missing both", Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doer := &countingDoer{}
			p := NewSearchProvider(tt.cfg, doer)

			snippet := p.FetchEvidence(context.Background(), "the earth is flat")

			assert.Equal(t, domain.EvidenceNotConfigured, snippet.Status)
			assert.Equal(t, domain.MsgSearchNotConfigured, snippet.Text())
			assert.Zero(t, doer.calls, "no network call when not configured")
		})
	}
}

func TestSearchProvider_Found(t *testing.T) {
	p, calls := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "test-key", q.Get(ParamKey))
		assert.Equal(t, "test-cx", q.Get(ParamScope))
		assert.Equal(t, "The Earth is Flat", q.Get(ParamQuery))
		assert.Equal(t, "2", q.Get(ParamCount))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"title":"Flat Earth debunked","snippet":"The Earth is an oblate spheroid.","link":"https://example.com/a"},
			{"title":"Second","snippet":"ignored","link":"https://example.com/b"}
		]}`))
	})

	snippet := p.FetchEvidence(context.Background(), "The Earth is Flat")

	require.Equal(t, domain.EvidenceFound, snippet.Status)
	assert.Equal(t, "Flat Earth debunked", snippet.Title)
	assert.Equal(t, "The Earth is an oblate spheroid.", snippet.Excerpt)
	assert.Equal(t, "https://example.com/a", snippet.Link)
	assert.NotContains(t, snippet.Text(), "ignored")
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestSearchProvider_NoResults(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"searchInformation":{"totalResults":"0"}}`))
	})

	snippet := p.FetchEvidence(context.Background(), "zzzz")

	assert.Equal(t, domain.EvidenceNoResults, snippet.Status)
	assert.Equal(t, `No results found for "zzzz".`, snippet.Text())
}

func TestSearchProvider_Failures(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantCause string
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			wantCause: "403",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"items": [`))
			},
			wantCause: domain.ErrMsgMalformedResponse,
		},
		{
			name: "items not an array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"items": {"title": "x"}}`))
			},
			wantCause: domain.ErrMsgMalformedResponse,
		},
		{
			name: "title not a string",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"items": [{"title": 42, "snippet": "s", "link": "https://x"}]}`))
			},
			wantCause: domain.ErrMsgMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, calls := newTestProvider(t, tt.handler)

			snippet := p.FetchEvidence(context.Background(), "claim")

			assert.Equal(t, domain.EvidenceProviderError, snippet.Status)
			assert.Contains(t, snippet.Text(), "Error during search: ")
			assert.Contains(t, snippet.Cause, tt.wantCause)
			assert.Equal(t, int32(1), atomic.LoadInt32(calls), "no retries")
		})
	}
}

func TestSearchProvider_TransportErrorRedactsKey(t *testing.T) {
	p := NewSearchProvider(Config{
		APIKey:   "super-secret",
		EngineID: "cx",
		Endpoint: "http://127.0.0.1:1",
	}, &countingDoer{err: errors.New("connection refused")})

	snippet := p.FetchEvidence(context.Background(), "claim")

	assert.Equal(t, domain.EvidenceProviderError, snippet.Status)
	assert.Contains(t, snippet.Cause, "connection refused")
	assert.NotContains(t, snippet.Cause, "super-secret")
}

func TestSearchProvider_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	p := NewSearchProvider(Config{
		APIKey:   "k",
		EngineID: "cx",
		Endpoint: srv.URL,
		Timeout:  50 * time.Millisecond,
	}, nil)

	start := time.Now()
	snippet := p.FetchEvidence(context.Background(), "slow claim")

	assert.Equal(t, domain.EvidenceProviderError, snippet.Status)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewSearchProvider_Defaults(t *testing.T) {
	p := NewSearchProvider(Config{}, nil)
	assert.Equal(t, DefaultEndpoint, p.cfg.Endpoint)
	assert.Equal(t, DefaultTimeout, p.cfg.Timeout)
	assert.Equal(t, DefaultResultCount, p.cfg.ResultCount)
	assert.NotNil(t, p.client)
}

// countingDoer records calls and fails every request with a url.Error like *http.Client does.
type countingDoer struct {
	calls int
	err   error
}

func (d *countingDoer) Do(req *http.Request) (*http.Response, error) {
	d.calls++
	err := d.err
	if err == nil {
		err = errors.New("unexpected call")
	}
	return nil, &url.Error{Op: "Get", URL: req.URL.String(), Err: err}
}
