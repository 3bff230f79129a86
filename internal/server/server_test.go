package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MisinfoX_Go/internal/domain"
	"github.com/osse101/MisinfoX_Go/internal/handler"
	"github.com/osse101/MisinfoX_Go/mocks"
)

func newTestHandler(t *testing.T, apiKey string) (http.Handler, *mocks.MockMessageRouter) {
	t.Helper()
	router := mocks.NewMockMessageRouter(t)
	h := NewHandler(Config{
		APIKey:    apiKey,
		Readiness: handler.Readiness{Search: true},
	}, router, nil)
	return h, router
}

func TestRoutes_Webhook(t *testing.T) {
	h, router := newTestHandler(t, "secret")
	router.On("Route", mock.Anything, domain.InboundMessage{Body: "hi", From: "whatsapp:+15550001111"}).
		Return(domain.StaticVerdict(domain.IntentGreeting, "Hello")).Once()

	form := url.Values{"Body": {"hi"}, "From": {"whatsapp:+15550001111"}}
	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "xml")
	assert.Contains(t, rec.Body.String(), "<Message>Hello</Message>")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRoutes_CustomWebhookPath(t *testing.T) {
	router := mocks.NewMockMessageRouter(t)
	router.On("Route", mock.Anything, mock.Anything).
		Return(domain.StaticVerdict(domain.IntentHelp, "help")).Once()
	h := NewHandler(Config{WebhookPath: "/hooks/wa"}, router, nil)

	req := httptest.NewRequest(http.MethodPost, "/hooks/wa", strings.NewReader("Body=help"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_CheckRequiresAPIKey(t *testing.T) {
	h, router := newTestHandler(t, "secret")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/check", strings.NewReader(`{"body":"hi"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	router.AssertNotCalled(t, "Route", mock.Anything, mock.Anything)

	router.On("Route", mock.Anything, domain.InboundMessage{Body: "hi"}).
		Return(domain.StaticVerdict(domain.IntentGreeting, "Hello")).Once()

	req = httptest.NewRequest(http.MethodPost, "/api/v1/check", strings.NewReader(`{"body":"hi"}`))
	req.Header.Set(HeaderAPIKey, "secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reply":"Hello"`)
}

func TestRoutes_PublicEndpoints(t *testing.T) {
	h, _ := newTestHandler(t, "secret")

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRoutes_WebhookRejectsGet(t *testing.T) {
	h, _ := newTestHandler(t, "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whatsapp", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
