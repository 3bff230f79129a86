package twiml

import (
	"net/http"
	"strings"

	"github.com/twilio/twilio-go/client"
)

// SignatureHeader carries the provider's request signature.
const SignatureHeader = "X-Twilio-Signature"

// SignatureValidator checks inbound webhook signatures. The zero value and a
// validator built with an empty token accept every request.
type SignatureValidator struct {
	validator client.RequestValidator
	baseURL   string
	enabled   bool
}

// NewSignatureValidator creates a validator for authToken. baseURL, when set,
// replaces the scheme and host of the request URL so signatures verify behind proxies.
func NewSignatureValidator(authToken, baseURL string) *SignatureValidator {
	return &SignatureValidator{
		validator: client.NewRequestValidator(authToken),
		baseURL:   strings.TrimRight(baseURL, "/"),
		enabled:   authToken != "",
	}
}

// Enabled reports whether signatures are checked.
func (v *SignatureValidator) Enabled() bool {
	return v != nil && v.enabled
}

// Valid reports whether r carries a valid signature. The form must already be parsed.
func (v *SignatureValidator) Valid(r *http.Request) bool {
	if !v.Enabled() {
		return true
	}

	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		return false
	}

	params := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	return v.validator.Validate(v.requestURL(r), params, signature)
}

func (v *SignatureValidator) requestURL(r *http.Request) string {
	if v.baseURL != "" {
		return v.baseURL + r.URL.RequestURI()
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
