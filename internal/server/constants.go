package server

// Limits
const (
	MaxRequestBytes    = 64 << 10 // webhook forms and check bodies are small
	DefaultWebhookPath = "/whatsapp"
)

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized = "Unauthorized"
	ErrMsgInternal     = "Internal Server Error"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgPanicRecovered   = "Recovered panic in HTTP handler"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderSignature      = "X-Twilio-Signature"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueNoReferrer = "no-referrer"
)

// SecretHeaders are redacted from request logs
var SecretHeaders = []string{
	HeaderAPIKey,
	HeaderAuthorization,
	HeaderSignature,
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
