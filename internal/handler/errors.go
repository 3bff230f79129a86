package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidForm           = "Invalid form body"
	ErrMsgInvalidSignature      = "Invalid request signature"
	ErrMsgGenericServerError    = "Something went wrong"
)

// Health status values
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

// Log messages
const (
	LogMsgWebhookReceived   = "Webhook message received"
	LogMsgWebhookReplied    = "Webhook reply sent"
	LogMsgWebhookPanic      = "Recovered panic in webhook handler"
	LogMsgSignatureRejected = "Rejected webhook with invalid signature"
	LogMsgCheckCompleted    = "Check request completed"
)
