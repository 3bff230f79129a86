package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion        = "ENV_SCHEMA_VERSION"
	EnvPort                 = "PORT"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvEnvironment          = "ENVIRONMENT"
	EnvServiceName          = "SERVICE_NAME"
	EnvSearchAPIKey         = "SEARCH_API_KEY"
	EnvSearchEngineID       = "SEARCH_ENGINE_ID"
	EnvSearchEndpoint       = "SEARCH_ENDPOINT"
	EnvSearchTimeout        = "SEARCH_TIMEOUT"
	EnvGenAIAPIKey          = "GENAI_API_KEY"
	EnvGenAIModel           = "GENAI_MODEL"
	EnvGenAITimeout         = "GENAI_TIMEOUT"
	EnvForwardWordThreshold = "FORWARD_WORD_THRESHOLD"
	EnvMaxReplyChars        = "MAX_REPLY_CHARS"
	EnvEvidenceCacheSize    = "EVIDENCE_CACHE_SIZE"
	EnvEvidenceCacheTTL     = "EVIDENCE_CACHE_TTL"
	EnvTwilioAuthToken      = "TWILIO_AUTH_TOKEN"
	EnvPublicBaseURL        = "PUBLIC_BASE_URL"
	EnvWebhookPath          = "WEBHOOK_PATH"
	EnvAPIKey               = "API_KEY"
	EnvShutdownTimeout      = "SHUTDOWN_TIMEOUT"
)

// Defaults
const (
	DefaultPort                 = 8080
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultEnvironment          = "dev"
	DefaultServiceName          = "misinfox"
	DefaultSearchEndpoint       = "https://www.googleapis.com/customsearch/v1"
	DefaultSearchTimeout        = 8 * time.Second
	DefaultGenAIModel           = "gemini-2.0-flash"
	DefaultGenAITimeout         = 15 * time.Second
	DefaultForwardWordThreshold = 20
	DefaultMaxReplyChars        = 1550
	DefaultEvidenceCacheTTL     = 10 * time.Minute
	DefaultWebhookPath          = "/whatsapp"
	DefaultShutdownTimeout      = 10 * time.Second
)
