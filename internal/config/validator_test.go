package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:                 8080,
		LogLevel:             "info",
		LogFormat:            "text",
		Environment:          "dev",
		ServiceName:          "misinfox",
		SearchAPIKey:         "search-key",
		SearchEngineID:       "engine-id",
		SearchEndpoint:       DefaultSearchEndpoint,
		SearchTimeout:        DefaultSearchTimeout,
		GenAIAPIKey:          "genai-key",
		GenAITimeout:         DefaultGenAITimeout,
		ForwardWordThreshold: DefaultForwardWordThreshold,
		MaxReplyChars:        DefaultMaxReplyChars,
		EvidenceCacheTTL:     DefaultEvidenceCacheTTL,
		TwilioAuthToken:      "token",
		WebhookPath:          DefaultWebhookPath,
		APIKey:               "key",
		ShutdownTimeout:      DefaultShutdownTimeout,
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.SearchTimeout = 0
	assert.ErrorContains(t, cfg.Validate(), "SearchTimeout")
}

func TestValidateWithWarnings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		warning string
	}{
		{"missing search engine", func(c *Config) { c.SearchEngineID = "" }, "SEARCH_ENGINE_ID"},
		{"missing genai key", func(c *Config) { c.GenAIAPIKey = "" }, "GENAI_API_KEY"},
		{"missing twilio token", func(c *Config) { c.TwilioAuthToken = "" }, "signatures will not be verified"},
		{"example twilio token", func(c *Config) { c.TwilioAuthToken = exampleTwilioToken }, "example value"},
		{"missing api key", func(c *Config) { c.APIKey = "" }, "unauthenticated"},
		{"example api key", func(c *Config) { c.APIKey = exampleAPIKey }, "openssl rand -hex 32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			warnings := cfg.ValidateWithWarnings()

			if assert.Len(t, warnings, 1) {
				assert.Contains(t, warnings[0], tt.warning)
			}
		})
	}

	assert.Empty(t, validConfig().ValidateWithWarnings())
}
