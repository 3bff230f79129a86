package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`

	// Search backend
	SearchAPIKey   string
	SearchEngineID string
	SearchEndpoint string        `validate:"required,url"`
	SearchTimeout  time.Duration `validate:"gt=0"`

	// Enrichment backend
	GenAIAPIKey  string
	GenAIModel   string
	GenAITimeout time.Duration `validate:"gt=0"`

	// Pipeline tuning
	ForwardWordThreshold int           `validate:"min=1,max=1000"`
	MaxReplyChars        int           `validate:"min=0"`
	EvidenceCacheSize    int           `validate:"min=0"`
	EvidenceCacheTTL     time.Duration `validate:"gt=0"`

	// Transport
	TwilioAuthToken string
	PublicBaseURL   string `validate:"omitempty,url"`
	WebhookPath     string `validate:"startswith=/"`
	APIKey          string // API key for /api/v1 routes; empty leaves them open

	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	if err := checkSchemaVersion(); err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),

		SearchAPIKey:   getEnv(EnvSearchAPIKey, ""),
		SearchEngineID: getEnv(EnvSearchEngineID, ""),
		SearchEndpoint: getEnv(EnvSearchEndpoint, DefaultSearchEndpoint),
		SearchTimeout:  getEnvAsDuration(EnvSearchTimeout, DefaultSearchTimeout),

		GenAIAPIKey:  getEnv(EnvGenAIAPIKey, ""),
		GenAIModel:   getEnv(EnvGenAIModel, DefaultGenAIModel),
		GenAITimeout: getEnvAsDuration(EnvGenAITimeout, DefaultGenAITimeout),

		ForwardWordThreshold: getEnvAsInt(EnvForwardWordThreshold, DefaultForwardWordThreshold),
		MaxReplyChars:        getEnvAsInt(EnvMaxReplyChars, DefaultMaxReplyChars),
		EvidenceCacheSize:    getEnvAsInt(EnvEvidenceCacheSize, 0),
		EvidenceCacheTTL:     getEnvAsDuration(EnvEvidenceCacheTTL, DefaultEvidenceCacheTTL),

		TwilioAuthToken: getEnv(EnvTwilioAuthToken, ""),
		PublicBaseURL:   getEnv(EnvPublicBaseURL, ""),
		WebhookPath:     getEnv(EnvWebhookPath, DefaultWebhookPath),
		APIKey:          getEnv(EnvAPIKey, ""),

		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints and reports every violation at once.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s' (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// SearchConfigured reports whether the search backend has credentials.
func (c *Config) SearchConfigured() bool {
	return c.SearchAPIKey != "" && c.SearchEngineID != ""
}

// GenAIConfigured reports whether the enrichment backend has credentials.
func (c *Config) GenAIConfigured() bool {
	return c.GenAIAPIKey != ""
}

// SignaturesEnabled reports whether inbound webhook signatures are verified.
func (c *Config) SignaturesEnabled() bool {
	return c.TwilioAuthToken != ""
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
