package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// Example values shipped in .env.example
const (
	exampleAPIKey      = "generate_with_openssl_rand_hex_32"
	exampleTwilioToken = "your_twilio_auth_token"
)

// checkSchemaVersion rejects an outdated .env. An unset version is accepted
// so the service can run from plain environment variables.
func checkSchemaVersion() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" || schemaVersion == ExpectedEnvSchemaVersion {
		return nil
	}
	return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated",
		ExpectedEnvSchemaVersion, schemaVersion)
}

// ValidateWithWarnings returns warnings for settings that leave the service
// running in a degraded or unprotected mode. None of them are fatal.
func (c *Config) ValidateWithWarnings() []string {
	var warnings []string

	if !c.SearchConfigured() {
		warnings = append(warnings, "SEARCH_API_KEY or SEARCH_ENGINE_ID not set - evidence lookups will report the provider as not configured")
	}

	if !c.GenAIConfigured() {
		warnings = append(warnings, "GENAI_API_KEY not set - verdicts will use the plain claim and evidence format")
	}

	if !c.SignaturesEnabled() {
		warnings = append(warnings, "TWILIO_AUTH_TOKEN not set - webhook signatures will not be verified")
	} else if c.TwilioAuthToken == exampleTwilioToken {
		warnings = append(warnings, "TWILIO_AUTH_TOKEN appears to be using the example value")
	}

	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY not set - /api/v1 routes are unauthenticated")
	} else if c.APIKey == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	return warnings
}
