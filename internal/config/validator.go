package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build reads
const ExpectedEnvSchemaVersion = "1.0"

// MinJWTSecretLength is the shortest HMAC secret accepted without a warning
const MinJWTSecretLength = 32

// Placeholder values shipped in the example .env
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleJWTSecret  = "generate_with_openssl_rand_hex_32"
)

// RequiredEnvVars must be non-empty before the service starts
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"AUTH_JWT_SECRET",
}

// ValidateEnv checks the schema version and that every required variable is set
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s", ExpectedEnvSchemaVersion, v)
	}

	var missing []string
	for _, key := range RequiredEnvVars {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports settings that
// work but should not reach production
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv("DB_PASSWORD") == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD is the example value")
	}

	secret := os.Getenv("AUTH_JWT_SECRET")
	switch {
	case secret == ExampleJWTSecret:
		warnings = append(warnings, "AUTH_JWT_SECRET is the example value; generate one with: openssl rand -hex 32")
	case len(secret) < MinJWTSecretLength:
		warnings = append(warnings, fmt.Sprintf("AUTH_JWT_SECRET is shorter than %d characters", MinJWTSecretLength))
	}

	if os.Getenv("WHEEL_TIMEZONE") == "" {
		warnings = append(warnings, "WHEEL_TIMEZONE is unset; daily spin limits reset at midnight UTC")
	}

	return warnings, nil
}
