package config

import (
	"os"
	"strings"
	"time"
)

// parseEnv overlays selected Config fields from environment variables.
//
// Supported variables:
//
//	ENDPOINT_ADDR   HTTP bind address (e.g., ":5000")
//	DATABASE_DSN    PostgreSQL DSN
//	JWT_SECRET      JWT HMAC secret key
//	TOKEN_VALIDITY  access token validity (time.ParseDuration format, e.g. "1h")
//
// Unset or empty variables leave the current value untouched. An invalid
// TOKEN_VALIDITY is ignored rather than aborting startup.
func parseEnv(config *Config) {
	if v := strings.TrimSpace(os.Getenv("ENDPOINT_ADDR")); v != "" {
		config.EndpointAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_DSN")); v != "" {
		config.DatabaseDSN = v
	}
	if v := strings.TrimSpace(os.Getenv("JWT_SECRET")); v != "" {
		config.SecretKey = v
	}
	if v := strings.TrimSpace(os.Getenv("TOKEN_VALIDITY")); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
