// Package config handles configuration for the server,
// including defaults, environment variables, JSON overlay, and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the games API server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Required.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required.
//   - TokenValidityDuration: access token lifetime.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults. The database DSN
// and the signing secret have no defaults: both must be provided explicitly.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":5000"
	c.TokenValidityDuration = 1 * time.Hour
}

// Validate reports whether the configuration is complete enough to start the
// server. A missing DSN or signing secret is a fatal startup condition.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is not set")
	}
	if c.SecretKey == "" {
		return errors.New("JWT secret key is not set")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from environment variables, an optional JSON file, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
