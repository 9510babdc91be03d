// Package config handles configuration for the development login server:
// defaults, then DEVAUTH_* environment variables, then command-line flags.
package config

import "time"

// Config holds runtime settings for the dev auth server.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP listener.
//   - SeedFile: optional JSON array of {"username","password"} loaded at start.
//   - SecretKey: HMAC secret for the session cookie token. Development only.
//   - TokenValidityDuration: lifetime of the session cookie token.
//   - BcryptCost: work factor for stored password hashes.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddr          string        `env:"DEVAUTH_ADDR"`
	SeedFile              string        `env:"DEVAUTH_SEED_FILE"`
	SecretKey             string        `env:"DEVAUTH_SECRET_KEY"`
	TokenValidityDuration time.Duration `env:"DEVAUTH_TOKEN_DURATION"`
	BcryptCost            int           `env:"DEVAUTH_BCRYPT_COST"`
	LogLevel              string        `env:"DEVAUTH_LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey is insecure and must be overridden outside local testing.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8081"
	c.SeedFile = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = time.Hour
	c.BcryptCost = 10
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then the environment and
// finally command-line flags. Invalid input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
