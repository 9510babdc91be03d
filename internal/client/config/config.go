package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the prodgate CLI.
//
// Fields:
//   - APIBaseURL: root of the production-management API.
//   - LoginPath: login endpoint, relative to APIBaseURL.
//   - SessionDuration: how long a successful login stays valid.
//   - DatabasePath: SQLite file holding the local session record.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL      string        `env:"PRODGATE_API_BASE_URL"`
	LoginPath       string        `env:"PRODGATE_LOGIN_PATH"`
	SessionDuration time.Duration `env:"PRODGATE_SESSION_DURATION"`
	DatabasePath    string        `env:"PRODGATE_DATABASE_PATH"`
	LogLevel        string        `env:"PRODGATE_LOG_LEVEL"`
}

// LoadDefaults populates c with the production endpoint and a one hour session.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.santosysantosca.com/"
	c.LoginPath = "user/login"
	c.SessionDuration = time.Hour
	c.DatabasePath = "session.db"
	c.LogLevel = "info"
}

// LoginURL joins APIBaseURL and LoginPath.
func (c *Config) LoginURL() (string, error) {
	u, err := url.JoinPath(c.APIBaseURL, c.LoginPath)
	if err != nil {
		return "", fmt.Errorf("invalid api base url %q: %w", c.APIBaseURL, err)
	}
	return u, nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. Invalid input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
