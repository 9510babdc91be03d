package config

import (
	"encoding/json"
	"os"

	"github.com/santosysantos/prodgate/internal/flagx"
	"github.com/santosysantos/prodgate/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations may be written as
// "90m" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL      string         `json:"api_base_url"`
	LoginPath       string         `json:"login_path"`
	SessionDuration timex.Duration `json:"session_duration"`
	DatabasePath    string         `json:"database_path"`
	LogLevel        string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. Keys missing
// from the file leave cfg untouched. Read and decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.LoginPath != "" {
		cfg.LoginPath = jc.LoginPath
	}
	if jc.SessionDuration.Duration > 0 {
		cfg.SessionDuration = jc.SessionDuration.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
