package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// dotEnvFile is read, when it exists, before the environment is parsed.
// Variables already set in the process environment win over the file.
var dotEnvFile = ".env"

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// parseEnv overlays cfg with PRODGATE_* variables. Unset variables leave
// cfg untouched.
func parseEnv(cfg *Config) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		panic(err)
	}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
