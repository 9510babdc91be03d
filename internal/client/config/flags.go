package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/santosysantos/prodgate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   API base URL
//	-l string   login path relative to the base URL
//	-t int      session duration (in minutes)
//	-d string   path of the local session database
//	-v string   log level
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-t", "-d", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.LoginPath, "l", cfg.LoginPath, "login path relative to the API base URL")
	sessionMinutes := fs.Int("t", int(cfg.SessionDuration.Minutes()), "session duration (in minutes)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local session database path")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only an explicit -t replaces a duration that may not be whole minutes
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.SessionDuration = time.Duration(*sessionMinutes) * time.Minute
		}
	})
}
