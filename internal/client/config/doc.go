// Package config loads runtime configuration for the prodgate CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment: PRODGATE_* variables, optionally from a .env file in the
//     working directory.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL (default https://api.santosysantosca.com/)
//	-l string   login path (default user/login)
//	-t int      session duration in minutes (default 60)
//	-d string   session database path (default session.db)
//	-v string   log level (default info)
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://api.santosysantosca.com/",
//	  "login_path": "user/login",
//	  "session_duration": "1h",
//	  "database_path": "session.db",
//	  "log_level": "info"
//	}
//
// # Environment
//
//	PRODGATE_API_BASE_URL, PRODGATE_LOGIN_PATH, PRODGATE_SESSION_DURATION
//	(Go duration, e.g. "45m"), PRODGATE_DATABASE_PATH, PRODGATE_LOG_LEVEL
package config
