// Package config loads runtime configuration for the folio client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c or -config.
//  3. Environment: FOLIO_API_BASE_URL, FOLIO_STORAGE_PATH, FOLIO_LOG_LEVEL.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the portfolio API
//	-s string   path of the local storage database
//	-t int      request timeout (seconds)
//	-r int      attempts for GET requests
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so "10s" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "https://portfolio.example.com/api",
//	  "storage_path": "/home/me/.folio.db",
//	  "request_timeout": "10s",
//	  "retry_attempts": 3,
//	  "log_level": "debug"
//	}
//
// A file ending in .yaml or .yml uses the same keys:
//
//	api_base_url: https://portfolio.example.com/api
//	request_timeout: 10s
//
// Malformed JSON or flag values panic; the client cannot start with a
// half-applied configuration.
package config
