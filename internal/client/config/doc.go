// Package config loads runtime configuration for the PayTrack CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//
// Supported environment variables
//
//	PAYTRACK_API_URL          base URL of the REST API
//	PAYTRACK_REQUEST_TIMEOUT  request timeout as a Go duration, e.g. "10s"
//	PAYTRACK_DB_PATH          path of the local session database
package config
