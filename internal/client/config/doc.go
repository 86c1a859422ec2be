// Package config loads runtime configuration for the FinKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), with an optional .env file
//     loaded via godotenv.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local SQLite snapshot cache
//
// Environment variables
//
//	FINKEEPER_API_URL    base URL of the backend REST API
//	FINKEEPER_TIMEOUT    request timeout, e.g. "15s"
//	FINKEEPER_CACHE_DB   path of the local SQLite snapshot cache
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "request_timeout": "15s",
//	  "cache_db_path": "finkeeper.db"
//	}
package config
