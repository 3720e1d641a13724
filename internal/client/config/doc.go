// Package config loads runtime configuration for the cookbook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. COOKBOOK_* environment variables (a .env file is loaded by main).
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the recipe API
//	-t int      request timeout (seconds)
//	-d string   path of the local sqlite database
//	-p int      parallel recipe fetches when resolving favorites
//	-r float    requests per second, 0 for unlimited
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either
// a string like "15s" or integer nanoseconds. Absent keys keep their
// current value:
//
//	{
//	  "api_base_url": "http://localhost:5000",
//	  "request_timeout": "15s",
//	  "database_path": "cookbook.db",
//	  "max_parallel_fetches": 8,
//	  "requests_per_second": 0,
//	  "log_level": "info"
//	}
//
// # Environment
//
//	COOKBOOK_API_BASE_URL, COOKBOOK_REQUEST_TIMEOUT (e.g. "20s"),
//	COOKBOOK_DATABASE_PATH, COOKBOOK_MAX_PARALLEL_FETCHES,
//	COOKBOOK_REQUESTS_PER_SECOND, COOKBOOK_LOG_LEVEL
//
// Invalid JSON, environment values or flags panic at startup.
package config
