package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/cookbook/internal/flagx"
	"github.com/dmitrijs2005/cookbook/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as a
// string like "15s" or as integer nanoseconds. Pointers tell absent keys
// from zero values.
type JsonConfig struct {
	APIBaseURL         *string         `json:"api_base_url"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	DatabasePath       *string         `json:"database_path"`
	MaxParallelFetches *int            `json:"max_parallel_fetches"`
	RequestsPerSecond  *float64        `json:"requests_per_second"`
	LogLevel           *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config in args. Without such a flag nothing changes.
//
// Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.ConfigPath(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.MaxParallelFetches != nil {
		cfg.MaxParallelFetches = *jc.MaxParallelFetches
	}
	if jc.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *jc.RequestsPerSecond
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
