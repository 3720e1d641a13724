package config

import "github.com/kelseyhightower/envconfig"

const envPrefix = "COOKBOOK"

// parseEnv overlays Config with COOKBOOK_* environment variables. Unset
// variables leave the current values untouched. Panics on malformed values.
func parseEnv(cfg *Config) {
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		panic(err)
	}
}
