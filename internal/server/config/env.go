package config

import (
	"github.com/caarlos0/env/v11"
)

const envPrefix = "CARDBOARD_"

// parseEnv overlays CARDBOARD_* environment variables. Unset variables
// leave the current value alone.
func parseEnv(config *Config) {
	if err := env.ParseWithOptions(config, env.Options{Prefix: envPrefix}); err != nil {
		panic(err)
	}
}
