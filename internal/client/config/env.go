package config

import "github.com/caarlos0/env/v11"

func parseEnv(config *Config) {
	if err := env.ParseWithOptions(config, env.Options{Prefix: "CARDBOARD_"}); err != nil {
		panic(err)
	}
}
