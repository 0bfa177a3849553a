package config

import "time"

// Config holds runtime settings for the CardBoard CLI.
type Config struct {
	ServerEndpointAddr string        `env:"SERVER_ADDR"`
	UnreadPollInterval time.Duration `env:"POLL_INTERVAL"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
	CachePath          string        `env:"CACHE_PATH"`
	LogLevel           string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.UnreadPollInterval = 30 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.CachePath = "cardboard_cache.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config from defaults, then overlays the JSON file,
// CARDBOARD_* environment variables and flags found in args. Later sources
// take precedence over earlier ones.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
