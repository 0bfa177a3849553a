package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/cardboard/internal/flagx"
	"github.com/dmitrijs2005/cardboard/internal/timex"
)

// JsonConfig is the on-disk configuration. Absent fields keep their
// current values.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	UnreadPollInterval *timex.Duration `json:"unread_poll_interval"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	CachePath          *string         `json:"cache_path"`
	LogLevel           *string         `json:"log_level"`
}

func parseJson(config *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerEndpointAddr != nil {
		config.ServerEndpointAddr = *c.ServerEndpointAddr
	}
	if c.UnreadPollInterval != nil {
		config.UnreadPollInterval = c.UnreadPollInterval.Duration
	}
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.CachePath != nil {
		config.CachePath = *c.CachePath
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}
