package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/cardboard/internal/flagx"
)

var cliFlags = []string{"-a", "-i", "-t", "-f", "-l"}

// parseFlags populates Config fields from the short command-line flags.
// Malformed values panic.
func parseFlags(config *Config, args []string) {
	fs := flag.NewFlagSet("cli", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "address and port of the server")
	pollInterval := fs.Int("i", int(config.UnreadPollInterval.Seconds()), "unread poll interval (in seconds)")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&config.CachePath, "f", config.CachePath, "local cache file")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, cliFlags)); err != nil {
		panic(err)
	}

	config.UnreadPollInterval = time.Duration(*pollInterval) * time.Second
	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
