// Package config loads runtime configuration for the CardBoard CLI.
//
// Sources, lowest precedence first:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file passed with -c or -config.
//  3. CARDBOARD_* environment variables.
//  4. Command-line flags.
//
// Supported flags
//
//	-a string   address:port of the CardBoard gRPC endpoint
//	-i int      unread notification poll interval (seconds)
//	-t int      per-request timeout (seconds)
//	-f string   path of the local SQLite cache
//	-l string   log level
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "unread_poll_interval": "30s",
//	  "cache_path": "/home/me/.cache/cardboard.db"
//	}
package config
