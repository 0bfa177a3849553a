// Package cli is the interactive CardBoard terminal client.
//
// App wires the config, the local SQLite cache and the gRPC client, then
// serves a line-oriented REPL. While the REPL runs, a background watcher
// polls the unread notification count and flips the prompt between online
// and offline mode. When the server cannot be reached, "cards" falls back
// to the last board seen online.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or ctx is cancelled.
package cli
