package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/cardboard/internal/flagx"
)

var serverFlags = []string{"-a", "-w", "-d", "-s", "-t", "-r", "-u", "-p", "-g", "-e", "-i", "-v", "-n", "-l", "-o"}

// parseFlags applies the short command-line flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-w string   HTTP functions bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-u/-p       S3 root user / password
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-i/-v       card icons / avatars bucket names
//	-n duration notification timeout
//	-l string   log level
//	-o string   OTLP/HTTP collector endpoint
func parseFlags(config *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "HTTP functions address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.CardIconsBucket, "i", config.CardIconsBucket, "card icons bucket")
	fs.StringVar(&config.AvatarsBucket, "v", config.AvatarsBucket, "avatars bucket")
	fs.DurationVar(&config.NotificationTimeout, "n", config.NotificationTimeout, "notification insert timeout")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.OTLPEndpoint, "o", config.OTLPEndpoint, "OTLP/HTTP collector endpoint")

	if err := fs.Parse(flagx.FilterArgs(args, serverFlags)); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
}
