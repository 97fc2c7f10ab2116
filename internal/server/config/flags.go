package config

import (
	"flag"
	"os"
	"time"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-g string   gRPC health bind address, empty disables
//	-d string   store DSN (mongodb://, postgres://, memory://)
//	-n string   MongoDB database name
//	-r string   Redis address for the user cache, empty disables
//	-t int      user cache TTL, minutes
//	-l int      requests allowed per client per window on /api
//	-w int      rate limit window, minutes
//	-s string   static files directory served under /public
//	-i string   landing page file served at /
//	-v string   log level
//
// Duration flags are accepted as integers in minutes and then converted to
// time.Duration values.
func parseFlags(config *Config) {
	args := filterArgs(os.Args[1:], []string{"-a", "-g", "-d", "-n", "-r", "-t", "-l", "-w", "-s", "-i", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run HTTP server")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "address and port to run gRPC health server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabaseName, "n", config.DatabaseName, "database name")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	cacheTTL := fs.Int("t", int(config.CacheTTL.Minutes()), "cache ttl (in minutes)")
	fs.IntVar(&config.RateLimit, "l", config.RateLimit, "requests per rate window")
	rateWindow := fs.Int("w", int(config.RateWindow.Minutes()), "rate window (in minutes)")
	fs.StringVar(&config.StaticDir, "s", config.StaticDir, "static files directory")
	fs.StringVar(&config.IndexFile, "i", config.IndexFile, "landing page file")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// minute flags only override when given, so sub-minute values from JSON survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.CacheTTL = time.Duration(*cacheTTL) * time.Minute
		case "w":
			config.RateWindow = time.Duration(*rateWindow) * time.Minute
		}
	})
}
