// Package config handles configuration for the exercise tracker server,
// including defaults, JSON overlay, environment variables and command-line
// flags.
package config

import "time"

// Config holds runtime settings for the exercise tracker server.
//
// Fields:
//   - HTTPAddr: bind address for the REST API and landing page.
//   - GRPCAddr: bind address for the gRPC health service; empty disables it.
//   - DatabaseDSN: store connection string. The scheme selects the backend:
//     mongodb:// or mongodb+srv://, postgres:// or postgresql://, memory://.
//   - DatabaseName: MongoDB database name (ignored by other backends).
//   - RedisAddr / RedisPassword / RedisDB / CacheTTL: optional user cache;
//     an empty RedisAddr disables caching.
//   - RateLimit / RateWindow: per-client request budget on /api.
//   - StaticDir / IndexFile: landing page assets.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
//   - HealthInterval: how often the store is pinged for the health service.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	HTTPAddr        string
	GRPCAddr        string
	DatabaseDSN     string
	DatabaseName    string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTL        time.Duration
	RateLimit       int
	RateWindow      time.Duration
	StaticDir       string
	IndexFile       string
	ShutdownTimeout time.Duration
	HealthInterval  time.Duration
	LogLevel        string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":3000"
	c.GRPCAddr = ":50051"
	c.DatabaseDSN = "mongodb://localhost:27017"
	c.DatabaseName = "exercisetracker"
	c.RedisAddr = ""
	c.RedisPassword = ""
	c.RedisDB = 0
	c.CacheTTL = 10 * time.Minute
	c.RateLimit = 50
	c.RateWindow = 15 * time.Minute
	c.StaticDir = "public"
	c.IndexFile = "views/index.html"
	c.ShutdownTimeout = 10 * time.Second
	c.HealthInterval = 15 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
