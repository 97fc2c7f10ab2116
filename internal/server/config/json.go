package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration accepts either a Go duration string ("15m") or an integer number
// of nanoseconds when unmarshalled from JSON.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

// JsonConfig is the on-disk shape of the configuration file. Empty values
// leave the corresponding Config field untouched.
type JsonConfig struct {
	HTTPAddr        string   `json:"http_addr"`
	GRPCAddr        string   `json:"grpc_addr"`
	DatabaseDSN     string   `json:"database_dsn"`
	DatabaseName    string   `json:"database_name"`
	RedisAddr       string   `json:"redis_addr"`
	RedisPassword   string   `json:"redis_password"`
	RedisDB         *int     `json:"redis_db"`
	CacheTTL        Duration `json:"cache_ttl"`
	RateLimit       int      `json:"rate_limit"`
	RateWindow      Duration `json:"rate_window"`
	StaticDir       string   `json:"static_dir"`
	IndexFile       string   `json:"index_file"`
	ShutdownTimeout Duration `json:"shutdown_timeout"`
	HealthInterval  Duration `json:"health_interval"`
	LogLevel        string   `json:"log_level"`
}

// parseJson overlays values from the file named by -c / -config.
// It panics when the file cannot be read or is not valid JSON.
func parseJson(config *Config) {
	path := configFilePath()
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

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.GRPCAddr, c.GRPCAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.DatabaseName, c.DatabaseName)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.RedisPassword, c.RedisPassword)
	if c.RedisDB != nil {
		config.RedisDB = *c.RedisDB
	}
	setDuration(&config.CacheTTL, c.CacheTTL)
	if c.RateLimit > 0 {
		config.RateLimit = c.RateLimit
	}
	setDuration(&config.RateWindow, c.RateWindow)
	setString(&config.StaticDir, c.StaticDir)
	setString(&config.IndexFile, c.IndexFile)
	setDuration(&config.ShutdownTimeout, c.ShutdownTimeout)
	setDuration(&config.HealthInterval, c.HealthInterval)
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v Duration) {
	if v.Duration > 0 {
		*dst = v.Duration
	}
}
