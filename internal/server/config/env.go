package config

import (
	"os"
	"strconv"
	"strings"
)

// parseEnv overlays values from the process environment.
//
// PORT becomes ":<PORT>" for HTTPAddr. MONGO_CONNECT_URI is honoured for
// compatibility with existing deployments; DATABASE_DSN wins when both are set.
func parseEnv(config *Config) {
	if port, ok := lookup("PORT"); ok {
		if strings.Contains(port, ":") {
			config.HTTPAddr = port
		} else {
			config.HTTPAddr = ":" + port
		}
	}
	if v, ok := lookup("MONGO_CONNECT_URI"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := lookup("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := lookup("DATABASE_NAME"); ok {
		config.DatabaseName = v
	}
	if v, ok := lookup("GRPC_ADDR"); ok {
		config.GRPCAddr = v
	}
	if v, ok := lookup("REDIS_ADDR"); ok {
		config.RedisAddr = v
	}
	if v, ok := lookup("REDIS_PASSWORD"); ok {
		config.RedisPassword = v
	}
	if v, ok := lookup("REDIS_DB"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.RedisDB = n
		}
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		config.LogLevel = v
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
