package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "MONGO_CONNECT_URI", "DATABASE_DSN", "DATABASE_NAME", "GRPC_ADDR",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":3000", c.HTTPAddr)
	assert.Equal(t, ":50051", c.GRPCAddr)
	assert.Equal(t, "mongodb://localhost:27017", c.DatabaseDSN)
	assert.Equal(t, "exercisetracker", c.DatabaseName)
	assert.Empty(t, c.RedisAddr)
	assert.Equal(t, 10*time.Minute, c.CacheTTL)
	assert.Equal(t, 50, c.RateLimit)
	assert.Equal(t, 15*time.Minute, c.RateWindow)
	assert.Equal(t, "public", c.StaticDir)
	assert.Equal(t, "views/index.html", c.IndexFile)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.Equal(t, 15*time.Second, c.HealthInterval)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	clearEnv(t)
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}

func TestLoadConfig_Precedence(t *testing.T) {
	clearEnv(t)
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, t.TempDir(), "cfg.json", map[string]any{
		"http_addr":     ":7000",
		"database_name": "from_json",
		"log_level":     "debug",
	})
	t.Setenv("DATABASE_NAME", "from_env")
	t.Setenv("PORT", "8080")
	os.Args = []string{"testbin", "-c", path, "-a", ":9000"}

	c := LoadConfig()

	assert.Equal(t, ":9000", c.HTTPAddr, "flags beat env and json")
	assert.Equal(t, "from_env", c.DatabaseName, "env beats json")
	assert.Equal(t, "debug", c.LogLevel, "json beats defaults")
}
