package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 604800, cfg.JWTAccessExpSecond)
	assert.Equal(t, 7*24*time.Hour, cfg.AccessTokenTTL())
	assert.Equal(t, 5*time.Minute, cfg.TrackCacheTTL)
	assert.Empty(t, cfg.RedisHost)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoad_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.env")
	content := "APP_PORT=9090\nPOSTGRES_HOST=db\nPOSTGRES_PORT=6543\nKAFKA_BROKERS=k1:9092,k2:9092\nJWT_ACCESS_EXP_SECOND=60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	for _, key := range []string{"APP_PORT", "POSTGRES_HOST", "POSTGRES_PORT", "KAFKA_BROKERS", "JWT_ACCESS_EXP_SECOND"} {
		key := key
		t.Cleanup(func() { os.Unsetenv(key) })
	}

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.Addr())
	assert.Equal(t, "postgres://postgres:postgres@db:6543/soulsync?sslmode=disable", cfg.PostgresDSN())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, time.Minute, cfg.AccessTokenTTL())
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("POSTGRES_PORT", "not-a-number")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestRedisAddr(t *testing.T) {
	cfg := &Config{RedisHost: "cache", RedisPort: 6380}
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
}
