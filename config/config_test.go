package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_PORT", "ENV", "STORE_DRIVER", "DATABASE_URL", "MONGODB_URI", "DATABASE_NAME", "STORE_TIMEOUT", "REDIS_ADDR", "MAX_REQUESTS_PER_MIN"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "mongo", cfg.StoreDriver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "servicesDB", cfg.DatabaseName)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 100, cfg.MaxRequestsPerMin)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "ratings", cfg.RatingEventsChannel)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("STORE_TIMEOUT", "750ms")
	t.Setenv("MAX_REQUESTS_PER_MIN", "30")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, 750*time.Millisecond, cfg.StoreTimeout)
	assert.Equal(t, 30, cfg.MaxRequestsPerMin)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadMongoURIAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "mongodb://legacy:27017")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "mongodb://legacy:27017", cfg.DatabaseURL)

	t.Setenv("DATABASE_URL", "mongodb://primary:27017")
	cfg, err = Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "mongodb://primary:27017", cfg.DatabaseURL)
}

func TestIsProduction(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig = Config{Env: "production"}
	assert.True(t, IsProduction())
	AppConfig = Config{Env: "staging"}
	assert.False(t, IsProduction())
}
