package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DEEPSEEK_API_KEY", "test-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "deepseek", cfg.LLMProvider)
	assert.Equal(t, "https://api.deepseek.com/v1/chat/completions", cfg.DeepSeekURL)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitSpan)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DEEPSEEK_API_KEY", "test-key")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadRequiresProviderKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DEEPSEEK_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEEPSEEK_API_KEY")

	t.Setenv("LLM_PROVIDER", "gemini")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")

	t.Setenv("GEMINI_API_KEY", "gem-key")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.LLMProvider)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LLM_PROVIDER", "oracle")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM_PROVIDER")
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LLM_TIMEOUT", "10s")
	t.Setenv("RATE_LIMIT", "3")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 3, cfg.RateLimit)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5432", DBUser: "app",
		DBPassword: "pw", DBName: "wisewallet", DBSSLMode: "disable",
	}

	assert.Equal(t,
		"host=db port=5432 user=app password=pw dbname=wisewallet sslmode=disable",
		cfg.DSN())
}
