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
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 12, cfg.Generation.ResultCap)
	assert.Equal(t, 10*time.Minute, cfg.Generation.CacheTTL)
	assert.Equal(t, "0 0 3 * * *", cfg.Audit.Schedule)
	assert.Empty(t, cfg.Redis.Addr)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CORS_ORIGIN", "https://a.test, ,https://b.test")
	t.Setenv("OUTFIT_RESULT_CAP", "5")
	t.Setenv("OUTFIT_CACHE_TTL", "90s")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5, cfg.Generation.ResultCap)
	assert.Equal(t, 90*time.Second, cfg.Generation.CacheTTL)
	assert.Equal(t, 0, cfg.Redis.DB, "invalid integers fall back to the default")
	assert.True(t, cfg.IsProduction())
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9999\nDB_NAME=wardrobe\n"), 0o600))
	// godotenv writes into the process environment.
	t.Cleanup(func() {
		_ = os.Unsetenv("PORT")
		_ = os.Unsetenv("DB_NAME")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "wardrobe", cfg.Database.Name)
}

func TestValidate(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OUTFIT_RESULT_CAP", "0")

	_, err := Load()
	assert.EqualError(t, err, "OUTFIT_RESULT_CAP must be positive")

	cfg := &Config{Server: ServerConfig{Port: "1"}, Generation: GenerationConfig{ResultCap: 1, RatePerMinute: 1, RateBurst: 0}}
	assert.Error(t, cfg.Validate())
}
