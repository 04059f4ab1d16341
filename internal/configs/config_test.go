package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PAGE_SIZE", "")
	os.Unsetenv("PAGE_SIZE")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Browse.PageSize)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "homenest.activity", cfg.RabbitMQ.Exchange)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	for _, k := range []string{"PAGE_SIZE", "SESSION_TTL", "CORS_ALLOWED_ORIGINS", "SESSION_SECRET", "IDENTITY_API_KEY"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "PAGE_SIZE=12\nSESSION_TTL=30m\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test\nSESSION_SECRET=s3cret\nIDENTITY_API_KEY=key\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Browse.PageSize)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Rest.CORSAllowedOrigins)
	assert.NoError(t, cfg.ValidateWeb())
}

func TestLoadConfigValidation(t *testing.T) {
	t.Setenv("RABBITMQ_ENABLED", "true")
	t.Setenv("RABBITMQ_URL", "")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "none.env"))
	assert.Error(t, err)

	t.Setenv("RABBITMQ_ENABLED", "false")
	t.Setenv("PAGE_SIZE", "-3")
	t.Setenv("SESSION_SECRET", "")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Browse.PageSize)
	assert.Error(t, cfg.ValidateWeb())
}

func TestFluentDisabledWithoutHost(t *testing.T) {
	t.Setenv("FLUENTBIT_ENABLED", "true")
	t.Setenv("FLUENTBIT_HOST", "")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.False(t, cfg.FluentBit.Enabled)
}
