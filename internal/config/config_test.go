package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dangerclosesec/roofdesk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendFixture, cfg.Backend)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, "log", cfg.Email.Provider)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Empty(t, cfg.Server.AllowedOrigins)
	assert.Empty(t, cfg.JWT.Secret)
	assert.Contains(t, cfg.DSN(), "host=localhost port=5432")
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("BACKEND", "store")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cr3t-from-vault")
	t.Setenv("JWT_EXPIRY_PERIOD", "2h")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://app.taklaget.dk,https://admin.taklaget.dk")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendStore, cfg.Backend)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, []string{"https://app.taklaget.dk", "https://admin.taklaget.dk"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Contains(t, cfg.DSN(), "@tcp(db.internal:3306)/roofdesk?parseTime=true")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roofdesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend: store
jwt:
  secret: file-secret
database:
  dsn: postgres://u:p@localhost:5432/roofdesk
  table_prefix: rd_
email:
  provider: smtp
smtp:
  host: smtp.example.com
`), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendStore, cfg.Backend)
	assert.Equal(t, "postgres://u:p@localhost:5432/roofdesk", cfg.DSN())
	assert.Equal(t, "rd_", cfg.Database.TablePrefix)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	t.Run("backend", func(t *testing.T) {
		t.Setenv("BACKEND", "firebase")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("store backend without jwt secret", func(t *testing.T) {
		t.Setenv("BACKEND", "store")
		_, err := config.Load()
		assert.EqualError(t, err, "jwt.secret must be set when backend is store")
	})

	t.Run("store backend with placeholder jwt secret", func(t *testing.T) {
		t.Setenv("BACKEND", "store")
		t.Setenv("JWT_SECRET", "your-secret-key")
		_, err := config.Load()
		assert.ErrorContains(t, err, "placeholder")
	})

	t.Run("sendgrid without key", func(t *testing.T) {
		t.Setenv("EMAIL_PROVIDER", "sendgrid")
		_, err := config.Load()
		assert.Error(t, err)
	})
}
