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
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, DriverDynamoDB, cfg.Store.Driver)
	assert.Equal(t, "sales", cfg.DynamoDB.SalesTable)
	assert.Equal(t, "audit_logs", cfg.DynamoDB.AuditTable)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL.Duration)
	assert.False(t, cfg.Sales.RevertClearsPayment)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "salesops.toml")
	content := `
[http]
port = "9000"

[store]
driver = "sqlite"
sqlite_path = "/tmp/file.db"

[redis]
addr = "localhost:6379"
idempotency_ttl = "10m"

[sales]
revert_clears_payment = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("REVERT_CLEARS_PAYMENT", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.HTTP.Port)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/file.db", cfg.Store.SQLitePath)
	assert.Equal(t, 10*time.Minute, cfg.Redis.IdempotencyTTL.Duration)
	assert.False(t, cfg.Sales.RevertClearsPayment)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("REVERT_CLEARS_PAYMENT", "maybe")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}
