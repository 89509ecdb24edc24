package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"log_file": "/tmp/vault.log"
		},
		"account": { "uid": "uid-1", "email": "user@example.com" },
		"crypto": { "kdf": "argon2id", "argon_time": 2, "parallelism": 6 },
		"session": { "idle_timeout": "2m", "unlock_burst": 4 },
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s"
		},
		"storage": {
			"envelope_backend": "sqlite",
			"db": { "dsn": "/var/lib/vault.db" },
			"mongo": { "uri": "mongodb://m", "database": "d", "collection": "c" }
		},
		"adapter": { "http_address": "http://localhost:8080", "request_timeout": 5000000000 },
		"workers": { "auto_lock_interval": "20s" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "/tmp/vault.log", cfg.App.LogFile)
	assert.Equal(t, "uid-1", cfg.Account.UID)
	assert.Equal(t, "user@example.com", cfg.Account.Email)
	assert.Equal(t, "argon2id", cfg.Crypto.KDF)
	assert.Equal(t, uint32(2), cfg.Crypto.ArgonTime)
	assert.Equal(t, 6, cfg.Crypto.Parallelism)
	assert.Equal(t, 2*time.Minute, cfg.Session.IdleTimeout)
	assert.Equal(t, 4, cfg.Session.UnlockBurst)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, BackendSQLite, cfg.Storage.EnvelopeBackend)
	assert.Equal(t, "/var/lib/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, Mongo{URI: "mongodb://m", Database: "d", Collection: "c"}, cfg.Storage.Mongo)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 20*time.Second, cfg.Workers.AutoLockInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"session": {"idle_timeout": "later"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
