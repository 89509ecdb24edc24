package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientStructured() *StructuredConfig {
	return &StructuredConfig{
		Account: Account{UID: "uid-1", Email: "user@example.com"},
		Storage: Storage{DB: DB{DSN: "/tmp/vault.db"}},
		Adapter: Adapter{HTTPAddress: "http://localhost:8080"},
	}
}

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg, err := newClientConfig(validClientStructured())
	require.NoError(t, err)

	assert.Equal(t, BackendHTTP, cfg.Storage.EnvelopeBackend)
	assert.Equal(t, DefaultIdleTimeout, cfg.Session.IdleTimeout)
	assert.Equal(t, DefaultUnlockInterval, cfg.Session.UnlockInterval)
	assert.Equal(t, DefaultUnlockBurst, cfg.Session.UnlockBurst)
	assert.Equal(t, DefaultParallelism, cfg.Crypto.Parallelism)
	assert.Equal(t, DefaultAutoLockInterval, cfg.Workers.AutoLockInterval)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultMongoCollection, cfg.Storage.Mongo.Collection)
}

func TestNewClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *StructuredConfig)
		want   error
	}{
		{"missing uid", func(c *StructuredConfig) { c.Account.UID = "" }, ErrInvalidAccountConfigs},
		{"missing email", func(c *StructuredConfig) { c.Account.Email = "" }, ErrInvalidAccountConfigs},
		{"missing dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"in-memory dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "file::memory:" }, ErrInvalidStorageConfigs},
		{"http without address", func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"mongo without uri", func(c *StructuredConfig) { c.Storage.EnvelopeBackend = BackendMongo }, ErrInvalidStorageConfigs},
		{"unknown backend", func(c *StructuredConfig) { c.Storage.EnvelopeBackend = "s3" }, ErrInvalidStorageConfigs},
		{"unknown kdf", func(c *StructuredConfig) { c.Crypto.KDF = "md5" }, ErrInvalidCryptoConfigs},
		{"negative burst", func(c *StructuredConfig) { c.Session.UnlockBurst = -1 }, ErrInvalidSessionConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validClientStructured()
			tt.mutate(c)

			_, err := newClientConfig(c)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewClientConfig_SQLiteEnvelopeNeedsNoAdapter(t *testing.T) {
	c := validClientStructured()
	c.Adapter = Adapter{}
	c.Storage.EnvelopeBackend = BackendSQLite

	_, err := newClientConfig(c)
	assert.NoError(t, err)
}

func TestNewServerConfig(t *testing.T) {
	base := func() *StructuredConfig {
		return &StructuredConfig{
			App:     App{TokenSignKey: "k", TokenIssuer: "iss"},
			Server:  Server{HTTPAddress: "localhost:8080"},
			Storage: Storage{DB: DB{DSN: "postgres://x"}},
		}
	}

	cfg, err := newServerConfig(base())
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.Storage.EnvelopeBackend)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)

	noAddr := base()
	noAddr.Server.HTTPAddress = ""
	_, err = newServerConfig(noAddr)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)

	noKey := base()
	noKey.App.TokenSignKey = ""
	_, err = newServerConfig(noKey)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)

	mongo := base()
	mongo.Storage.EnvelopeBackend = BackendMongo
	_, err = newServerConfig(mongo)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)

	mongo.Storage.Mongo.URI = "mongodb://localhost"
	_, err = newServerConfig(mongo)
	assert.NoError(t, err)
}

func TestGetClientConfig_FromJSONFile(t *testing.T) {
	setEnvVars(t, map[string]string{"ACCOUNT_EMAIL": "env@example.com"})
	path := writeTempJSONConfig(t, `{
		"account": {"uid": "json-uid", "email": "json@example.com"},
		"storage": {"envelope_backend": "sqlite", "db": {"dsn": "/tmp/v.db"}}
	}`)

	cfg, err := GetClientConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "json-uid", cfg.Account.UID)
	assert.Equal(t, "env@example.com", cfg.Account.Email)
	assert.Equal(t, BackendSQLite, cfg.Storage.EnvelopeBackend)
}

func TestNewTokenConfig(t *testing.T) {
	cfg, err := newTokenConfig(&StructuredConfig{App: App{TokenSignKey: "k", TokenIssuer: "iss"}})
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenDuration, cfg.TokenDuration)

	_, err = newTokenConfig(&StructuredConfig{App: App{TokenIssuer: "iss"}})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
