// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the union of every setting the server and the client
// read. It is filled from environment variables, flags and a JSON file, then
// narrowed into [ServerConfig] or [ClientConfig].
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Account Account `envPrefix:"ACCOUNT_"`
	Crypto  Crypto  `envPrefix:"CRYPTO_"`
	Session Session `envPrefix:"SESSION_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional JSON config file (CONFIG, -c, -config).
	JSONFilePath string `env:"CONFIG"`
}

// App holds token parameters, the reported version and log settings.
type App struct {
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
	// Env: APP_VERSION
	Version string `env:"VERSION"`
	// LogLevel is a zerolog level name. Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
	// LogFile is where the client writes its log. Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Account is the identity the client acts for. UID keys the envelope
// document; UID and Email feed the export key context.
type Account struct {
	// Env: ACCOUNT_UID
	UID string `env:"UID"`
	// Env: ACCOUNT_EMAIL
	Email string `env:"EMAIL"`
}

// Crypto tunes key derivation.
type Crypto struct {
	// KDF is the derivation used for new blobs: "argon2id" or "pbkdf2-sha256".
	// Env: CRYPTO_KDF
	KDF string `env:"KDF"`
	// Env: CRYPTO_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`
	// ArgonMemory in KiB. Env: CRYPTO_ARGON_MEMORY
	ArgonMemory uint32 `env:"ARGON_MEMORY"`
	// Env: CRYPTO_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`
	// Env: CRYPTO_PBKDF2_ITERATIONS
	PBKDF2Iterations int `env:"PBKDF2_ITERATIONS"`
	// Parallelism bounds concurrent re-seals during rotation and import.
	// Env: CRYPTO_PARALLELISM
	Parallelism int `env:"PARALLELISM"`
}

// Session controls how long an unlocked vault stays unlocked and how often
// unlock may be attempted.
type Session struct {
	// Env: SESSION_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`
	// UnlockInterval is the refill period of the unlock attempt bucket.
	// Env: SESSION_UNLOCK_INTERVAL
	UnlockInterval time.Duration `env:"UNLOCK_INTERVAL"`
	// Env: SESSION_UNLOCK_BURST
	UnlockBurst int `env:"UNLOCK_BURST"`
}

// Storage selects and configures persistence backends.
type Storage struct {
	// EnvelopeBackend is where envelope documents live:
	// "http", "sqlite", "postgres" or "mongo".
	// Env: STORAGE_ENVELOPE_BACKEND
	EnvelopeBackend string `env:"ENVELOPE_BACKEND"`

	DB    DB    `envPrefix:"DB_"`
	Mongo Mongo `envPrefix:"MONGO_"`
}

// DB holds SQL connection settings. On the client DSN is the SQLite file.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Mongo holds MongoDB connection settings.
type Mongo struct {
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`
	// Env: STORAGE_MONGO_COLLECTION
	Collection string `env:"COLLECTION"`
}

// Server holds listener addresses and the request timeout.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter configures the client's connection to the envelope server.
type Adapter struct {
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// Token is the bearer token issued for Account.UID. Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers configures background jobs.
type Workers struct {
	// AutoLockInterval is how often idle sessions are checked.
	// Env: WORKERS_AUTO_LOCK_INTERVAL
	AutoLockInterval time.Duration `env:"AUTO_LOCK_INTERVAL"`
}

// Envelope backends.
const (
	BackendHTTP     = "http"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// GetStructuredConfig merges env, flags and the JSON file (first non-zero
// value wins, in that order).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
