// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied when a value is not configured anywhere.
const (
	DefaultIdleTimeout      = 5 * time.Minute
	DefaultUnlockInterval   = 30 * time.Second
	DefaultUnlockBurst      = 5
	DefaultParallelism      = 4
	DefaultAutoLockInterval = 30 * time.Second
	DefaultRequestTimeout   = 10 * time.Second
	DefaultTokenDuration    = 24 * time.Hour
	DefaultMongoDatabase    = "passenvelope"
	DefaultMongoCollection  = "envelopes"
)

// ServerConfig is the envelope document server's view of the config.
type ServerConfig struct {
	App     App
	Server  Server
	Storage Storage
}

// ClientConfig is the vault client's view of the config.
type ClientConfig struct {
	App     App
	Account Account
	Crypto  Crypto
	Session Session
	Storage Storage
	Adapter Adapter
	Workers Workers
}

// GetServerConfig loads env, flags and JSON, applies defaults and validates
// the server settings.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

// GetClientConfig loads env and the JSON file at jsonPath (CONFIG wins when
// both are set), applies defaults and validates the client settings.
// Flags are left to the CLI.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSONPath(jsonPath).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// GetTokenConfig loads the App section from env and the JSON file at
// jsonPath for issuing bearer tokens.
func GetTokenConfig(jsonPath string) (*App, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSONPath(jsonPath).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newTokenConfig(cfg)
}

func newTokenConfig(cfg *StructuredConfig) (*App, error) {
	app := cfg.App
	if app.TokenDuration == 0 {
		app.TokenDuration = DefaultTokenDuration
	}
	if app.TokenSignKey == "" || app.TokenIssuer == "" {
		return nil, fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs)
	}
	return &app, nil
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	if serverCfg.Storage.EnvelopeBackend == "" {
		serverCfg.Storage.EnvelopeBackend = BackendPostgres
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if serverCfg.App.TokenDuration == 0 {
		serverCfg.App.TokenDuration = DefaultTokenDuration
	}
	applyMongoDefaults(&serverCfg.Storage.Mongo)

	return serverCfg, serverCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:     cfg.App,
		Account: cfg.Account,
		Crypto:  cfg.Crypto,
		Session: cfg.Session,
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
	}

	if clientCfg.Storage.EnvelopeBackend == "" {
		clientCfg.Storage.EnvelopeBackend = BackendHTTP
	}
	if clientCfg.Session.IdleTimeout == 0 {
		clientCfg.Session.IdleTimeout = DefaultIdleTimeout
	}
	if clientCfg.Session.UnlockInterval == 0 {
		clientCfg.Session.UnlockInterval = DefaultUnlockInterval
	}
	if clientCfg.Session.UnlockBurst == 0 {
		clientCfg.Session.UnlockBurst = DefaultUnlockBurst
	}
	if clientCfg.Crypto.Parallelism == 0 {
		clientCfg.Crypto.Parallelism = DefaultParallelism
	}
	if clientCfg.Workers.AutoLockInterval == 0 {
		clientCfg.Workers.AutoLockInterval = DefaultAutoLockInterval
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	applyMongoDefaults(&clientCfg.Storage.Mongo)

	return clientCfg, clientCfg.validate()
}

func applyMongoDefaults(m *Mongo) {
	if m.Database == "" {
		m.Database = DefaultMongoDatabase
	}
	if m.Collection == "" {
		m.Collection = DefaultMongoCollection
	}
}
