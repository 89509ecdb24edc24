// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.EnvelopeBackend {
	case BackendPostgres, BackendSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: dsn is required for %s", ErrInvalidStorageConfigs, cfg.Storage.EnvelopeBackend)
		}
	case BackendMongo:
		if cfg.Storage.Mongo.URI == "" {
			return fmt.Errorf("%w: mongo uri is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported envelope backend %q", ErrInvalidStorageConfigs, cfg.Storage.EnvelopeBackend)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Account.UID == "" || cfg.Account.Email == "" {
		return fmt.Errorf("%w: uid and email are required", ErrInvalidAccountConfigs)
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return fmt.Errorf("%w: a file dsn is required for the local vault", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.EnvelopeBackend {
	case BackendHTTP:
		if cfg.Adapter.HTTPAddress == "" {
			return fmt.Errorf("%w: adapter address is required", ErrInvalidAdapterConfigs)
		}
	case BackendSQLite:
	case BackendMongo:
		if cfg.Storage.Mongo.URI == "" {
			return fmt.Errorf("%w: mongo uri is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported envelope backend %q", ErrInvalidStorageConfigs, cfg.Storage.EnvelopeBackend)
	}

	switch cfg.Crypto.KDF {
	case "", "argon2id", "pbkdf2-sha256":
	default:
		return fmt.Errorf("%w: unsupported kdf %q", ErrInvalidCryptoConfigs, cfg.Crypto.KDF)
	}

	if cfg.Session.UnlockBurst < 1 || cfg.Crypto.Parallelism < 1 {
		return fmt.Errorf("%w: unlock burst and parallelism must be positive", ErrInvalidSessionConfigs)
	}

	return nil
}
