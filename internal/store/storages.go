// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-envelope/internal/config"
	"github.com/MKhiriev/go-pass-envelope/internal/logger"
)

// ClientStorages groups the client's local stores. Envelopes is nil unless
// the envelope backend is local (sqlite or mongo); the HTTP backend lives in
// the adapter package.
type ClientStorages struct {
	Entries     EntryRepository
	Envelopes   EnvelopeStore
	ExportFiles ExportFileStorage

	closers []func(context.Context) error
}

// NewClientStorages opens the SQLite vault, migrates it and wires the
// repositories.
func NewClientStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("func", "NewClientStorages").Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := &ClientStorages{
		Entries:     NewEntryRepository(db, log),
		ExportFiles: NewExportFileStorage(log),
		closers:     []func(context.Context) error{func(context.Context) error { return db.Close() }},
	}

	switch cfg.EnvelopeBackend {
	case config.BackendSQLite:
		s.Envelopes = NewEnvelopeRepository(db, log)
	case config.BackendMongo:
		m, err := NewMongoEnvelopeStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection, log)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.Envelopes = m
		s.closers = append(s.closers, m.Close)
	}

	return s, nil
}

// Close releases every connection.
func (s *ClientStorages) Close(ctx context.Context) error {
	var firstErr error
	for _, c := range s.closers {
		if err := c(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ServerStorages holds the envelope document backend of the server.
type ServerStorages struct {
	Envelopes EnvelopeStore
	close     func(context.Context) error
}

// NewServerStorages connects to the configured backend (postgres, sqlite or
// mongo) and migrates SQL backends.
func NewServerStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*ServerStorages, error) {
	log.Info().Str("func", "NewServerStorages").Str("backend", cfg.EnvelopeBackend).Msg("creating server storages...")

	switch cfg.EnvelopeBackend {
	case config.BackendPostgres, config.BackendSQLite:
		var (
			db  *DB
			err error
		)
		if cfg.EnvelopeBackend == config.BackendPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB.DSN, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB.DSN, log)
		}
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.EnvelopeBackend, err)
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &ServerStorages{
			Envelopes: NewEnvelopeRepository(db, log),
			close:     func(context.Context) error { return db.Close() },
		}, nil

	case config.BackendMongo:
		m, err := NewMongoEnvelopeStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection, log)
		if err != nil {
			return nil, err
		}
		return &ServerStorages{Envelopes: m, close: m.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported envelope backend %q", cfg.EnvelopeBackend)
	}
}

// Close releases the backend connection.
func (s *ServerStorages) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
