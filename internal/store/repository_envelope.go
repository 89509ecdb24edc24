// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/models"
)

const envelopesTable = "envelopes"

var envelopeColumns = []string{
	"account_id",
	"encrypted_master_password",
	"salt",
	"iv",
	"auth_tag",
	"kdf",
	"version",
	"created_at",
	"updated_at",
}

type envelopeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEnvelopeRepository returns an [EnvelopeStore] backed by the envelopes
// table of db. Works on both Postgres and SQLite.
func NewEnvelopeRepository(db *DB, log *logger.Logger) EnvelopeStore {
	return &envelopeRepository{db: db, logger: log}
}

func (r *envelopeRepository) GetEnvelope(ctx context.Context, accountID string) (models.Envelope, error) {
	log := logger.FromContext(ctx).With().Str("func", "envelopeRepository.GetEnvelope").Logger()

	query, args, err := r.db.builder.
		Select(envelopeColumns...).
		From(envelopesTable).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var env models.Envelope
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&env.AccountID,
		&env.EncryptedMasterPassword,
		&env.Salt,
		&env.IV,
		&env.AuthTag,
		&env.KDF,
		&env.Version,
		&env.CreatedAt,
		&env.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Envelope{}, ErrEnvelopeNotFound
	}
	if err != nil {
		log.Err(err).Str("sqlstate", postgresError(err)).Msg("error reading envelope")
		return models.Envelope{}, r.db.wrap(ErrScanningRow, err)
	}

	return env, nil
}

func (r *envelopeRepository) PutEnvelope(ctx context.Context, env models.Envelope) error {
	log := logger.FromContext(ctx).With().Str("func", "envelopeRepository.PutEnvelope").Logger()

	query, args, err := r.db.builder.
		Insert(envelopesTable).
		Columns(envelopeColumns...).
		Values(
			env.AccountID,
			env.EncryptedMasterPassword,
			env.Salt,
			env.IV,
			env.AuthTag,
			env.KDF,
			env.Version,
			env.CreatedAt,
			env.UpdatedAt,
		).
		Suffix(`ON CONFLICT (account_id) DO UPDATE SET
			encrypted_master_password = excluded.encrypted_master_password,
			salt = excluded.salt,
			iv = excluded.iv,
			auth_tag = excluded.auth_tag,
			kdf = excluded.kdf,
			version = excluded.version,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.execer(ctx).ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("sqlstate", postgresError(err)).Msg("error writing envelope")
		return r.db.wrap(ErrExecutingStatement, err)
	}

	log.Debug().Str("account_id", env.AccountID).Msg("envelope stored")
	return nil
}

func (r *envelopeRepository) DeleteEnvelope(ctx context.Context, accountID string) error {
	query, args, err := r.db.builder.
		Delete(envelopesTable).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "envelopeRepository.DeleteEnvelope").Msg("error deleting envelope")
		return r.db.wrap(ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrEnvelopeNotFound
	}

	return nil
}
