// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/models"
)

const entriesTable = "vault_entries"

var entryColumns = []string{
	"id",
	"account_id",
	"title",
	"username",
	"website",
	"category",
	"tags",
	"notes",
	"custom_fields",
	"is_favorite",
	"password_ciphertext",
	"password_iv",
	"password_auth_tag",
	"password_salt",
	"password_kdf",
	"created_at",
	"updated_at",
}

const entryUpsertSuffix = `ON CONFLICT (account_id, id) DO UPDATE SET
	title = excluded.title,
	username = excluded.username,
	website = excluded.website,
	category = excluded.category,
	tags = excluded.tags,
	notes = excluded.notes,
	custom_fields = excluded.custom_fields,
	is_favorite = excluded.is_favorite,
	password_ciphertext = excluded.password_ciphertext,
	password_iv = excluded.password_iv,
	password_auth_tag = excluded.password_auth_tag,
	password_salt = excluded.password_salt,
	password_kdf = excluded.password_kdf,
	updated_at = excluded.updated_at`

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type entryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEntryRepository returns an [EntryRepository] over the vault_entries
// table of db.
func NewEntryRepository(db *DB, log *logger.Logger) EntryRepository {
	return &entryRepository{db: db, logger: log}
}

func (r *entryRepository) SaveEntry(ctx context.Context, entry models.VaultEntry) error {
	if err := r.upsert(ctx, r.db, entry); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entryRepository.SaveEntry").
			Str("entry_id", entry.ID).
			Msg("error saving entry")
		return err
	}
	return nil
}

func (r *entryRepository) SaveEntries(ctx context.Context, accountID string, entries []models.VaultEntry) error {
	log := logger.FromContext(ctx).With().Str("func", "entryRepository.SaveEntries").Logger()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return r.db.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, entry := range entries {
		entry.AccountID = accountID
		if err := r.upsert(ctx, tx, entry); err != nil {
			log.Err(err).Str("entry_id", entry.ID).Msg("error saving entry in batch")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return r.db.wrap(ErrCommitingTransaction, err)
	}

	log.Debug().Int("count", len(entries)).Msg("entries saved")
	return nil
}

func (r *entryRepository) upsert(ctx context.Context, ex execer, entry models.VaultEntry) error {
	tags, err := json.Marshal(nonNilTags(entry.Tags))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	fields, err := json.Marshal(nonNilFields(entry.CustomFields))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := r.db.builder.
		Insert(entriesTable).
		Columns(entryColumns...).
		Values(
			entry.ID,
			entry.AccountID,
			entry.Title,
			entry.Username,
			entry.Website,
			entry.Category,
			string(tags),
			entry.Notes,
			string(fields),
			entry.IsFavorite,
			entry.Password.Ciphertext,
			entry.Password.IV,
			entry.Password.AuthTag,
			entry.Password.Salt,
			entry.Password.KDF,
			entry.CreatedAt,
			entry.UpdatedAt,
		).
		Suffix(entryUpsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return r.db.wrap(ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrEntryNotSaved
	}

	return nil
}

func (r *entryRepository) GetEntry(ctx context.Context, accountID, id string) (models.VaultEntry, error) {
	query, args, err := r.db.builder.
		Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"account_id": accountID, "id": id}).
		ToSql()
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultEntry{}, ErrEntryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "entryRepository.GetEntry").Msg("error reading entry")
		return models.VaultEntry{}, r.db.wrap(ErrScanningRow, err)
	}

	return entry, nil
}

func (r *entryRepository) ListEntries(ctx context.Context, accountID string) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx).With().Str("func", "entryRepository.ListEntries").Logger()

	query, args, err := r.db.builder.
		Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error querying entries")
		return nil, r.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.VaultEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			log.Err(err).Msg("error scanning entry")
			return nil, r.db.wrap(ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.wrap(ErrScanningRows, err)
	}

	return entries, nil
}

func (r *entryRepository) DeleteEntry(ctx context.Context, accountID, id string) error {
	query, args, err := r.db.builder.
		Delete(entriesTable).
		Where(sq.Eq{"account_id": accountID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "entryRepository.DeleteEntry").Msg("error deleting entry")
		return r.db.wrap(ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *entryRepository) ReplacePasswords(
	ctx context.Context,
	accountID string,
	blobs map[string]models.EncryptedBlob,
	beforeCommit func(ctx context.Context) error,
) error {
	log := logger.FromContext(ctx).With().Str("func", "entryRepository.ReplacePasswords").Logger()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return r.db.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	ids := make([]string, 0, len(blobs))
	for id := range blobs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		blob := blobs[id]
		query, args, err := r.db.builder.
			Update(entriesTable).
			Set("password_ciphertext", blob.Ciphertext).
			Set("password_iv", blob.IV).
			Set("password_auth_tag", blob.AuthTag).
			Set("password_salt", blob.Salt).
			Set("password_kdf", blob.KDF).
			Where(sq.Eq{"account_id": accountID, "id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("entry_id", id).Msg("error replacing password")
			return r.db.wrap(ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			log.Error().Str("entry_id", id).Msg("entry vanished during password replacement")
			return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
		}
	}

	if beforeCommit != nil {
		if err := beforeCommit(r.db.withTx(ctx, tx)); err != nil {
			log.Err(err).Msg("pre-commit hook failed, rolling back")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return r.db.wrap(ErrCommitingTransaction, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.VaultEntry, error) {
	var (
		e            models.VaultEntry
		tags, fields string
	)

	err := row.Scan(
		&e.ID,
		&e.AccountID,
		&e.Title,
		&e.Username,
		&e.Website,
		&e.Category,
		&tags,
		&e.Notes,
		&fields,
		&e.IsFavorite,
		&e.Password.Ciphertext,
		&e.Password.IV,
		&e.Password.AuthTag,
		&e.Password.Salt,
		&e.Password.KDF,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return models.VaultEntry{}, err
	}

	if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: tags: %w", ErrInvalidDocument, err)
	}
	if err := json.Unmarshal([]byte(fields), &e.CustomFields); err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: custom fields: %w", ErrInvalidDocument, err)
	}

	return e, nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func nonNilFields(fields []models.CustomField) []models.CustomField {
	if fields == nil {
		return []models.CustomField{}
	}
	return fields
}
