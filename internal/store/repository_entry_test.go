package store

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/migrations"
	"github.com/MKhiriev/go-pass-envelope/models"
)

func sampleEntry(id string) models.VaultEntry {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.VaultEntry{
		ID:           id,
		AccountID:    "acc-1",
		Title:        "GitHub",
		Username:     "octocat",
		Website:      "https://github.com",
		Category:     "dev",
		Tags:         []string{"work"},
		Notes:        "2fa on",
		CustomFields: []models.CustomField{{Name: "recovery", Value: "abc", Hidden: true}},
		Password: models.EncryptedBlob{
			Ciphertext: []byte("ct"),
			IV:         []byte("0123456789ab"),
			AuthTag:    []byte("0123456789abcdef"),
			Salt:       []byte("0123456789abcdef"),
			KDF:        "argon2id",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func entryRows(entries ...models.VaultEntry) *sqlmock.Rows {
	rows := sqlmock.NewRows(entryColumns)
	for _, e := range entries {
		rows.AddRow(
			e.ID, e.AccountID, e.Title, e.Username, e.Website, e.Category,
			`["work"]`, e.Notes, `[{"name":"recovery","value":"abc","hidden":true}]`, e.IsFavorite,
			e.Password.Ciphertext, e.Password.IV, e.Password.AuthTag, e.Password.Salt, e.Password.KDF,
			e.CreatedAt, e.UpdatedAt,
		)
	}
	return rows
}

func TestEntryRepository_SaveEntry(t *testing.T) {
	db, mock := newTestSQLDB(t, migrations.DialectSQLite)
	repo := NewEntryRepository(db, logger.Nop())
	entry := sampleEntry("e1")

	mock.ExpectExec(`INSERT INTO vault_entries .* ON CONFLICT \(account_id, id\) DO UPDATE SET`).
		WithArgs(
			"e1", "acc-1", "GitHub", "octocat", "https://github.com", "dev",
			`["work"]`, "2fa on", `[{"name":"recovery","value":"abc","hidden":true}]`, false,
			entry.Password.Ciphertext, entry.Password.IV, entry.Password.AuthTag, entry.Password.Salt, "argon2id",
			entry.CreatedAt, entry.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveEntry(testContext(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_SaveEntry_NilTagsStoredAsEmptyArray(t *testing.T) {
	db, mock := newTestSQLDB(t, migrations.DialectSQLite)
	repo := NewEntryRepository(db, logger.Nop())
	entry := sampleEntry("e1")
	entry.Tags = nil
	entry.CustomFields = nil

	mock.ExpectExec("INSERT INTO vault_entries").
		WithArgs(
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			"[]", sqlmock.AnyArg(), "[]", sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveEntry(testContext(), entry))
}

func TestEntryRepository_SaveEntries(t *testing.T) {
	t.Run("commits once", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEntryRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO vault_entries").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO vault_entries").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.SaveEntries(testContext(), "acc-1", []models.VaultEntry{sampleEntry("e1"), sampleEntry("e2")})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEntryRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO vault_entries").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO vault_entries").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.SaveEntries(testContext(), "acc-1", []models.VaultEntry{sampleEntry("e1"), sampleEntry("e2")})
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEntryRepository_GetEntry(t *testing.T) {
	want := sampleEntry("e1")

	t.Run("found", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEntryRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT id, account_id, title").
			WithArgs("acc-1", "e1").
			WillReturnRows(entryRows(want))

		got, err := repo.GetEntry(testContext(), "acc-1", "e1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEntryRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT id").WillReturnRows(sqlmock.NewRows(entryColumns))

		_, err := repo.GetEntry(testContext(), "acc-1", "nope")
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})

	t.Run("corrupt tags", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEntryRepository(db, logger.Nop())

		rows := sqlmock.NewRows(entryColumns).AddRow(
			"e1", "acc-1", "t", "u", "w", "", "{not json", "", "[]", false,
			[]byte("ct"), []byte("iv"), []byte("tag"), []byte("salt"), "argon2id",
			want.CreatedAt, want.UpdatedAt,
		)
		mock.ExpectQuery("SELECT id").WillReturnRows(rows)

		_, err := repo.GetEntry(testContext(), "acc-1", "e1")
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})
}

func TestEntryRepository_ListEntries(t *testing.T) {
	db, mock := newTestSQLDB(t, migrations.DialectSQLite)
	repo := NewEntryRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT id, .* FROM vault_entries WHERE account_id = \\? ORDER BY created_at, id").
		WithArgs("acc-1").
		WillReturnRows(entryRows(sampleEntry("e1"), sampleEntry("e2")))

	entries, err := repo.ListEntries(testContext(), "acc-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e1", entries[0].ID)
	assert.Equal(t, "e2", entries[1].ID)
}

func TestEntryRepository_DeleteEntry(t *testing.T) {
	db, mock := newTestSQLDB(t, migrations.DialectSQLite)
	repo := NewEntryRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM vault_entries").
		WithArgs("acc-1", "e1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteEntry(testContext(), "acc-1", "e1"), ErrEntryNotFound)
}

func TestEntryRepository_ReplacePasswords(t *testing.T) {
	blobs := map[string]models.EncryptedBlob{
		"e2": {Ciphertext: []byte("new2"), KDF: "argon2id"},
		"e1": {Ciphertext: []byte("new1"), KDF: "argon2id"},
	}

	t.Run("hook runs before commit", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEntryRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE vault_entries SET password_ciphertext").
			WithArgs([]byte("new1"), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "argon2id", "acc-1", "e1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE vault_entries SET password_ciphertext").
			WithArgs([]byte("new2"), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "argon2id", "acc-1", "e2").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		hookCalled := false
		err := repo.ReplacePasswords(testContext(), "acc-1", blobs, func(context.Context) error {
			hookCalled = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hookCalled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hook failure rolls back", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEntryRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE vault_entries").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE vault_entries").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		hookErr := errors.New("remote unavailable")
		err := repo.ReplacePasswords(testContext(), "acc-1", blobs, func(context.Context) error {
			return hookErr
		})
		assert.ErrorIs(t, err, hookErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("vanished entry aborts", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEntryRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE vault_entries").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.ReplacePasswords(testContext(), "acc-1", blobs, nil)
		assert.ErrorIs(t, err, ErrEntryNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
