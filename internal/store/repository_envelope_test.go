package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/migrations"
	"github.com/MKhiriev/go-pass-envelope/models"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestSQLDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return NewDB(conn, dialect, logger.Nop()), mock
}

func sampleEnvelope() models.Envelope {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.Envelope{
		AccountID:               "acc-1",
		EncryptedMasterPassword: []byte("ciphertext"),
		Salt:                    []byte("0123456789abcdef"),
		IV:                      []byte("0123456789ab"),
		AuthTag:                 []byte("0123456789abcdef"),
		KDF:                     "argon2id",
		Version:                 models.EnvelopeVersion,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

func envelopeRows(env models.Envelope) *sqlmock.Rows {
	return sqlmock.NewRows(envelopeColumns).AddRow(
		env.AccountID,
		env.EncryptedMasterPassword,
		env.Salt,
		env.IV,
		env.AuthTag,
		env.KDF,
		env.Version,
		env.CreatedAt,
		env.UpdatedAt,
	)
}

func TestEnvelopeRepository_GetEnvelope(t *testing.T) {
	env := sampleEnvelope()

	t.Run("found", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEnvelopeRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT account_id, encrypted_master_password").
			WithArgs("acc-1").
			WillReturnRows(envelopeRows(env))

		got, err := repo.GetEnvelope(testContext(), "acc-1")
		require.NoError(t, err)
		assert.Equal(t, env, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEnvelopeRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT account_id").
			WithArgs("acc-2").
			WillReturnRows(sqlmock.NewRows(envelopeColumns))

		_, err := repo.GetEnvelope(testContext(), "acc-2")
		assert.ErrorIs(t, err, ErrEnvelopeNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectPostgres)
		repo := NewEnvelopeRepository(db, logger.Nop())

		mock.ExpectQuery(`SELECT account_id .* WHERE account_id = \$1`).
			WithArgs("acc-1").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetEnvelope(testContext(), "acc-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrScanningRow)
		assert.NotErrorIs(t, err, ErrRetryable)
	})
}

func TestEnvelopeRepository_PutEnvelope(t *testing.T) {
	env := sampleEnvelope()

	t.Run("upsert", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEnvelopeRepository(db, logger.Nop())

		mock.ExpectExec(`INSERT INTO envelopes .* ON CONFLICT \(account_id\) DO UPDATE SET`).
			WithArgs(
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
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.PutEnvelope(testContext(), env))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("busy database is retryable", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEnvelopeRepository(db, logger.Nop())

		mock.ExpectExec("INSERT INTO envelopes").
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

		err := repo.PutEnvelope(testContext(), env)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.ErrorIs(t, err, ErrRetryable)
	})
}

func TestEnvelopeRepository_DeleteEnvelope(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEnvelopeRepository(db, logger.Nop())

		mock.ExpectExec("DELETE FROM envelopes WHERE account_id = ?").
			WithArgs("acc-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteEnvelope(testContext(), "acc-1"))
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEnvelopeRepository(db, logger.Nop())

		mock.ExpectExec("DELETE FROM envelopes").
			WithArgs("acc-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteEnvelope(testContext(), "acc-1"), ErrEnvelopeNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestSQLDB(t, migrations.DialectSQLite)
		repo := NewEnvelopeRepository(db, logger.Nop())

		mock.ExpectExec("DELETE FROM envelopes").
			WillReturnError(sql.ErrConnDone)

		assert.ErrorIs(t, repo.DeleteEnvelope(testContext(), "acc-1"), sql.ErrConnDone)
	})
}
