package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/migrations"
)

// DB is a *sql.DB bound to one dialect, with a squirrel builder using that
// dialect's placeholders.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open connection. dialect is one of the migrations.Dialect*
// constants.
func NewDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = sqliteErrorClassifier{}
	}

	return db
}

// Migrate applies the migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the SQL dialect name.
func (db *DB) Dialect() string {
	return db.dialect
}

// wrap attaches op to err and marks transient driver errors as ErrRetryable.
func (db *DB) wrap(op, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", op, ErrRetryable, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}

type sqliteErrorClassifier struct{}

// Classify treats a busy or locked database as retryable.
func (sqliteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}
	if isSQLiteBusy(err) {
		return Retryable
	}
	return NonRetryable
}

type txKey struct{ db *DB }

// withTx makes statements of this DB issued under ctx join tx. SQLite runs on
// one connection, so a hook called inside a transaction must not ask the
// pool for another.
func (db *DB) withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{db}, tx)
}

// execer returns the transaction carried by ctx, or the pool.
func (db *DB) execer(ctx context.Context) execer {
	if tx, ok := ctx.Value(txKey{db}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}
