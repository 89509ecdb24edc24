package store

import "errors"

// Sentinel errors returned by stores. Match them with [errors.Is].
var (
	// ErrEnvelopeNotFound is returned when no envelope document exists for
	// the account.
	ErrEnvelopeNotFound = errors.New("envelope was not found")

	// ErrEntryNotFound is returned when an entry id does not exist for the
	// account.
	ErrEntryNotFound = errors.New("vault entry was not found")

	// ErrEntryNotSaved is returned when a write affected no rows.
	ErrEntryNotSaved = errors.New("vault entry was not saved")

	// ErrRetryable marks failures the driver reports as transient
	// (connection loss, serialization failure).
	ErrRetryable = errors.New("transient storage failure")

	// ErrInvalidDocument is returned when a stored document cannot be decoded.
	ErrInvalidDocument = errors.New("invalid stored document")
)

// Low-level SQL operation errors, wrapped around the driver error.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)

// Export file errors.
var (
	ErrWritingExportFile  = errors.New("error writing export file")
	ErrReadingExportFile  = errors.New("error reading export file")
	ErrDecodingExportFile = errors.New("error decoding export file")
)
