package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-envelope/internal/session"
	"github.com/MKhiriev/go-pass-envelope/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EnvelopeService owns the Master Password envelope of an account: it seals
// the password under a PIN, opens it again and rotates both.
type EnvelopeService interface {
	// Setup seals masterPassword under a key derived from pin and stores the
	// envelope. Fails with ErrAlreadyConfigured if one already exists.
	Setup(ctx context.Context, account models.Account, masterPassword, pin string) (models.Envelope, error)

	// Unlock opens the envelope with pin and registers a session holding the
	// Master Password. Any decryption failure is ErrWrongCredential.
	Unlock(ctx context.Context, account models.Account, pin string) (*session.Session, error)

	// Rotate replaces the Master Password and the PIN. Every entry is
	// re-sealed under the new password and the new envelope is stored in the
	// same commit.
	Rotate(ctx context.Context, account models.Account, req models.RotateRequest) error

	// State reports Uninitialized, Configured or Unlocked.
	State(ctx context.Context, accountID string) (models.EnvelopeState, error)

	// Lock drops the session of the account, if any.
	Lock(accountID string)
}

// EntryVault seals and opens single secrets with a key derived from the
// Master Password and a per-blob salt.
type EntryVault interface {
	Seal(masterPassword, plaintext string) (models.EncryptedBlob, error)
	Open(masterPassword string, blob models.EncryptedBlob) (string, error)
}

// EntryService manages the entries of an unlocked vault.
type EntryService interface {
	// Save validates entry, seals password into it and stores it. A new id is
	// assigned when entry.ID is empty.
	Save(ctx context.Context, sess *session.Session, entry models.VaultEntry, password string) (models.VaultEntry, error)
	Get(ctx context.Context, sess *session.Session, id string) (models.VaultEntry, error)
	Reveal(ctx context.Context, sess *session.Session, id string) (string, error)
	List(ctx context.Context, sess *session.Session) ([]models.VaultEntry, error)
	Delete(ctx context.Context, sess *session.Session, id string) error
}

// ExportService moves entries in and out of portable export files.
type ExportService interface {
	Export(ctx context.Context, sess *session.Session) (models.ExportFile, error)
	ExportToFile(ctx context.Context, sess *session.Session, path string) (models.ExportInfo, error)
	Import(ctx context.Context, sess *session.Session, file models.ExportFile, opts models.ImportOptions) (models.ImportResult, error)
	ImportFromFile(ctx context.Context, sess *session.Session, path string, opts models.ImportOptions) (models.ImportResult, error)
}

// AutoLockJob periodically locks sessions that have been idle too long.
type AutoLockJob interface {
	Start(ctx context.Context, interval, idleTimeout time.Duration)
	Stop()
}

// EnvelopeDocumentService is the server side of the envelope store. It
// never sees a key and only checks document shape.
type EnvelopeDocumentService interface {
	GetEnvelope(ctx context.Context, accountID string) (models.Envelope, error)
	PutEnvelope(ctx context.Context, envelope models.Envelope) error
	DeleteEnvelope(ctx context.Context, accountID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
