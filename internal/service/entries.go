package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/session"
	"github.com/MKhiriev/go-pass-envelope/internal/store"
	"github.com/MKhiriev/go-pass-envelope/internal/validators"
	"github.com/MKhiriev/go-pass-envelope/models"
)

// IDGenerator issues entry ids.
type IDGenerator interface {
	Generate() string
}

type entryService struct {
	entries   store.EntryRepository
	vault     EntryVault
	validator validators.Validator
	ids       IDGenerator
	locker    *AccountLocker
	now       func() time.Time
	logger    *logger.Logger
}

// NewEntryService wires an [EntryService]. Writes hold locker for the
// account, so locker must be the one shared with rotation and import.
func NewEntryService(entries store.EntryRepository, vault EntryVault, locker *AccountLocker, ids IDGenerator, log *logger.Logger) EntryService {
	return &entryService{
		entries:   entries,
		vault:     vault,
		validator: validators.NewEntryValidator(),
		ids:       ids,
		locker:    locker,
		now:       time.Now,
		logger:    log,
	}
}

func (s *entryService) Save(ctx context.Context, sess *session.Session, entry models.VaultEntry, password string) (models.VaultEntry, error) {
	log := logger.FromContext(ctx).With().Str("func", "entryService.Save").Logger()

	if sess.IsLocked() {
		return models.VaultEntry{}, ErrLocked
	}
	if password == "" {
		return models.VaultEntry{}, fmt.Errorf("%w: empty password", ErrInvalidInput)
	}

	accountID := sess.Account().UID
	unlock, err := s.locker.Lock(ctx, accountID)
	if err != nil {
		return models.VaultEntry{}, err
	}
	defer unlock()

	masterPassword, err := sess.MasterPassword()
	if err != nil {
		return models.VaultEntry{}, err
	}
	now := s.now().UTC()

	entry.AccountID = accountID
	entry.UpdatedAt = now
	if entry.ID == "" {
		entry.ID = s.ids.Generate()
		entry.CreatedAt = now
	} else {
		existing, err := s.entries.GetEntry(ctx, accountID, entry.ID)
		switch {
		case err == nil:
			entry.CreatedAt = existing.CreatedAt
		case errors.Is(err, store.ErrEntryNotFound):
			entry.CreatedAt = now
		default:
			return models.VaultEntry{}, storageError("read entry", err)
		}
	}

	if err = s.validator.Validate(ctx, entry,
		validators.FieldEntryID, validators.FieldAccountID, validators.FieldTitle, validators.FieldCustomFields,
	); err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	entry.Password, err = s.vault.Seal(masterPassword, password)
	if err != nil {
		log.Err(err).Str("entry_id", entry.ID).Msg("error sealing password")
		return models.VaultEntry{}, err
	}

	if err = s.entries.SaveEntry(ctx, entry); err != nil {
		return models.VaultEntry{}, storageError("save entry", err)
	}

	log.Debug().Str("entry_id", entry.ID).Msg("entry saved")
	return entry, nil
}

func (s *entryService) Get(ctx context.Context, sess *session.Session, id string) (models.VaultEntry, error) {
	if sess.IsLocked() {
		return models.VaultEntry{}, ErrLocked
	}

	entry, err := s.entries.GetEntry(ctx, sess.Account().UID, id)
	if err != nil {
		return models.VaultEntry{}, storageError("read entry", err)
	}
	return entry, nil
}

// Reveal opens the password of entry id. A blob that fails authentication
// is ErrIntegrity.
func (s *entryService) Reveal(ctx context.Context, sess *session.Session, id string) (string, error) {
	masterPassword, err := sess.MasterPassword()
	if err != nil {
		return "", err
	}

	entry, err := s.entries.GetEntry(ctx, sess.Account().UID, id)
	if err != nil {
		return "", storageError("read entry", err)
	}

	plaintext, err := s.vault.Open(masterPassword, entry.Password)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "entryService.Reveal").
			Str("entry_id", id).
			Msg("entry password failed to open")
		return "", fmt.Errorf("entry %s: %w", id, err)
	}
	return plaintext, nil
}

func (s *entryService) List(ctx context.Context, sess *session.Session) ([]models.VaultEntry, error) {
	if sess.IsLocked() {
		return nil, ErrLocked
	}

	entries, err := s.entries.ListEntries(ctx, sess.Account().UID)
	if err != nil {
		return nil, storageError("list entries", err)
	}
	return entries, nil
}

func (s *entryService) Delete(ctx context.Context, sess *session.Session, id string) error {
	if sess.IsLocked() {
		return ErrLocked
	}

	accountID := sess.Account().UID
	unlock, err := s.locker.Lock(ctx, accountID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.entries.DeleteEntry(ctx, accountID, id); err != nil {
		return storageError("delete entry", err)
	}
	return nil
}
