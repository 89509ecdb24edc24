// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-envelope/internal/config"
	"github.com/MKhiriev/go-pass-envelope/internal/crypto"
	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/session"
	"github.com/MKhiriev/go-pass-envelope/internal/store"
	"github.com/MKhiriev/go-pass-envelope/internal/validators"
	"github.com/MKhiriev/go-pass-envelope/models"
)

type exportService struct {
	entries   store.EntryRepository
	files     store.ExportFileStorage
	vault     EntryVault
	locker    *AccountLocker
	ids       IDGenerator
	validator validators.Validator

	parallelism int
	now         func() time.Time

	logger *logger.Logger
}

func NewExportService(
	entries store.EntryRepository,
	files store.ExportFileStorage,
	vault EntryVault,
	locker *AccountLocker,
	ids IDGenerator,
	cfg config.Crypto,
	log *logger.Logger,
) ExportService {
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = config.DefaultParallelism
	}

	return &exportService{
		entries:     entries,
		files:       files,
		vault:       vault,
		locker:      locker,
		ids:         ids,
		validator:   validators.NewEntryValidator(),
		parallelism: parallelism,
		now:         time.Now,
		logger:      log,
	}
}

// Export builds a current-version export of every entry. Blobs are copied
// as stored, so they stay sealed under the Master Password. Cancelling ctx
// stops the export between entries.
func (s *exportService) Export(ctx context.Context, sess *session.Session) (models.ExportFile, error) {
	log := logger.FromContext(ctx).With().Str("func", "exportService.Export").Logger()

	if sess.IsLocked() {
		return models.ExportFile{}, ErrLocked
	}
	account := sess.Account()

	unlock, err := s.locker.Lock(ctx, account.UID)
	if err != nil {
		return models.ExportFile{}, err
	}
	defer unlock()

	masterPassword, err := sess.MasterPassword()
	if err != nil {
		return models.ExportFile{}, err
	}

	stored, err := s.entries.ListEntries(ctx, account.UID)
	if err != nil {
		log.Err(err).Msg("error listing entries")
		return models.ExportFile{}, storageError("list entries", err)
	}

	exported := make([]models.ExportEntry, 0, len(stored))
	for _, entry := range stored {
		if err := ctx.Err(); err != nil {
			log.Info().Int("done", len(exported)).Int("total", len(stored)).Msg("export cancelled")
			return models.ExportFile{}, err
		}
		exported = append(exported, toExportEntry(entry))
	}

	file := models.ExportFile{
		ExportInfo: models.ExportInfo{
			ExportDate:     s.now().UTC(),
			Version:        models.ExportVersionCurrent,
			EntryCount:     len(exported),
			IsEncrypted:    true,
			KeyFingerprint: crypto.Fingerprint(account.ExportKey(masterPassword)),
		},
		Entries: exported,
	}

	log.Info().Int("entries", len(exported)).Msg("vault exported")
	return file, nil
}

func (s *exportService) ExportToFile(ctx context.Context, sess *session.Session, path string) (models.ExportInfo, error) {
	if path == "" {
		return models.ExportInfo{}, fmt.Errorf("%w: empty export path", ErrInvalidInput)
	}

	file, err := s.Export(ctx, sess)
	if err != nil {
		return models.ExportInfo{}, err
	}

	if err = s.files.Save(ctx, path, file); err != nil {
		return models.ExportInfo{}, storageError("write export file", err)
	}
	return file.ExportInfo, nil
}

func (s *exportService) ImportFromFile(ctx context.Context, sess *session.Session, path string, opts models.ImportOptions) (models.ImportResult, error) {
	if path == "" {
		return models.ImportResult{}, fmt.Errorf("%w: empty import path", ErrInvalidInput)
	}

	file, err := s.files.Load(ctx, path)
	switch {
	case errors.Is(err, store.ErrDecodingExportFile):
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case err != nil:
		return models.ImportResult{}, storageError("read import file", err)
	}

	return s.Import(ctx, sess, file, opts)
}
