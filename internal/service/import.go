// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pass-envelope/internal/crypto"
	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/session"
	"github.com/MKhiriev/go-pass-envelope/internal/validators"
	"github.com/MKhiriev/go-pass-envelope/models"
)

// importKey is the secret that opens the entries of one export version.
type importKey struct {
	secret      string
	fallbackKDF crypto.KDF
}

// sealedImport is one export entry after decryption and re-sealing.
type sealedImport struct {
	blob models.EncryptedBlob
	err  error
}

// Import re-seals every entry of file under the Master Password and stores
// the result as one batch. The manifest version selects the key that opens
// the entries; nothing is probed.
func (s *exportService) Import(ctx context.Context, sess *session.Session, file models.ExportFile, opts models.ImportOptions) (models.ImportResult, error) {
	log := logger.FromContext(ctx).With().Str("func", "exportService.Import").Logger()

	strategy, err := models.ParseMergeStrategy(string(opts.Strategy))
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if sess.IsLocked() {
		return models.ImportResult{}, ErrLocked
	}
	account := sess.Account()

	unlock, err := s.locker.Lock(ctx, account.UID)
	if err != nil {
		return models.ImportResult{}, err
	}
	defer unlock()

	// read under the lock: a rotation that held it may have switched the password
	masterPassword, err := sess.MasterPassword()
	if err != nil {
		return models.ImportResult{}, err
	}

	exportKey := account.ExportKey(masterPassword)
	if fp := file.ExportInfo.KeyFingerprint; fp != "" && !crypto.ConstantTimeEqual(fp, crypto.Fingerprint(exportKey)) {
		log.Warn().Msg("export key fingerprint does not match this account")
		return models.ImportResult{}, fmt.Errorf("%w: export was made with a different key", ErrWrongCredential)
	}

	key, err := selectImportKey(file.ExportInfo.Version, masterPassword, exportKey)
	if err != nil {
		return models.ImportResult{}, err
	}
	if file.ExportInfo.EntryCount != len(file.Entries) {
		log.Warn().Int("manifest", file.ExportInfo.EntryCount).Int("actual", len(file.Entries)).Msg("entry count mismatch")
	}

	sealed, err := s.resealImported(ctx, file.Entries, key, masterPassword)
	if err != nil {
		return models.ImportResult{}, err
	}

	stored, err := s.entries.ListEntries(ctx, account.UID)
	if err != nil {
		return models.ImportResult{}, storageError("list entries", err)
	}

	result := models.ImportResult{
		Total:    len(file.Entries),
		Strategy: strategy,
		DryRun:   opts.DryRun,
	}
	writes := s.plan(ctx, account.UID, file.Entries, sealed, stored, strategy, &result)

	if err := ctx.Err(); err != nil {
		return models.ImportResult{}, err
	}

	if !opts.DryRun && len(writes) > 0 {
		if err := s.entries.SaveEntries(ctx, account.UID, writes); err != nil {
			log.Err(err).Msg("error saving imported entries, nothing was written")
			return models.ImportResult{}, storageError("save imported entries", err)
		}
	}

	log.Info().
		Int("total", result.Total).
		Int("imported", result.Imported).
		Int("duplicates", result.Duplicates).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Bool("dry_run", result.DryRun).
		Msg("import finished")

	if result.Failed > 0 {
		return result, fmt.Errorf("%w: %d of %d entries failed", ErrPartialBatchFailure, result.Failed, result.Total)
	}
	return result, nil
}

func selectImportKey(version int, masterPassword, exportKey string) (importKey, error) {
	switch version {
	case models.ExportVersionCurrent:
		return importKey{secret: masterPassword, fallbackKDF: crypto.KDFArgon2id}, nil
	case models.ExportVersionLegacy:
		return importKey{secret: exportKey, fallbackKDF: crypto.KDFPBKDF2}, nil
	default:
		return importKey{}, fmt.Errorf("%w: %d", ErrUnsupportedExportVersion, version)
	}
}

// resealImported opens each entry with key and seals the plaintext under
// masterPassword with a fresh salt and IV. Per-entry failures are recorded
// in the result slice; only cancellation aborts the whole run.
func (s *exportService) resealImported(ctx context.Context, entries []models.ExportEntry, key importKey, masterPassword string) ([]sealedImport, error) {
	out := make([]sealedImport, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			plaintext := e.Password
			if e.IsPasswordEncrypted {
				blob, err := exportEntryBlob(e, key.fallbackKDF)
				if err != nil {
					out[i].err = err
					return nil
				}
				if plaintext, err = s.vault.Open(key.secret, blob); err != nil {
					out[i].err = err
					return nil
				}
			}
			if plaintext == "" {
				out[i].err = fmt.Errorf("%w: empty password", ErrInvalidInput)
				return nil
			}

			blob, err := s.vault.Seal(masterPassword, plaintext)
			if err != nil {
				out[i].err = err
				return nil
			}
			out[i].blob = blob
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// plan applies duplicate detection and the merge strategy, in file order.
// An entry duplicates a stored entry or one earlier in the same file; the
// later one is resolved against the earlier one's pending write.
func (s *exportService) plan(
	ctx context.Context,
	accountID string,
	entries []models.ExportEntry,
	sealed []sealedImport,
	stored []models.VaultEntry,
	strategy models.MergeStrategy,
	result *models.ImportResult,
) []models.VaultEntry {
	now := s.now().UTC()

	existing := make(map[models.DuplicateKey]models.VaultEntry, len(stored))
	usedIDs := make(map[string]struct{}, len(stored)+len(entries))
	for _, e := range stored {
		if _, ok := existing[e.DuplicateKey()]; !ok {
			existing[e.DuplicateKey()] = e
		}
		usedIDs[e.ID] = struct{}{}
	}

	var writes []models.VaultEntry
	pending := make(map[models.DuplicateKey]int)

	fail := func(i int, title string, err error) {
		result.Failed++
		result.Errors = append(result.Errors, models.EntryError{Index: i, Title: title, Error: err.Error()})
	}

	for i, e := range entries {
		if sealed[i].err != nil {
			fail(i, e.Title, sealed[i].err)
			continue
		}

		imported := e.Metadata()
		imported.AccountID = accountID
		imported.Password = sealed[i].blob
		if err := s.validator.Validate(ctx, imported, validators.FieldTitle, validators.FieldCustomFields); err != nil {
			fail(i, e.Title, err)
			continue
		}

		key := imported.DuplicateKey()
		var (
			target    models.VaultEntry
			duplicate bool
		)
		if idx, ok := pending[key]; ok {
			target, duplicate = writes[idx], true
		} else if ex, ok := existing[key]; ok {
			target, duplicate = ex, true
		}

		if duplicate {
			result.Duplicates++

			var resolved models.VaultEntry
			switch strategy {
			case models.MergeReplace:
				resolved = replaceEntry(target, imported, now)
			case models.MergeMerge:
				resolved = mergeEntries(target, imported)
			default:
				result.Skipped++
				continue
			}

			if idx, ok := pending[key]; ok {
				writes[idx] = resolved
			} else {
				pending[key] = len(writes)
				writes = append(writes, resolved)
			}
			result.Imported++
			continue
		}

		if _, taken := usedIDs[imported.ID]; taken || imported.ID == "" {
			imported.ID = s.ids.Generate()
		}
		usedIDs[imported.ID] = struct{}{}
		if imported.CreatedAt.IsZero() {
			imported.CreatedAt = now
		}
		if imported.UpdatedAt.IsZero() {
			imported.UpdatedAt = now
		}

		pending[key] = len(writes)
		writes = append(writes, imported)
		result.Imported++
	}

	return writes
}
