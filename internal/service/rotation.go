// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pass-envelope/internal/crypto"
	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/models"
)

// Rotate runs Verifying -> Verified -> Rotating -> Done. Nothing is written
// before Rotating, and Rotating writes entries and the envelope in one
// commit: the new envelope is put while the entry transaction is still open,
// so a failed put rolls the entries back. If the entry commit fails after
// the put, the previous envelope is put back.
func (s *envelopeService) Rotate(ctx context.Context, account models.Account, req models.RotateRequest) (err error) {
	log := logger.FromContext(ctx).With().Str("func", "envelopeService.Rotate").Str("account_id", account.UID).Logger()

	if account.UID == "" || req.OldPassword == "" || req.OldPIN == "" || req.NewPassword == "" || req.NewPIN == "" {
		return fmt.Errorf("%w: all current and new credentials are required", ErrInvalidInput)
	}

	unlock, err := s.locker.Lock(ctx, account.UID)
	if err != nil {
		return err
	}
	defer unlock()

	s.phase(ctx, account.UID, models.RotationVerifying)
	defer func() {
		if err != nil {
			s.phase(ctx, account.UID, models.RotationFailed)
		}
	}()

	if !s.limiter.allow(account.UID) {
		return ErrTooManyAttempts
	}

	oldEnv, err := s.loadEnvelope(ctx, account.UID)
	if err != nil {
		return err
	}
	current, err := s.openEnvelope(ctx, oldEnv, req.OldPIN)
	if err != nil {
		return err
	}
	if !crypto.ConstantTimeEqual(current, req.OldPassword) {
		log.Warn().Msg("current master password does not match the envelope")
		return ErrWrongCredential
	}
	s.limiter.reset(account.UID)
	s.phase(ctx, account.UID, models.RotationVerified)

	s.phase(ctx, account.UID, models.RotationRotating)

	entries, err := s.entries.ListEntries(ctx, account.UID)
	if err != nil {
		log.Err(err).Msg("error listing entries")
		return storageError("list entries", err)
	}

	blobs, err := s.resealAll(ctx, entries, req.OldPassword, req.NewPassword)
	if err != nil {
		log.Err(err).Msg("re-seal aborted, nothing written")
		return err
	}

	envBlob, err := s.vault.Seal(req.NewPIN, req.NewPassword)
	if err != nil {
		return err
	}
	newEnv := models.NewEnvelope(account.UID, envBlob, s.now().UTC())
	if !oldEnv.CreatedAt.IsZero() {
		newEnv.CreatedAt = oldEnv.CreatedAt
	}

	envelopePut := false
	err = s.entries.ReplacePasswords(ctx, account.UID, blobs, func(ctx context.Context) error {
		if err := s.envelopes.PutEnvelope(ctx, newEnv); err != nil {
			return storageError("put envelope", err)
		}
		envelopePut = true
		return nil
	})
	if err != nil {
		if envelopePut {
			log.Error().Msg("entry commit failed after the new envelope was stored, restoring the previous envelope")
			if rerr := s.envelopes.PutEnvelope(context.WithoutCancel(ctx), oldEnv); rerr != nil {
				log.Err(rerr).Msg("error restoring the previous envelope")
				return errors.Join(storageError("commit entries", err), storageError("restore envelope", rerr))
			}
		}
		if errors.Is(err, ErrStorageUnavailable) {
			return err
		}
		return storageError("replace passwords", err)
	}

	if sess, ok := s.sessions.Get(account.UID); ok {
		if rerr := sess.Replace(req.NewPassword); rerr != nil {
			log.Err(rerr).Msg("error switching the session to the new master password")
			s.sessions.Lock(account.UID)
		}
	}

	s.phase(ctx, account.UID, models.RotationDone)
	log.Info().Int("entries", len(blobs)).Msg("credentials rotated")
	return nil
}

// resealAll opens every entry with oldPassword and seals it again under
// newPassword, up to s.parallelism at a time. It fails on the first entry
// that does not open; results are only used if all succeed.
func (s *envelopeService) resealAll(ctx context.Context, entries []models.VaultEntry, oldPassword, newPassword string) (map[string]models.EncryptedBlob, error) {
	resealed := make([]models.EncryptedBlob, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for i, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			plaintext, err := s.vault.Open(oldPassword, entry.Password)
			if err != nil {
				return fmt.Errorf("entry %s: %w", entry.ID, err)
			}

			blob, err := s.vault.Seal(newPassword, plaintext)
			if err != nil {
				return fmt.Errorf("entry %s: %w", entry.ID, err)
			}
			resealed[i] = blob
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	blobs := make(map[string]models.EncryptedBlob, len(entries))
	for i, entry := range entries {
		blobs[entry.ID] = resealed[i]
	}
	return blobs, nil
}

func (s *envelopeService) phase(ctx context.Context, accountID string, p models.RotationPhase) {
	logger.FromContext(ctx).Debug().
		Str("func", "envelopeService.Rotate").
		Str("account_id", accountID).
		Stringer("phase", p).
		Msg("rotation phase")
	if s.onPhase != nil {
		s.onPhase(accountID, p)
	}
}
