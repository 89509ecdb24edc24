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
	"github.com/MKhiriev/go-pass-envelope/models"
)

// envelopeService implements EnvelopeService. The envelope document lives in
// envelopes (possibly remote); entries is needed for rotation only.
type envelopeService struct {
	envelopes store.EnvelopeStore
	entries   store.EntryRepository
	vault     EntryVault
	sessions  *session.Manager
	locker    *AccountLocker
	limiter   *attemptLimiter

	parallelism int
	now         func() time.Time

	// onPhase observes rotation phases; nil in production.
	onPhase func(accountID string, phase models.RotationPhase)

	logger *logger.Logger
}

// NewEnvelopeService wires an [EnvelopeService]. locker must be shared with
// the export service so that rotation and import never overlap.
func NewEnvelopeService(
	envelopes store.EnvelopeStore,
	entries store.EntryRepository,
	vault EntryVault,
	sessions *session.Manager,
	locker *AccountLocker,
	cfg config.ClientConfig,
	log *logger.Logger,
) EnvelopeService {
	parallelism := cfg.Crypto.Parallelism
	if parallelism <= 0 {
		parallelism = config.DefaultParallelism
	}

	return &envelopeService{
		envelopes:   envelopes,
		entries:     entries,
		vault:       vault,
		sessions:    sessions,
		locker:      locker,
		limiter:     newAttemptLimiter(cfg.Session.UnlockInterval, cfg.Session.UnlockBurst),
		parallelism: parallelism,
		now:         time.Now,
		logger:      log,
	}
}

func (s *envelopeService) Setup(ctx context.Context, account models.Account, masterPassword, pin string) (models.Envelope, error) {
	log := logger.FromContext(ctx).With().Str("func", "envelopeService.Setup").Str("account_id", account.UID).Logger()

	if account.UID == "" || masterPassword == "" || pin == "" {
		return models.Envelope{}, fmt.Errorf("%w: account, master password and PIN are required", ErrInvalidInput)
	}

	_, err := s.envelopes.GetEnvelope(ctx, account.UID)
	switch {
	case err == nil:
		return models.Envelope{}, ErrAlreadyConfigured
	case !errors.Is(err, store.ErrEnvelopeNotFound):
		log.Err(err).Msg("error checking for an existing envelope")
		return models.Envelope{}, storageError("read envelope", err)
	}

	blob, err := s.vault.Seal(pin, masterPassword)
	if err != nil {
		log.Err(err).Msg("error sealing master password")
		return models.Envelope{}, err
	}

	env := models.NewEnvelope(account.UID, blob, s.now().UTC())
	if err = s.envelopes.PutEnvelope(ctx, env); err != nil {
		log.Err(err).Msg("error storing envelope")
		return models.Envelope{}, storageError("put envelope", err)
	}

	log.Info().Str("kdf", env.KDF).Msg("envelope configured")
	return env, nil
}

func (s *envelopeService) Unlock(ctx context.Context, account models.Account, pin string) (*session.Session, error) {
	log := logger.FromContext(ctx).With().Str("func", "envelopeService.Unlock").Str("account_id", account.UID).Logger()

	if account.UID == "" || pin == "" {
		return nil, fmt.Errorf("%w: account and PIN are required", ErrInvalidInput)
	}
	if !s.limiter.allow(account.UID) {
		log.Warn().Msg("unlock attempt rejected by rate limiter")
		return nil, ErrTooManyAttempts
	}

	env, err := s.loadEnvelope(ctx, account.UID)
	if err != nil {
		return nil, err
	}

	masterPassword, err := s.openEnvelope(ctx, env, pin)
	if err != nil {
		return nil, err
	}

	sess, err := session.New(account, masterPassword)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	s.sessions.Put(sess)
	s.limiter.reset(account.UID)

	log.Info().Msg("vault unlocked")
	return sess, nil
}

func (s *envelopeService) State(ctx context.Context, accountID string) (models.EnvelopeState, error) {
	if _, ok := s.sessions.Get(accountID); ok {
		return models.StateUnlocked, nil
	}

	_, err := s.envelopes.GetEnvelope(ctx, accountID)
	switch {
	case err == nil:
		return models.StateConfigured, nil
	case errors.Is(err, store.ErrEnvelopeNotFound):
		return models.StateUninitialized, nil
	default:
		return models.StateUninitialized, storageError("read envelope", err)
	}
}

func (s *envelopeService) Lock(accountID string) {
	s.sessions.Lock(accountID)
	s.logger.Debug().Str("func", "envelopeService.Lock").Str("account_id", accountID).Msg("vault locked")
}

func (s *envelopeService) loadEnvelope(ctx context.Context, accountID string) (models.Envelope, error) {
	env, err := s.envelopes.GetEnvelope(ctx, accountID)
	if errors.Is(err, store.ErrEnvelopeNotFound) {
		return models.Envelope{}, ErrNotConfigured
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "envelopeService.loadEnvelope").Msg("error reading envelope")
		return models.Envelope{}, storageError("read envelope", err)
	}
	return env, nil
}

// openEnvelope decrypts the Master Password. The log tells a malformed
// envelope apart from a failed authentication; the caller only ever gets
// ErrWrongCredential.
func (s *envelopeService) openEnvelope(ctx context.Context, env models.Envelope, pin string) (string, error) {
	masterPassword, err := s.vault.Open(pin, env.Blob())
	if err != nil {
		reason := "authentication failed"
		if errors.Is(err, crypto.ErrInvalidInput) {
			reason = "malformed envelope"
		}
		logger.FromContext(ctx).Warn().
			Str("func", "envelopeService.openEnvelope").
			Str("account_id", env.AccountID).
			Str("reason", reason).
			Msg("envelope did not open")
		return "", ErrWrongCredential
	}
	return masterPassword, nil
}
