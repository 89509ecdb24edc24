// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/session"
	"github.com/MKhiriev/go-pass-envelope/models"
)

// Vault is the boundary the CLI talks to. It acts for one account and turns
// every outcome into a [models.Result]; no error value or panic crosses it.
type Vault struct {
	account  models.Account
	envelope EnvelopeService
	entries  EntryService
	exports  ExportService
	sealer   EntryVault
	sessions *session.Manager
	logger   *logger.Logger
}

func NewVault(account models.Account, services *ClientServices, log *logger.Logger) *Vault {
	return &Vault{
		account:  account,
		envelope: services.EnvelopeService,
		entries:  services.EntryService,
		exports:  services.ExportService,
		sealer:   services.EntryVault,
		sessions: services.Sessions,
		logger:   log,
	}
}

// Account returns the identity the vault acts for.
func (v *Vault) Account() models.Account {
	return v.account
}

func (v *Vault) Setup(ctx context.Context, masterPassword, pin string) models.Result {
	return v.do(ctx, "Setup", func() (any, error) {
		if _, err := v.envelope.Setup(ctx, v.account, masterPassword, pin); err != nil {
			return nil, err
		}
		return models.StateConfigured, nil
	})
}

func (v *Vault) Unlock(ctx context.Context, pin string) models.Result {
	return v.do(ctx, "Unlock", func() (any, error) {
		_, err := v.envelope.Unlock(ctx, v.account, pin)
		return nil, err
	})
}

func (v *Vault) Lock(ctx context.Context) models.Result {
	return v.do(ctx, "Lock", func() (any, error) {
		v.envelope.Lock(v.account.UID)
		return nil, nil
	})
}

func (v *Vault) Status(ctx context.Context) models.Result {
	return v.do(ctx, "Status", func() (any, error) {
		return v.envelope.State(ctx, v.account.UID)
	})
}

func (v *Vault) Rotate(ctx context.Context, req models.RotateRequest) models.Result {
	return v.do(ctx, "Rotate", func() (any, error) {
		return nil, v.envelope.Rotate(ctx, v.account, req)
	})
}

// Seal encrypts plaintext under the unlocked Master Password. Data is the
// resulting [models.EncryptedBlob].
func (v *Vault) Seal(ctx context.Context, plaintext string) models.Result {
	return v.do(ctx, "Seal", func() (any, error) {
		mp, err := v.masterPassword()
		if err != nil {
			return nil, err
		}
		return v.sealer.Seal(mp, plaintext)
	})
}

// Open decrypts blob with the unlocked Master Password. Data is the
// plaintext string.
func (v *Vault) Open(ctx context.Context, blob models.EncryptedBlob) models.Result {
	return v.do(ctx, "Open", func() (any, error) {
		mp, err := v.masterPassword()
		if err != nil {
			return nil, err
		}
		return v.sealer.Open(mp, blob)
	})
}

func (v *Vault) SaveEntry(ctx context.Context, entry models.VaultEntry, password string) models.Result {
	return v.withSession(ctx, "SaveEntry", func(sess *session.Session) (any, error) {
		return v.entries.Save(ctx, sess, entry, password)
	})
}

func (v *Vault) GetEntry(ctx context.Context, id string) models.Result {
	return v.withSession(ctx, "GetEntry", func(sess *session.Session) (any, error) {
		return v.entries.Get(ctx, sess, id)
	})
}

func (v *Vault) RevealEntry(ctx context.Context, id string) models.Result {
	return v.withSession(ctx, "RevealEntry", func(sess *session.Session) (any, error) {
		return v.entries.Reveal(ctx, sess, id)
	})
}

func (v *Vault) ListEntries(ctx context.Context) models.Result {
	return v.withSession(ctx, "ListEntries", func(sess *session.Session) (any, error) {
		return v.entries.List(ctx, sess)
	})
}

func (v *Vault) DeleteEntry(ctx context.Context, id string) models.Result {
	return v.withSession(ctx, "DeleteEntry", func(sess *session.Session) (any, error) {
		return nil, v.entries.Delete(ctx, sess, id)
	})
}

// ExportVault writes the export file to path. Data is the [models.ExportInfo].
func (v *Vault) ExportVault(ctx context.Context, path string) models.Result {
	return v.withSession(ctx, "ExportVault", func(sess *session.Session) (any, error) {
		return v.exports.ExportToFile(ctx, sess, path)
	})
}

// ImportVault imports the file at path. Data is the [models.ImportResult],
// also when some entries failed.
func (v *Vault) ImportVault(ctx context.Context, path string, opts models.ImportOptions) models.Result {
	return v.withSession(ctx, "ImportVault", func(sess *session.Session) (any, error) {
		return v.exports.ImportFromFile(ctx, sess, path, opts)
	})
}

func (v *Vault) masterPassword() (string, error) {
	sess, ok := v.sessions.Get(v.account.UID)
	if !ok {
		return "", ErrLocked
	}
	return sess.MasterPassword()
}

func (v *Vault) withSession(ctx context.Context, op string, fn func(*session.Session) (any, error)) models.Result {
	return v.do(ctx, op, func() (any, error) {
		sess, ok := v.sessions.Get(v.account.UID)
		if !ok {
			return nil, ErrLocked
		}
		return fn(sess)
	})
}

func (v *Vault) do(ctx context.Context, op string, fn func() (any, error)) (res models.Result) {
	log := logger.FromContext(ctx).With().Str("func", "Vault."+op).Str("account_id", v.account.UID).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			res = models.Fail(CodeInternal, "internal error")
		}
	}()

	data, err := fn()
	if err != nil {
		code, message := ErrorCode(err)
		if code == CodeInternal {
			log.Err(err).Msg("operation failed")
		} else {
			log.Debug().Str("code", code).Msg("operation failed")
		}
		res = models.Fail(code, message)
		if errors.Is(err, ErrPartialBatchFailure) {
			res.Data = data
		}
		return res
	}

	return models.OK(data)
}
