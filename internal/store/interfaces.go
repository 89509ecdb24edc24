// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-envelope/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EnvelopeStore is the key/value document store holding one envelope per
// account id. Put replaces the whole document.
type EnvelopeStore interface {
	GetEnvelope(ctx context.Context, accountID string) (models.Envelope, error)
	PutEnvelope(ctx context.Context, envelope models.Envelope) error
	DeleteEnvelope(ctx context.Context, accountID string) error
}

// EntryRepository persists vault entries of the local vault.
type EntryRepository interface {
	SaveEntry(ctx context.Context, entry models.VaultEntry) error
	GetEntry(ctx context.Context, accountID, id string) (models.VaultEntry, error)
	ListEntries(ctx context.Context, accountID string) ([]models.VaultEntry, error)
	DeleteEntry(ctx context.Context, accountID, id string) error

	// SaveEntries upserts entries in a single transaction.
	SaveEntries(ctx context.Context, accountID string, entries []models.VaultEntry) error

	// ReplacePasswords swaps the password blob of every listed entry in a
	// single transaction. beforeCommit runs inside the transaction after all
	// updates; if it fails, nothing is committed.
	ReplacePasswords(ctx context.Context, accountID string, blobs map[string]models.EncryptedBlob, beforeCommit func(ctx context.Context) error) error
}

// ExportFileStorage reads and writes export files.
type ExportFileStorage interface {
	Save(ctx context.Context, path string, file models.ExportFile) error
	Load(ctx context.Context, path string) (models.ExportFile, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
