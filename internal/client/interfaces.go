// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pass-envelope/models"
)

// Client is a runnable client application.
type Client interface {
	Run(ctx context.Context, args []string) error
}

// Prompter reads values from the user. Secrets are never echoed.
type Prompter interface {
	Secret(ctx context.Context, label string) (string, error)
	NewSecret(ctx context.Context, label string) (string, error)
	Text(ctx context.Context, label, initial string) (string, error)
	Confirm(ctx context.Context, question string) (bool, error)
}

// Clipboard receives a revealed password for `show --copy`.
type Clipboard interface {
	WriteAll(text string) error
}

// Vault is the part of [service.Vault] the commands use.
type Vault interface {
	Account() models.Account
	Setup(ctx context.Context, masterPassword, pin string) models.Result
	Unlock(ctx context.Context, pin string) models.Result
	Lock(ctx context.Context) models.Result
	Status(ctx context.Context) models.Result
	Rotate(ctx context.Context, req models.RotateRequest) models.Result
	SaveEntry(ctx context.Context, entry models.VaultEntry, password string) models.Result
	GetEntry(ctx context.Context, id string) models.Result
	RevealEntry(ctx context.Context, id string) models.Result
	ListEntries(ctx context.Context) models.Result
	DeleteEntry(ctx context.Context, id string) models.Result
	ExportVault(ctx context.Context, path string) models.Result
	ImportVault(ctx context.Context, path string, opts models.ImportOptions) models.Result
}
