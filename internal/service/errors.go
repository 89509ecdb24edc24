// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-envelope/internal/crypto"
	"github.com/MKhiriev/go-pass-envelope/internal/session"
	"github.com/MKhiriev/go-pass-envelope/internal/store"
)

// Error taxonomy of the vault. Lower-level causes are wrapped with %w, so
// errors.Is matches both the class and the cause.
var (
	ErrInvalidInput    = crypto.ErrInvalidInput
	ErrIntegrity       = crypto.ErrIntegrity
	ErrWrongCredential = errors.New("wrong credential")

	ErrPartialBatchFailure = errors.New("batch completed with failures")
	ErrStorageUnavailable  = errors.New("storage unavailable")

	ErrNotConfigured     = errors.New("envelope is not configured")
	ErrAlreadyConfigured = errors.New("envelope is already configured")
	ErrLocked            = session.ErrLocked
	ErrTooManyAttempts   = errors.New("too many unlock attempts")

	ErrUnsupportedExportVersion = errors.New("unsupported export version")
	ErrEntryNotFound            = store.ErrEntryNotFound

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Stable codes carried in models.Result.Code.
const (
	CodeInvalidInput             = "INVALID_INPUT"
	CodeWrongCredential          = "WRONG_CREDENTIAL"
	CodeIntegrity                = "INTEGRITY"
	CodePartialBatchFailure      = "PARTIAL_BATCH_FAILURE"
	CodeStorageUnavailable       = "STORAGE_UNAVAILABLE"
	CodeNotConfigured            = "NOT_CONFIGURED"
	CodeAlreadyConfigured        = "ALREADY_CONFIGURED"
	CodeLocked                   = "LOCKED"
	CodeTooManyAttempts          = "TOO_MANY_ATTEMPTS"
	CodeUnsupportedExportVersion = "UNSUPPORTED_EXPORT_VERSION"
	CodeEntryNotFound            = "ENTRY_NOT_FOUND"
	CodeCancelled                = "CANCELLED"
	CodeInternal                 = "INTERNAL"
)

var errorCodes = []struct {
	err     error
	code    string
	message string
}{
	// order matters: a wrong credential wraps the integrity failure beneath it
	{ErrWrongCredential, CodeWrongCredential, "wrong PIN or master password"},
	{ErrTooManyAttempts, CodeTooManyAttempts, "too many attempts, try again later"},
	{ErrPartialBatchFailure, CodePartialBatchFailure, "some entries could not be imported"},
	{ErrNotConfigured, CodeNotConfigured, "vault is not set up yet"},
	{ErrAlreadyConfigured, CodeAlreadyConfigured, "vault is already set up"},
	{ErrLocked, CodeLocked, "vault is locked"},
	{ErrUnsupportedExportVersion, CodeUnsupportedExportVersion, "unsupported export file version"},
	{ErrEntryNotFound, CodeEntryNotFound, "entry not found"},
	{ErrStorageUnavailable, CodeStorageUnavailable, "storage is unavailable"},
	{ErrIntegrity, CodeIntegrity, "data failed the integrity check"},
	{ErrInvalidInput, CodeInvalidInput, "invalid input"},
}

// ErrorCode returns the stable code and a user-facing message for err.
// Unknown errors are CodeInternal with a generic message so that no detail
// of the cause leaks to the caller.
func ErrorCode(err error) (code, message string) {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code, c.message
		}
	}
	if isCancellation(err) {
		return CodeCancelled, "operation was cancelled"
	}
	return CodeInternal, "internal error"
}

// storageError classifies a store failure. Not-found errors pass through
// unchanged; everything else becomes ErrStorageUnavailable.
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrEnvelopeNotFound) || errors.Is(err, store.ErrEntryNotFound) {
		return err
	}
	if isCancellation(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}
