// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the wording the client prints next to a failed result.
//
// Every Msg* constant is a follow-up hint for one result code; [Hint] picks
// the one matching a code.
package app

import "github.com/MKhiriev/go-pass-envelope/internal/service"

const (
	// MsgRunSetup follows NOT_CONFIGURED.
	MsgRunSetup = "run `passenv setup` to create the envelope first"

	// MsgAlreadySetUp follows ALREADY_CONFIGURED.
	MsgAlreadySetUp = "use `passenv rotate` to change the master password or the PIN"

	// MsgCheckCredentials follows WRONG_CREDENTIAL.
	MsgCheckCredentials = "check the PIN or master password; repeated failures are throttled"

	// MsgWaitBeforeRetry follows TOO_MANY_ATTEMPTS.
	MsgWaitBeforeRetry = "wait a little before the next unlock attempt"

	// MsgUnlockFirst follows LOCKED.
	MsgUnlockFirst = "the session was locked, enter the PIN again"

	// MsgCheckStorage follows STORAGE_UNAVAILABLE.
	MsgCheckStorage = "check storage.db.database_uri and adapter.address in the config"

	// MsgSeeEntryErrors follows PARTIAL_BATCH_FAILURE.
	MsgSeeEntryErrors = "the entries listed above were not imported"

	// MsgExportVersion follows UNSUPPORTED_EXPORT_VERSION.
	MsgExportVersion = "only export format versions 1 and 2 can be imported"

	// MsgCorruptedData follows INTEGRITY.
	MsgCorruptedData = "the stored data was modified or belongs to another key"

	// MsgListEntries follows ENTRY_NOT_FOUND.
	MsgListEntries = "run `passenv list` to see entry ids"

	// MsgSeeLog follows INTERNAL.
	MsgSeeLog = "see the client log for details"
)

var hints = map[string]string{
	service.CodeNotConfigured:            MsgRunSetup,
	service.CodeAlreadyConfigured:        MsgAlreadySetUp,
	service.CodeWrongCredential:          MsgCheckCredentials,
	service.CodeTooManyAttempts:          MsgWaitBeforeRetry,
	service.CodeLocked:                   MsgUnlockFirst,
	service.CodeStorageUnavailable:       MsgCheckStorage,
	service.CodePartialBatchFailure:      MsgSeeEntryErrors,
	service.CodeUnsupportedExportVersion: MsgExportVersion,
	service.CodeIntegrity:                MsgCorruptedData,
	service.CodeEntryNotFound:            MsgListEntries,
	service.CodeInternal:                 MsgSeeLog,
}

// Hint returns the follow-up hint for a result code, or "" if there is none.
func Hint(code string) string {
	return hints[code]
}
