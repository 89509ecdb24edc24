// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidInput is returned before any cryptographic work when a secret,
	// salt, key or IV is malformed.
	ErrInvalidInput = errors.New("invalid crypto input")

	// ErrIntegrity is returned when an authentication tag does not verify.
	// Wrong key and corrupted data are deliberately indistinguishable.
	ErrIntegrity = errors.New("integrity check failed")

	// ErrUnknownKDF is returned for a KDF name this build does not implement.
	ErrUnknownKDF = errors.New("unknown key derivation function")
)
