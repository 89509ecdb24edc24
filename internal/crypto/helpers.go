// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// FingerprintSize is the number of digest bytes kept in a fingerprint.
const FingerprintSize = 16

// Fingerprint returns hex(sha256(secret)[:16]). It identifies a key context
// for diagnostics and cannot be turned back into the key.
func Fingerprint(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:FingerprintSize])
}

// ConstantTimeEqual compares two secrets without leaking the position of the
// first difference.
func ConstantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// Zero overwrites b in place.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
