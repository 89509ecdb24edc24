// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the length of every derived key (AES-256).
	KeySize = 32
	// SaltSize is the length of newly generated salts.
	SaltSize = 16
	// MinSaltSize is the shortest salt Derive accepts.
	MinSaltSize = 16
)

// KDF names a key derivation function. The name is persisted next to every
// salt so that old blobs keep opening after the default changes.
type KDF string

const (
	KDFArgon2id KDF = "argon2id"
	KDFPBKDF2   KDF = "pbkdf2-sha256"
)

// ParseKDF validates a persisted KDF name. An empty name is returned as is
// and resolved to the default by DeriveWith.
func ParseKDF(s string) (KDF, error) {
	switch KDF(s) {
	case "", KDFArgon2id, KDFPBKDF2:
		return KDF(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKDF, s)
	}
}

// KDFParams tunes the derivation cost.
type KDFParams struct {
	ArgonTime        uint32
	ArgonMemory      uint32 // KiB
	ArgonThreads     uint8
	PBKDF2Iterations int
}

// DefaultKDFParams returns the production cost: argon2id with 1 pass over
// 64 MiB on 4 lanes, and 600000 PBKDF2-SHA256 iterations.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		ArgonTime:        1,
		ArgonMemory:      64 * 1024,
		ArgonThreads:     4,
		PBKDF2Iterations: 600_000,
	}
}

type keyDerivation struct {
	def    KDF
	params KDFParams
}

// NewKeyDerivation returns a [KeyDerivation] that uses def for new keys.
// Zero fields in params fall back to [DefaultKDFParams].
func NewKeyDerivation(def KDF, params KDFParams) (KeyDerivation, error) {
	if def == "" {
		def = KDFArgon2id
	}
	if _, err := ParseKDF(string(def)); err != nil {
		return nil, err
	}

	defaults := DefaultKDFParams()
	if params.ArgonTime == 0 {
		params.ArgonTime = defaults.ArgonTime
	}
	if params.ArgonMemory == 0 {
		params.ArgonMemory = defaults.ArgonMemory
	}
	if params.ArgonThreads == 0 {
		params.ArgonThreads = defaults.ArgonThreads
	}
	if params.PBKDF2Iterations <= 0 {
		params.PBKDF2Iterations = defaults.PBKDF2Iterations
	}

	return &keyDerivation{def: def, params: params}, nil
}

func (k *keyDerivation) Default() KDF {
	return k.def
}

func (k *keyDerivation) Derive(secret string, salt []byte) ([]byte, error) {
	return k.DeriveWith(k.def, secret, salt)
}

func (k *keyDerivation) DeriveWith(kdf KDF, secret string, salt []byte) ([]byte, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidInput)
	}
	if len(salt) < MinSaltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes, need at least %d", ErrInvalidInput, len(salt), MinSaltSize)
	}
	if kdf == "" {
		kdf = k.def
	}

	switch kdf {
	case KDFArgon2id:
		return argon2.IDKey([]byte(secret), salt, k.params.ArgonTime, k.params.ArgonMemory, k.params.ArgonThreads, KeySize), nil
	case KDFPBKDF2:
		return pbkdf2.Key([]byte(secret), salt, k.params.PBKDF2Iterations, KeySize, sha256.New), nil
	default:
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrUnknownKDF, kdf)
	}
}

func (k *keyDerivation) GenerateSalt() ([]byte, error) {
	return GenerateSalt()
}

// GenerateSalt reads SaltSize bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}
