// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDerivation turns a secret and a salt into a fixed-length symmetric key.
//
// Derivation is deterministic: the same (secret, salt, kdf) always yields the
// same key. No derived key is ever stored, so this property is what lets a
// blob be opened again later.
type KeyDerivation interface {
	// Derive derives a key with the default KDF.
	Derive(secret string, salt []byte) ([]byte, error)

	// DeriveWith derives a key with an explicitly named KDF. An empty name
	// selects the default.
	DeriveWith(kdf KDF, secret string, salt []byte) ([]byte, error)

	// Default returns the KDF used by Derive and recorded on new blobs.
	Default() KDF

	// GenerateSalt returns SaltSize random bytes.
	GenerateSalt() ([]byte, error)
}

// AuthenticatedCipher encrypts and decrypts with an AEAD. It holds no state
// between calls.
type AuthenticatedCipher interface {
	// Encrypt seals plaintext under key with a fresh random IV and returns the
	// ciphertext, the IV and the detached authentication tag.
	Encrypt(key, plaintext []byte) (ciphertext, iv, authTag []byte, err error)

	// Decrypt verifies authTag and returns the plaintext. A tag mismatch
	// yields ErrIntegrity and no output.
	Decrypt(key, ciphertext, iv, authTag []byte) ([]byte, error)
}
