// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-envelope/internal/crypto"
	"github.com/MKhiriev/go-pass-envelope/models"
)

type entryVault struct {
	kdf    crypto.KeyDerivation
	cipher crypto.AuthenticatedCipher
}

// NewEntryVault returns an [EntryVault]. The same derivation path seals
// envelopes and entries; only the secret differs.
func NewEntryVault(kdf crypto.KeyDerivation, cipher crypto.AuthenticatedCipher) EntryVault {
	return &entryVault{kdf: kdf, cipher: cipher}
}

// Seal derives a key from secret and a fresh salt and encrypts plaintext
// under it with a fresh IV. Sealing the same input twice never yields the
// same blob.
func (v *entryVault) Seal(secret, plaintext string) (models.EncryptedBlob, error) {
	if secret == "" {
		return models.EncryptedBlob{}, fmt.Errorf("%w: empty secret", ErrInvalidInput)
	}

	salt, err := v.kdf.GenerateSalt()
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	kdf := v.kdf.Default()
	key, err := v.kdf.DeriveWith(kdf, secret, salt)
	if err != nil {
		return models.EncryptedBlob{}, err
	}
	defer crypto.Zero(key)

	ciphertext, iv, tag, err := v.cipher.Encrypt(key, []byte(plaintext))
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	return models.EncryptedBlob{
		Ciphertext: ciphertext,
		IV:         iv,
		AuthTag:    tag,
		Salt:       salt,
		KDF:        string(kdf),
	}, nil
}

// Open re-derives the key with the blob's own KDF and salt. Any mismatch is
// ErrIntegrity; malformed blobs are ErrInvalidInput.
func (v *entryVault) Open(secret string, blob models.EncryptedBlob) (string, error) {
	kdf, err := crypto.ParseKDF(blob.KDF)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	key, err := v.kdf.DeriveWith(kdf, secret, blob.Salt)
	if err != nil {
		return "", err
	}
	defer crypto.Zero(key)

	plaintext, err := v.cipher.Decrypt(key, blob.Ciphertext, blob.IV, blob.AuthTag)
	if err != nil {
		return "", err
	}
	defer crypto.Zero(plaintext)

	return string(plaintext), nil
}
