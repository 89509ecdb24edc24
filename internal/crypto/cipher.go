// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// IVSize is the GCM nonce length.
	IVSize = 12
	// TagSize is the GCM authentication tag length.
	TagSize = 16
)

type aesGCM struct{}

// NewAuthenticatedCipher returns AES-256-GCM with a detached tag.
func NewAuthenticatedCipher() AuthenticatedCipher {
	return aesGCM{}
}

func (aesGCM) Encrypt(key, plaintext []byte) ([]byte, []byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, nil, err
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, nil, fmt.Errorf("generate iv: %w", err)
	}

	// Seal appends the tag to the ciphertext; split it off.
	sealed := gcm.Seal(nil, iv, plaintext, nil)
	split := len(sealed) - TagSize
	ciphertext := sealed[:split:split]
	tag := sealed[split:]

	return ciphertext, iv, tag, nil
}

func (aesGCM) Decrypt(key, ciphertext, iv, authTag []byte) ([]byte, error) {
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: iv is %d bytes, want %d", ErrInvalidInput, len(iv), IVSize)
	}
	if len(authTag) != TagSize {
		return nil, fmt.Errorf("%w: auth tag is %d bytes, want %d", ErrInvalidInput, len(authTag), TagSize)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(authTag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, authTag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIntegrity, err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidInput, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
