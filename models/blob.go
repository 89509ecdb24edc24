// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedBlob is the output of one authenticated encryption: the
// ciphertext, its IV and detached tag, and the salt the key was derived from.
//
// KDF names the key derivation function the salt is meant for. An empty KDF
// means the legacy default for the surrounding container version.
type EncryptedBlob struct {
	Ciphertext []byte `json:"ciphertext"`
	IV         []byte `json:"iv"`
	AuthTag    []byte `json:"authTag"`
	Salt       []byte `json:"salt"`
	KDF        string `json:"kdf,omitempty"`
}

// IsEmpty reports whether the blob carries no ciphertext.
func (b EncryptedBlob) IsEmpty() bool {
	return len(b.Ciphertext) == 0
}

// Clone returns a deep copy so that the caller can hand the blob to another
// owner without sharing backing arrays.
func (b EncryptedBlob) Clone() EncryptedBlob {
	return EncryptedBlob{
		Ciphertext: append([]byte(nil), b.Ciphertext...),
		IV:         append([]byte(nil), b.IV...),
		AuthTag:    append([]byte(nil), b.AuthTag...),
		Salt:       append([]byte(nil), b.Salt...),
		KDF:        b.KDF,
	}
}
