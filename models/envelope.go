// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EnvelopeVersion is the format version written by this build.
const EnvelopeVersion = 1

// Envelope is the Master Password sealed under a PIN-derived key.
//
// It is stored as a single document keyed by AccountID and replaced as a
// whole on credential rotation. The PIN is never part of it.
type Envelope struct {
	AccountID               string    `json:"accountId"`
	EncryptedMasterPassword []byte    `json:"encryptedMasterPassword"`
	Salt                    []byte    `json:"salt"`
	IV                      []byte    `json:"iv"`
	AuthTag                 []byte    `json:"authTag"`
	KDF                     string    `json:"kdf,omitempty"`
	Version                 int       `json:"version"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// Blob returns the sealed Master Password as an [EncryptedBlob].
func (e Envelope) Blob() EncryptedBlob {
	return EncryptedBlob{
		Ciphertext: e.EncryptedMasterPassword,
		IV:         e.IV,
		AuthTag:    e.AuthTag,
		Salt:       e.Salt,
		KDF:        e.KDF,
	}
}

// NewEnvelope builds an envelope document for accountID from a sealed blob.
func NewEnvelope(accountID string, blob EncryptedBlob, now time.Time) Envelope {
	return Envelope{
		AccountID:               accountID,
		EncryptedMasterPassword: blob.Ciphertext,
		Salt:                    blob.Salt,
		IV:                      blob.IV,
		AuthTag:                 blob.AuthTag,
		KDF:                     blob.KDF,
		Version:                 EnvelopeVersion,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

// EnvelopeState is the lifecycle state of an account's envelope as seen by
// the current process.
type EnvelopeState int

const (
	StateUninitialized EnvelopeState = iota
	StateConfigured
	StateUnlocked
)

func (s EnvelopeState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConfigured:
		return "configured"
	case StateUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}
