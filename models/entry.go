// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// VaultEntry is a single password record. Everything except Password is
// stored in clear; Password is re-sealed with a fresh salt and IV on every
// save.
type VaultEntry struct {
	ID           string        `json:"id"`
	AccountID    string        `json:"-"`
	Title        string        `json:"title"`
	Username     string        `json:"username"`
	Website      string        `json:"website"`
	Category     string        `json:"category"`
	Tags         []string      `json:"tags"`
	Notes        string        `json:"notes"`
	CustomFields []CustomField `json:"customFields"`
	IsFavorite   bool          `json:"isFavorite"`
	Password     EncryptedBlob `json:"password"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// CustomField is a user-defined name/value pair attached to an entry.
type CustomField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Hidden bool   `json:"hidden"`
}

// DuplicateKey identifies entries that describe the same account on the same
// site. Comparison is case-insensitive and ignores surrounding whitespace.
type DuplicateKey struct {
	Title    string
	Username string
	Website  string
}

// DuplicateKey returns the key used for duplicate detection during import.
func (e VaultEntry) DuplicateKey() DuplicateKey {
	return DuplicateKey{
		Title:    normalizeKeyPart(e.Title),
		Username: normalizeKeyPart(e.Username),
		Website:  normalizeKeyPart(e.Website),
	}
}

func normalizeKeyPart(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
