// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Export file format versions. The version selects which key opens the
// entry blobs on import.
const (
	// ExportVersionLegacy files carry blobs sealed under the export key
	// context (Master Password + e-mail + UID).
	ExportVersionLegacy = 1
	// ExportVersionCurrent files carry blobs sealed under the Master Password.
	ExportVersionCurrent = 2
)

// ExportFile is the portable export document.
type ExportFile struct {
	ExportInfo ExportInfo    `json:"exportInfo"`
	Entries    []ExportEntry `json:"entries"`
}

// ExportInfo is the export manifest. KeyFingerprint is diagnostic only.
type ExportInfo struct {
	ExportDate     time.Time `json:"exportDate"`
	Version        int       `json:"version"`
	EntryCount     int       `json:"entryCount"`
	IsEncrypted    bool      `json:"isEncrypted"`
	KeyFingerprint string    `json:"keyFingerprint,omitempty"`
}

// ExportEntry is one entry in an export file.
//
// When IsPasswordEncrypted is true, Password, Salt, IV and AuthTag hold
// base64 encoded blob parts. Otherwise Password holds the plaintext.
type ExportEntry struct {
	ID                  string        `json:"id,omitempty"`
	Title               string        `json:"title"`
	Username            string        `json:"username"`
	Website             string        `json:"website"`
	Category            string        `json:"category,omitempty"`
	Tags                []string      `json:"tags,omitempty"`
	Notes               string        `json:"notes,omitempty"`
	CustomFields        []CustomField `json:"customFields,omitempty"`
	IsFavorite          bool          `json:"isFavorite"`
	Password            string        `json:"password"`
	Salt                string        `json:"salt,omitempty"`
	IV                  string        `json:"iv,omitempty"`
	AuthTag             string        `json:"authTag,omitempty"`
	KDF                 string        `json:"kdf,omitempty"`
	IsPasswordEncrypted bool          `json:"isPasswordEncrypted"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// Metadata returns the clear part of the entry as a [VaultEntry] without a
// password blob.
func (e ExportEntry) Metadata() VaultEntry {
	return VaultEntry{
		ID:           e.ID,
		Title:        e.Title,
		Username:     e.Username,
		Website:      e.Website,
		Category:     e.Category,
		Tags:         append([]string(nil), e.Tags...),
		Notes:        e.Notes,
		CustomFields: append([]CustomField(nil), e.CustomFields...),
		IsFavorite:   e.IsFavorite,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
