package service

import (
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-pass-envelope/internal/crypto"
	"github.com/MKhiriev/go-pass-envelope/models"
)

// toExportEntry copies the entry's blob unmodified into base64 fields.
func toExportEntry(e models.VaultEntry) models.ExportEntry {
	return models.ExportEntry{
		ID:                  e.ID,
		Title:               e.Title,
		Username:            e.Username,
		Website:             e.Website,
		Category:            e.Category,
		Tags:                e.Tags,
		Notes:               e.Notes,
		CustomFields:        e.CustomFields,
		IsFavorite:          e.IsFavorite,
		Password:            base64.StdEncoding.EncodeToString(e.Password.Ciphertext),
		Salt:                base64.StdEncoding.EncodeToString(e.Password.Salt),
		IV:                  base64.StdEncoding.EncodeToString(e.Password.IV),
		AuthTag:             base64.StdEncoding.EncodeToString(e.Password.AuthTag),
		KDF:                 e.Password.KDF,
		IsPasswordEncrypted: true,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

// exportEntryBlob decodes the sealed password of an export entry. An entry
// without a kdf gets fallbackKDF.
func exportEntryBlob(e models.ExportEntry, fallbackKDF crypto.KDF) (models.EncryptedBlob, error) {
	var (
		blob models.EncryptedBlob
		err  error
	)

	if blob.Ciphertext, err = decodeField("password", e.Password); err != nil {
		return models.EncryptedBlob{}, err
	}
	if blob.Salt, err = decodeField("salt", e.Salt); err != nil {
		return models.EncryptedBlob{}, err
	}
	if blob.IV, err = decodeField("iv", e.IV); err != nil {
		return models.EncryptedBlob{}, err
	}
	if blob.AuthTag, err = decodeField("authTag", e.AuthTag); err != nil {
		return models.EncryptedBlob{}, err
	}

	blob.KDF = e.KDF
	if blob.KDF == "" {
		blob.KDF = string(fallbackKDF)
	}
	return blob, nil
}

func decodeField(name, value string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: %s is missing", ErrInvalidInput, name)
	}
	b, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not base64: %w", ErrInvalidInput, name, err)
	}
	return b, nil
}
