package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-envelope/internal/crypto"
	"github.com/MKhiriev/go-pass-envelope/models"
)

// Field names understood by EntryValidator.
const (
	FieldEntryID      = "id"
	FieldAccountID    = "account_id"
	FieldTitle        = "title"
	FieldCustomFields = "custom_fields"
	FieldPassword     = "password"
)

// EntryValidator checks [models.VaultEntry] values.
type EntryValidator struct{}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.VaultEntry:
		return v.validateEntry(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateEntry(_ context.Context, entry models.VaultEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntryID, FieldAccountID, FieldTitle, FieldCustomFields, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEntryID:
			if strings.TrimSpace(entry.ID) == "" {
				return ErrEmptyEntryID
			}
		case FieldAccountID:
			if entry.AccountID == "" {
				return ErrEmptyAccountID
			}
		case FieldTitle:
			if strings.TrimSpace(entry.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldCustomFields:
			seen := make(map[string]struct{}, len(entry.CustomFields))
			for i, cf := range entry.CustomFields {
				name := strings.TrimSpace(cf.Name)
				if name == "" {
					return fmt.Errorf("custom field #%d: %w", i, ErrEmptyCustomFieldName)
				}
				if _, dup := seen[name]; dup {
					return fmt.Errorf("%w: %q", ErrDuplicateCustomField, name)
				}
				seen[name] = struct{}{}
			}
		case FieldPassword:
			if err := validateBlob(entry.Password); err != nil {
				return fmt.Errorf("password: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBlob checks the shape of a sealed value. It does not try to open it.
func validateBlob(b models.EncryptedBlob) error {
	if len(b.Ciphertext) == 0 {
		return ErrEmptyCiphertext
	}
	if len(b.Salt) < crypto.MinSaltSize {
		return fmt.Errorf("%w: %d bytes", ErrInvalidSalt, len(b.Salt))
	}
	if len(b.IV) != crypto.IVSize {
		return fmt.Errorf("%w: %d bytes", ErrInvalidIV, len(b.IV))
	}
	if len(b.AuthTag) != crypto.TagSize {
		return fmt.Errorf("%w: %d bytes", ErrInvalidAuthTag, len(b.AuthTag))
	}
	if _, err := crypto.ParseKDF(b.KDF); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedKDF, err)
	}
	return nil
}
