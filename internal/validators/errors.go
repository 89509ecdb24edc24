package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEntryID           = errors.New("entry id is required")
	ErrEmptyAccountID         = errors.New("account id is required")
	ErrEmptyTitle             = errors.New("title is required")
	ErrEmptyCustomFieldName   = errors.New("custom field name is required")
	ErrDuplicateCustomField   = errors.New("duplicate custom field name")
	ErrEmptyCiphertext        = errors.New("ciphertext is required")
	ErrInvalidSalt            = errors.New("invalid salt length")
	ErrInvalidIV              = errors.New("invalid iv length")
	ErrInvalidAuthTag         = errors.New("invalid auth tag length")
	ErrUnsupportedKDF         = errors.New("unsupported kdf")
	ErrInvalidEnvelopeVersion = errors.New("invalid envelope version")
)
