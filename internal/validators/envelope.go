package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-envelope/models"
)

// Field names understood by EnvelopeValidator.
const (
	FieldEnvelopeAccount = "account_id"
	FieldEnvelopeBlob    = "blob"
	FieldEnvelopeVersion = "version"
)

// EnvelopeValidator checks the shape of [models.Envelope] documents. The
// server cannot decrypt envelopes, so shape is all it can check.
type EnvelopeValidator struct{}

func NewEnvelopeValidator() Validator {
	return &EnvelopeValidator{}
}

func (v *EnvelopeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Envelope:
		return v.validateEnvelope(ctx, value, fields...)
	case *models.Envelope:
		return v.validateEnvelope(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *EnvelopeValidator) validateEnvelope(_ context.Context, env models.Envelope, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEnvelopeAccount, FieldEnvelopeBlob, FieldEnvelopeVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldEnvelopeAccount:
			if env.AccountID == "" {
				return ErrEmptyAccountID
			}
		case FieldEnvelopeBlob:
			if err := validateBlob(env.Blob()); err != nil {
				return err
			}
		case FieldEnvelopeVersion:
			if env.Version < 1 || env.Version > models.EnvelopeVersion {
				return fmt.Errorf("%w: %d", ErrInvalidEnvelopeVersion, env.Version)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
