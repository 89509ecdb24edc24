package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/store"
	"github.com/MKhiriev/go-pass-envelope/internal/validators"
	"github.com/MKhiriev/go-pass-envelope/models"
)

type envelopeDocumentService struct {
	envelopes store.EnvelopeStore
	logger    *logger.Logger
}

// NewEnvelopeDocumentService serves envelope documents straight from the
// store. Wrap it with [NewEnvelopeDocumentValidationService] before exposing
// it.
func NewEnvelopeDocumentService(envelopes store.EnvelopeStore, log *logger.Logger) EnvelopeDocumentService {
	return &envelopeDocumentService{envelopes: envelopes, logger: log}
}

func (s *envelopeDocumentService) GetEnvelope(ctx context.Context, accountID string) (models.Envelope, error) {
	env, err := s.envelopes.GetEnvelope(ctx, accountID)
	if err != nil {
		return models.Envelope{}, storageError("read envelope", err)
	}
	return env, nil
}

func (s *envelopeDocumentService) PutEnvelope(ctx context.Context, env models.Envelope) error {
	if err := s.envelopes.PutEnvelope(ctx, env); err != nil {
		return storageError("put envelope", err)
	}
	logger.FromContext(ctx).Info().Str("func", "envelopeDocumentService.PutEnvelope").Str("account_id", env.AccountID).Msg("envelope stored")
	return nil
}

func (s *envelopeDocumentService) DeleteEnvelope(ctx context.Context, accountID string) error {
	if err := s.envelopes.DeleteEnvelope(ctx, accountID); err != nil {
		return storageError("delete envelope", err)
	}
	return nil
}

// EnvelopeDocumentValidationService rejects malformed documents and empty
// account ids before they reach the inner service.
type EnvelopeDocumentValidationService struct {
	inner     EnvelopeDocumentService
	validator validators.Validator
}

func NewEnvelopeDocumentValidationService() *EnvelopeDocumentValidationService {
	return &EnvelopeDocumentValidationService{validator: validators.NewEnvelopeValidator()}
}

// Wrap decorates inner and returns the decorator.
func (v *EnvelopeDocumentValidationService) Wrap(inner EnvelopeDocumentService) EnvelopeDocumentService {
	v.inner = inner
	return v
}

func (v *EnvelopeDocumentValidationService) GetEnvelope(ctx context.Context, accountID string) (models.Envelope, error) {
	if accountID == "" {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrInvalidInput, validators.ErrEmptyAccountID)
	}
	return v.inner.GetEnvelope(ctx, accountID)
}

func (v *EnvelopeDocumentValidationService) PutEnvelope(ctx context.Context, env models.Envelope) error {
	if err := v.validator.Validate(ctx, env); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return v.inner.PutEnvelope(ctx, env)
}

func (v *EnvelopeDocumentValidationService) DeleteEnvelope(ctx context.Context, accountID string) error {
	if accountID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, validators.ErrEmptyAccountID)
	}
	return v.inner.DeleteEnvelope(ctx, accountID)
}
