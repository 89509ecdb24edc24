package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-envelope/internal/crypto"
	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/mock"
	"github.com/MKhiriev/go-pass-envelope/internal/store"
	"github.com/MKhiriev/go-pass-envelope/models"
)

func validEnvelope() models.Envelope {
	return models.Envelope{
		AccountID:               testAccount.UID,
		EncryptedMasterPassword: []byte("ciphertext"),
		Salt:                    make([]byte, crypto.SaltSize),
		IV:                      make([]byte, crypto.IVSize),
		AuthTag:                 make([]byte, crypto.TagSize),
		KDF:                     string(crypto.KDFArgon2id),
		Version:                 models.EnvelopeVersion,
		CreatedAt:               testNow,
		UpdatedAt:               testNow,
	}
}

func TestEnvelopeDocumentService(t *testing.T) {
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envelopes := mock.NewMockEnvelopeStore(ctrl)
		envelopes.EXPECT().GetEnvelope(gomock.Any(), testAccount.UID).Return(validEnvelope(), nil)

		svc := NewEnvelopeDocumentValidationService().Wrap(NewEnvelopeDocumentService(envelopes, logger.Nop()))
		got, err := svc.GetEnvelope(ctx, testAccount.UID)
		require.NoError(t, err)
		assert.Equal(t, validEnvelope(), got)
	})

	t.Run("get missing passes not found through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envelopes := mock.NewMockEnvelopeStore(ctrl)
		envelopes.EXPECT().GetEnvelope(gomock.Any(), "nobody").Return(models.Envelope{}, store.ErrEnvelopeNotFound)

		_, err := NewEnvelopeDocumentService(envelopes, logger.Nop()).GetEnvelope(ctx, "nobody")
		assert.ErrorIs(t, err, store.ErrEnvelopeNotFound)
		assert.NotErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("put", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envelopes := mock.NewMockEnvelopeStore(ctrl)
		envelopes.EXPECT().PutEnvelope(gomock.Any(), validEnvelope()).Return(nil)

		svc := NewEnvelopeDocumentValidationService().Wrap(NewEnvelopeDocumentService(envelopes, logger.Nop()))
		assert.NoError(t, svc.PutEnvelope(ctx, validEnvelope()))
	})

	t.Run("put backend down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envelopes := mock.NewMockEnvelopeStore(ctrl)
		envelopes.EXPECT().PutEnvelope(gomock.Any(), gomock.Any()).Return(errBoom)

		err := NewEnvelopeDocumentService(envelopes, logger.Nop()).PutEnvelope(ctx, validEnvelope())
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envelopes := mock.NewMockEnvelopeStore(ctrl)
		envelopes.EXPECT().DeleteEnvelope(gomock.Any(), testAccount.UID).Return(nil)

		svc := NewEnvelopeDocumentValidationService().Wrap(NewEnvelopeDocumentService(envelopes, logger.Nop()))
		assert.NoError(t, svc.DeleteEnvelope(ctx, testAccount.UID))
	})
}

func TestEnvelopeDocumentValidationService_Rejects(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(env *models.Envelope)
	}{
		{"no account", func(env *models.Envelope) { env.AccountID = "" }},
		{"no ciphertext", func(env *models.Envelope) { env.EncryptedMasterPassword = nil }},
		{"short salt", func(env *models.Envelope) { env.Salt = env.Salt[:8] }},
		{"bad iv", func(env *models.Envelope) { env.IV = env.IV[:11] }},
		{"bad tag", func(env *models.Envelope) { env.AuthTag = nil }},
		{"unknown kdf", func(env *models.Envelope) { env.KDF = "md5" }},
		{"future version", func(env *models.Envelope) { env.Version = models.EnvelopeVersion + 1 }},
		{"zero version", func(env *models.Envelope) { env.Version = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			envelopes := mock.NewMockEnvelopeStore(ctrl)

			svc := NewEnvelopeDocumentValidationService().Wrap(NewEnvelopeDocumentService(envelopes, logger.Nop()))
			env := validEnvelope()
			tt.mutate(&env)

			assert.ErrorIs(t, svc.PutEnvelope(ctx, env), ErrInvalidInput)
		})
	}

	t.Run("empty account id on get and delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewEnvelopeDocumentValidationService().Wrap(NewEnvelopeDocumentService(mock.NewMockEnvelopeStore(ctrl), logger.Nop()))

		_, err := svc.GetEnvelope(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, svc.DeleteEnvelope(ctx, ""), ErrInvalidInput)
	})
}
