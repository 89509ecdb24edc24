package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-envelope/internal/config"
	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/store"
	"github.com/MKhiriev/go-pass-envelope/internal/utils"
	"github.com/MKhiriev/go-pass-envelope/models"
)

const envelopePath = "/api/envelopes/{accountID}"

type httpEnvelopeStore struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPEnvelopeStore returns a [store.EnvelopeStore] backed by the envelope
// server at cfg.HTTPAddress. cfg.Token is sent as the bearer token.
func NewHTTPEnvelopeStore(cfg config.Adapter, log *logger.Logger) (store.EnvelopeStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpEnvelopeStore{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout, strings.TrimSpace(cfg.Token)),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetEnvelope fetches GET /api/envelopes/{accountID}.
func (h *httpEnvelopeStore) GetEnvelope(ctx context.Context, accountID string) (models.Envelope, error) {
	var env models.Envelope

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("accountID", accountID).
		SetResult(&env).
		Get(envelopePath)
	if err != nil {
		return models.Envelope{}, transportError(ctx, "get envelope", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Envelope{}, err
	}

	return env, nil
}

// PutEnvelope stores the whole document with PUT /api/envelopes/{accountID}.
func (h *httpEnvelopeStore) PutEnvelope(ctx context.Context, env models.Envelope) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("accountID", env.AccountID).
		SetHeader("Content-Type", "application/json").
		SetBody(env).
		Put(envelopePath)
	if err != nil {
		return transportError(ctx, "put envelope", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().Str("func", "httpEnvelopeStore.PutEnvelope").Str("account_id", env.AccountID).Msg("envelope uploaded")
	return nil
}

func (h *httpEnvelopeStore) DeleteEnvelope(ctx context.Context, accountID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("accountID", accountID).
		Delete(envelopePath)
	if err != nil {
		return transportError(ctx, "delete envelope", err)
	}
	return mapHTTPError(resp)
}

// transportError keeps cancellation visible to the caller and marks every
// other transport failure as ErrServerUnavailable.
func transportError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", op, ctxErr)
	}
	return fmt.Errorf("%w: %s: %w", ErrServerUnavailable, op, err)
}
