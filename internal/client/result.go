package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-envelope/internal/service"
	"github.com/MKhiriev/go-pass-envelope/models"
)

func check(res models.Result) error {
	if res.Success {
		return nil
	}
	return &ResultError{Code: res.Code, Message: res.Error}
}

// payload asserts the type of a successful result's data.
func payload[T any](res models.Result) (T, error) {
	var zero T
	if err := check(res); err != nil {
		return zero, err
	}
	v, ok := res.Data.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T", errUnexpectedResult, res.Data)
	}
	return v, nil
}

// ensureUnlocked asks for the PIN unless this process already holds an
// unlocked session.
func (a *App) ensureUnlocked(ctx context.Context) error {
	state, err := payload[models.EnvelopeState](a.vault().Status(ctx))
	if err != nil {
		return err
	}
	switch state {
	case models.StateUnlocked:
		return nil
	case models.StateUninitialized:
		return &ResultError{Code: service.CodeNotConfigured, Message: "vault is not set up yet"}
	}

	pin, err := a.prompter.Secret(ctx, "PIN:")
	if err != nil {
		return err
	}
	return check(a.vault().Unlock(ctx, pin))
}
