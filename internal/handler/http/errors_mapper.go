package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-envelope/internal/service"
	"github.com/MKhiriev/go-pass-envelope/internal/store"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrMalformedBody, http.StatusBadRequest},
	{ErrAccountMismatch, http.StatusBadRequest},
	{service.ErrInvalidInput, http.StatusBadRequest},
	{store.ErrEnvelopeNotFound, http.StatusNotFound},
	{ErrForeignAccount, http.StatusForbidden},
	{ErrTokenRejected, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{store.ErrRetryable, http.StatusServiceUnavailable},
	{service.ErrStorageUnavailable, http.StatusInternalServerError},
}

// statusFromError maps err to a response status; unknown errors are 500.
func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage keeps storage details out of responses.
func publicMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
