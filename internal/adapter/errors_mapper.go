package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-envelope/internal/store"
	"github.com/MKhiriev/go-pass-envelope/internal/utils"
)

// mapHTTPError turns a non-2xx answer into a sentinel error. A missing
// envelope is reported as store.ErrEnvelopeNotFound, the same as a local
// backend.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp)

	switch {
	case code == http.StatusNotFound:
		return store.ErrEnvelopeNotFound
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServerUnavailable, code, msg)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, code, msg)
	}
}

// errorMessage prefers the JSON error body written by the server and falls
// back to the raw body or the status text.
func errorMessage(resp *resty.Response) string {
	var body utils.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}
	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}
