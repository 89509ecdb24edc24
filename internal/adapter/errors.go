package adapter

import "errors"

var (
	ErrBadRequest        = errors.New("envelope server rejected the request")
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrForbidden         = errors.New("access to the envelope is forbidden")
	ErrServerUnavailable = errors.New("envelope server unavailable")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
)
