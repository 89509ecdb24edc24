// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader: the request has no Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header is not "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrTokenRejected: the token failed signature, issuer or expiry checks.
	ErrTokenRejected = errors.New("token is invalid or expired")

	// ErrForeignAccount: the token subject differs from the account in the path.
	ErrForeignAccount = errors.New("token does not grant access to this account")

	// ErrMalformedBody: the request body is not a JSON envelope.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrAccountMismatch: the envelope body names another account than the path.
	ErrAccountMismatch = errors.New("envelope account does not match the path")
)
