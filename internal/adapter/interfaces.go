// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the vault client keep its envelope document on the
// envelope server.
//
// [NewHTTPEnvelopeStore] implements [store.EnvelopeStore] over the server's
// REST API, so the envelope service cannot tell a remote document from a
// local one. HTTP statuses are mapped by mapHTTPError to the sentinel errors
// in errors.go; a 404 becomes [store.ErrEnvelopeNotFound].
package adapter

import "github.com/MKhiriev/go-pass-envelope/internal/store"

var _ store.EnvelopeStore = (*httpEnvelopeStore)(nil)
