// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault entries and envelope documents before they
// reach a store.
//
// A Validator accepts a value and, optionally, a list of field names that
// narrows the check to those fields. With no field names every field the
// validator knows about is checked.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
