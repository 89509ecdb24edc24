// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned when a prompt is left with esc or ctrl+c.
	ErrUserQuit = errors.New("prompt cancelled")

	// ErrSecretMismatch is returned by [TUI.NewSecret] when the confirmation
	// differs from the first entry.
	ErrSecretMismatch = errors.New("entries do not match")
)
