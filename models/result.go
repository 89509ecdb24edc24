// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result is the outcome returned across the UI boundary. Error holds a
// user-facing message and Code a stable machine-readable class; both are
// empty on success. Data carries an optional payload.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK returns a successful result with an optional payload.
func OK(data any) Result {
	return Result{Success: true, Data: data}
}

// Fail returns a failed result.
func Fail(code, message string) Result {
	return Result{Success: false, Code: code, Error: message}
}
