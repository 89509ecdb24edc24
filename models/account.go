// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account identifies the owner of an envelope and a vault.
//
// UID doubles as the key of the remote envelope document. Email and UID
// together with the Master Password form the export key context.
type Account struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// ExportKey builds the export key context for the account: the plain
// concatenation of the Master Password, the e-mail and the UID.
// The result is secret material and must never be logged.
func (a Account) ExportKey(masterPassword string) string {
	return masterPassword + a.Email + a.UID
}

// IsZero reports whether the account carries no identity.
func (a Account) IsZero() bool {
	return a.UID == "" && a.Email == ""
}
