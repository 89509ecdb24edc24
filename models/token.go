// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT that binds a caller to one account id.
//
// SignedString holds the compact form sent in the Authorization header.
// AccountID is a cached copy of the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	AccountID    string `json:"-"`
}

// GetAccountID returns the subject claim of the token.
func (t *Token) GetAccountID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting AccountID from token: %w", err)
	}
	if sub == "" {
		return "", errors.New("empty subject in token")
	}

	return sub, nil
}

func (t *Token) String() string {
	return t.SignedString
}
