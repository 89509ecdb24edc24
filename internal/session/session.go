// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps the unlocked Master Password of an account in
// guarded memory for the lifetime of a session.
//
// The password is held in a memguard Enclave: encrypted at rest in RAM and
// only decrypted into a locked buffer while a caller is using it.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-pass-envelope/models"
)

// ErrLocked is returned when the session was locked or never unlocked.
var ErrLocked = errors.New("session is locked")

// Session is one unlocked vault. It is safe for concurrent use.
type Session struct {
	account models.Account

	mu       sync.RWMutex
	enclave  *memguard.Enclave
	lastUsed time.Time
	now      func() time.Time
}

// New seals masterPassword into an enclave. The caller's copy of the string
// cannot be wiped; callers should drop it as soon as possible.
func New(account models.Account, masterPassword string) (*Session, error) {
	if masterPassword == "" {
		return nil, errors.New("empty master password")
	}

	s := &Session{account: account, now: time.Now}
	s.enclave = memguard.NewEnclave([]byte(masterPassword))
	s.lastUsed = s.now()

	return s, nil
}

// Account returns the identity the session belongs to.
func (s *Session) Account() models.Account {
	return s.account
}

// MasterPassword decrypts the enclave and returns a copy of the password.
func (s *Session) MasterPassword() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enclave == nil {
		return "", ErrLocked
	}

	buf, err := s.enclave.Open()
	if err != nil {
		return "", err
	}
	defer buf.Destroy()

	s.lastUsed = s.now()
	return string(buf.Bytes()), nil
}

// Replace swaps the sealed password, used after a successful rotation.
func (s *Session) Replace(masterPassword string) error {
	if masterPassword == "" {
		return errors.New("empty master password")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enclave == nil {
		return ErrLocked
	}
	s.enclave = memguard.NewEnclave([]byte(masterPassword))
	s.lastUsed = s.now()
	return nil
}

// Lock drops the enclave. Further calls to MasterPassword fail with ErrLocked.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enclave = nil
}

// IsLocked reports whether the session no longer holds a password.
func (s *Session) IsLocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enclave == nil
}

// IdleFor returns how long the session has not been used.
func (s *Session) IdleFor() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now().Sub(s.lastUsed)
}
