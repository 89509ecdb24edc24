// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"sync"
	"time"
)

// Manager tracks at most one session per account id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Put registers s, locking any session it replaces.
func (m *Manager) Put(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := s.Account().UID
	if old, ok := m.sessions[id]; ok && old != s {
		old.Lock()
	}
	m.sessions[id] = s
}

// Get returns the unlocked session of accountID.
func (m *Manager) Get(accountID string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[accountID]
	m.mu.RUnlock()

	if !ok || s.IsLocked() {
		return nil, false
	}
	return s, true
}

// Lock locks and forgets the session of accountID.
func (m *Manager) Lock(accountID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[accountID]; ok {
		s.Lock()
		delete(m.sessions, accountID)
	}
}

// LockAll locks every session, e.g. on shutdown.
func (m *Manager) LockAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		s.Lock()
		delete(m.sessions, id)
	}
}

// LockIdle locks sessions idle for at least timeout and returns the account
// ids it locked.
func (m *Manager) LockIdle(timeout time.Duration) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var locked []string
	for id, s := range m.sessions {
		if s.IsLocked() || s.IdleFor() >= timeout {
			s.Lock()
			delete(m.sessions, id)
			locked = append(locked, id)
		}
	}
	return locked
}
