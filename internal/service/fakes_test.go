package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-envelope/internal/config"
	"github.com/MKhiriev/go-pass-envelope/internal/crypto"
	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/session"
	"github.com/MKhiriev/go-pass-envelope/internal/store"
	"github.com/MKhiriev/go-pass-envelope/models"
)

const (
	testMasterPassword = "Tr0ub4dor&3xyz!!"
	testPIN            = "482913"
	testWrongPIN       = "000000"
)

var testAccount = models.Account{UID: "acc-1", Email: "alice@example.com"}

var testNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

// fastVault keeps argon2id and pbkdf2 cheap enough for unit tests.
func fastVault(t *testing.T) EntryVault {
	t.Helper()
	kdf, err := crypto.NewKeyDerivation(crypto.KDFArgon2id, crypto.KDFParams{
		ArgonTime:        1,
		ArgonMemory:      64,
		ArgonThreads:     1,
		PBKDF2Iterations: 1000,
	})
	require.NoError(t, err)
	return NewEntryVault(kdf, crypto.NewAuthenticatedCipher())
}

func testClientConfig() config.ClientConfig {
	return config.ClientConfig{
		Crypto:  config.Crypto{Parallelism: 2},
		Session: config.Session{UnlockInterval: time.Minute, UnlockBurst: 3},
	}
}

// memEnvelopes is an in-memory store.EnvelopeStore.
type memEnvelopes struct {
	mu     sync.Mutex
	docs   map[string]models.Envelope
	puts   int
	putErr func(n int, env models.Envelope) error
}

func newMemEnvelopes() *memEnvelopes {
	return &memEnvelopes{docs: make(map[string]models.Envelope)}
}

func (m *memEnvelopes) GetEnvelope(_ context.Context, accountID string) (models.Envelope, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	env, ok := m.docs[accountID]
	if !ok {
		return models.Envelope{}, store.ErrEnvelopeNotFound
	}
	return env, nil
}

func (m *memEnvelopes) PutEnvelope(_ context.Context, env models.Envelope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.putErr != nil {
		if err := m.putErr(m.puts, env); err != nil {
			return err
		}
	}
	m.docs[env.AccountID] = env
	return nil
}

func (m *memEnvelopes) DeleteEnvelope(_ context.Context, accountID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[accountID]; !ok {
		return store.ErrEnvelopeNotFound
	}
	delete(m.docs, accountID)
	return nil
}

func (m *memEnvelopes) get(accountID string) models.Envelope {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.docs[accountID]
}

// memEntries is an in-memory store.EntryRepository with transactional
// batch writes.
type memEntries struct {
	mu      sync.Mutex
	entries map[string]models.VaultEntry

	saveErr   error
	commitErr error
	listErr   error
}

func newMemEntries(entries ...models.VaultEntry) *memEntries {
	m := &memEntries{entries: make(map[string]models.VaultEntry)}
	for _, e := range entries {
		m.entries[e.ID] = e
	}
	return m
}

func (m *memEntries) SaveEntry(_ context.Context, entry models.VaultEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *memEntries) GetEntry(_ context.Context, accountID, id string) (models.VaultEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok || e.AccountID != accountID {
		return models.VaultEntry{}, store.ErrEntryNotFound
	}
	return e, nil
}

func (m *memEntries) ListEntries(_ context.Context, accountID string) ([]models.VaultEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []models.VaultEntry
	for _, e := range m.entries {
		if e.AccountID == accountID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memEntries) DeleteEntry(_ context.Context, accountID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok || e.AccountID != accountID {
		return store.ErrEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *memEntries) SaveEntries(_ context.Context, _ string, entries []models.VaultEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	for _, e := range entries {
		m.entries[e.ID] = e
	}
	return nil
}

func (m *memEntries) ReplacePasswords(ctx context.Context, accountID string, blobs map[string]models.EncryptedBlob, beforeCommit func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	staged := make(map[string]models.VaultEntry, len(blobs))
	for id, blob := range blobs {
		e, ok := m.entries[id]
		if !ok || e.AccountID != accountID {
			return store.ErrEntryNotFound
		}
		e.Password = blob
		staged[id] = e
	}
	if beforeCommit != nil {
		if err := beforeCommit(ctx); err != nil {
			return err
		}
	}
	if m.commitErr != nil {
		return m.commitErr
	}
	for id, e := range staged {
		m.entries[id] = e
	}
	return nil
}

func (m *memEntries) snapshot() map[string]models.VaultEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]models.VaultEntry, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// seqIDs issues gen-01, gen-02, ...
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("gen-%02d", g.n)
}

// testVault bundles real services over in-memory stores.
type testVault struct {
	envelopes *memEnvelopes
	entries   *memEntries
	sealer    EntryVault
	sessions  *session.Manager
	locker    *AccountLocker

	envelope *envelopeService
	entrySvc EntryService
	exports  *exportService
}

func newTestVault(t *testing.T, seed ...models.VaultEntry) *testVault {
	t.Helper()

	tv := &testVault{
		envelopes: newMemEnvelopes(),
		entries:   newMemEntries(seed...),
		sealer:    fastVault(t),
		sessions:  session.NewManager(),
		locker:    NewAccountLocker(),
	}
	log := logger.Nop()
	ids := &seqIDs{}

	tv.envelope = NewEnvelopeService(tv.envelopes, tv.entries, tv.sealer, tv.sessions, tv.locker, testClientConfig(), log).(*envelopeService)
	tv.envelope.now = func() time.Time { return testNow }
	tv.entrySvc = NewEntryService(tv.entries, tv.sealer, tv.locker, ids, log)
	tv.entrySvc.(*entryService).now = func() time.Time { return testNow }
	tv.exports = NewExportService(tv.entries, store.NewExportFileStorage(log), tv.sealer, tv.locker, ids, config.Crypto{Parallelism: 2}, log).(*exportService)
	tv.exports.now = func() time.Time { return testNow }

	return tv
}

// unlocked sets the vault up with the test credentials and unlocks it.
func (tv *testVault) unlocked(t *testing.T) *session.Session {
	t.Helper()
	ctx := context.Background()

	_, err := tv.envelope.Setup(ctx, testAccount, testMasterPassword, testPIN)
	require.NoError(t, err)
	sess, err := tv.envelope.Unlock(ctx, testAccount, testPIN)
	require.NoError(t, err)
	return sess
}

func (tv *testVault) addEntry(t *testing.T, sess *session.Session, title, username, website, password string) models.VaultEntry {
	t.Helper()
	e, err := tv.entrySvc.Save(context.Background(), sess, models.VaultEntry{
		Title:    title,
		Username: username,
		Website:  website,
	}, password)
	require.NoError(t, err)
	return e
}

var errBoom = errors.New("boom")
