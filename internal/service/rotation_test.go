package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-envelope/models"
)

const (
	newMasterPassword = "c0rrect-h0rse-battery-staple"
	newPIN            = "725106"
)

type phaseRecorder struct {
	mu     sync.Mutex
	phases []models.RotationPhase
}

func (r *phaseRecorder) record(_ string, p models.RotationPhase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phases = append(r.phases, p)
}

func rotateRequest() models.RotateRequest {
	return models.RotateRequest{
		OldPassword: testMasterPassword,
		OldPIN:      testPIN,
		NewPassword: newMasterPassword,
		NewPIN:      newPIN,
	}
}

func TestEnvelopeService_Rotate(t *testing.T) {
	tv := newTestVault(t)
	sess := tv.unlocked(t)
	ctx := context.Background()

	github := tv.addEntry(t, sess, "GitHub", "alice", "github.com", "p@ss1")
	mail := tv.addEntry(t, sess, "Mail", "alice@example.com", "mail.example.com", "s3cret")
	oldEnv := tv.envelopes.get(testAccount.UID)

	rec := &phaseRecorder{}
	tv.envelope.onPhase = rec.record

	require.NoError(t, tv.envelope.Rotate(ctx, testAccount, rotateRequest()))

	assert.Equal(t, []models.RotationPhase{
		models.RotationVerifying,
		models.RotationVerified,
		models.RotationRotating,
		models.RotationDone,
	}, rec.phases)

	newEnv := tv.envelopes.get(testAccount.UID)
	assert.Equal(t, oldEnv.CreatedAt, newEnv.CreatedAt)
	assert.NotEqual(t, oldEnv.Salt, newEnv.Salt)

	mp, err := tv.sealer.Open(newPIN, newEnv.Blob())
	require.NoError(t, err)
	assert.Equal(t, newMasterPassword, mp)

	_, err = tv.sealer.Open(testPIN, newEnv.Blob())
	assert.ErrorIs(t, err, ErrIntegrity)

	stored := tv.entries.snapshot()
	for id, want := range map[string]string{github.ID: "p@ss1", mail.ID: "s3cret"} {
		got, err := tv.sealer.Open(newMasterPassword, stored[id].Password)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		_, err = tv.sealer.Open(testMasterPassword, stored[id].Password)
		assert.ErrorIs(t, err, ErrIntegrity)
	}

	// the open session follows the new password
	got, err := sess.MasterPassword()
	require.NoError(t, err)
	assert.Equal(t, newMasterPassword, got)

	tv.envelope.Lock(testAccount.UID)
	_, err = tv.envelope.Unlock(ctx, testAccount, testPIN)
	assert.ErrorIs(t, err, ErrWrongCredential)
	_, err = tv.envelope.Unlock(ctx, testAccount, newPIN)
	assert.NoError(t, err)
}

func TestEnvelopeService_Rotate_EmptyVault(t *testing.T) {
	tv := newTestVault(t)
	tv.unlocked(t)

	require.NoError(t, tv.envelope.Rotate(context.Background(), testAccount, rotateRequest()))

	mp, err := tv.sealer.Open(newPIN, tv.envelopes.get(testAccount.UID).Blob())
	require.NoError(t, err)
	assert.Equal(t, newMasterPassword, mp)
}

func TestEnvelopeService_Rotate_VerificationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.RotateRequest)
		wantErr error
	}{
		{
			name:    "wrong PIN",
			mutate:  func(r *models.RotateRequest) { r.OldPIN = testWrongPIN },
			wantErr: ErrWrongCredential,
		},
		{
			name:    "wrong master password",
			mutate:  func(r *models.RotateRequest) { r.OldPassword = "Tr0ub4dor&3xyz!?" },
			wantErr: ErrWrongCredential,
		},
		{
			name:    "missing new PIN",
			mutate:  func(r *models.RotateRequest) { r.NewPIN = "" },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv := newTestVault(t)
			sess := tv.unlocked(t)
			tv.addEntry(t, sess, "GitHub", "alice", "github.com", "p@ss1")

			before := tv.entries.snapshot()
			oldEnv := tv.envelopes.get(testAccount.UID)

			req := rotateRequest()
			tt.mutate(&req)
			err := tv.envelope.Rotate(context.Background(), testAccount, req)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, tv.entries.snapshot())
			assert.Equal(t, oldEnv, tv.envelopes.get(testAccount.UID))
		})
	}
}

func TestEnvelopeService_Rotate_EnvelopePutFails(t *testing.T) {
	tv := newTestVault(t)
	sess := tv.unlocked(t)
	tv.addEntry(t, sess, "GitHub", "alice", "github.com", "p@ss1")

	before := tv.entries.snapshot()
	oldEnv := tv.envelopes.get(testAccount.UID)
	tv.envelopes.putErr = func(int, models.Envelope) error { return errBoom }

	rec := &phaseRecorder{}
	tv.envelope.onPhase = rec.record

	err := tv.envelope.Rotate(context.Background(), testAccount, rotateRequest())
	require.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, errBoom)

	assert.Equal(t, before, tv.entries.snapshot())
	assert.Equal(t, oldEnv, tv.envelopes.get(testAccount.UID))
	assert.Equal(t, models.RotationFailed, rec.phases[len(rec.phases)-1])

	mp, err := sess.MasterPassword()
	require.NoError(t, err)
	assert.Equal(t, testMasterPassword, mp)
}

func TestEnvelopeService_Rotate_CommitFailsRestoresEnvelope(t *testing.T) {
	tv := newTestVault(t)
	sess := tv.unlocked(t)
	entry := tv.addEntry(t, sess, "GitHub", "alice", "github.com", "p@ss1")

	oldEnv := tv.envelopes.get(testAccount.UID)
	tv.entries.commitErr = errBoom

	err := tv.envelope.Rotate(context.Background(), testAccount, rotateRequest())
	require.ErrorIs(t, err, ErrStorageUnavailable)

	assert.Equal(t, oldEnv, tv.envelopes.get(testAccount.UID))
	got, err := tv.sealer.Open(testMasterPassword, tv.entries.snapshot()[entry.ID].Password)
	require.NoError(t, err)
	assert.Equal(t, "p@ss1", got)

	tv.envelope.Lock(testAccount.UID)
	_, err = tv.envelope.Unlock(context.Background(), testAccount, testPIN)
	assert.NoError(t, err)
}

func TestEnvelopeService_Rotate_CorruptEntryAbortsBeforeWriting(t *testing.T) {
	tv := newTestVault(t)
	sess := tv.unlocked(t)
	tv.addEntry(t, sess, "GitHub", "alice", "github.com", "p@ss1")
	bad := tv.addEntry(t, sess, "Mail", "alice", "mail.example.com", "s3cret")

	corrupt := tv.entries.snapshot()[bad.ID]
	corrupt.Password.Ciphertext = append([]byte(nil), corrupt.Password.Ciphertext...)
	corrupt.Password.Ciphertext[0] ^= 0x01
	tv.entries.entries[bad.ID] = corrupt

	before := tv.entries.snapshot()
	oldEnv := tv.envelopes.get(testAccount.UID)

	err := tv.envelope.Rotate(context.Background(), testAccount, rotateRequest())
	require.ErrorIs(t, err, ErrIntegrity)
	assert.Contains(t, err.Error(), bad.ID)

	assert.Equal(t, before, tv.entries.snapshot())
	assert.Equal(t, oldEnv, tv.envelopes.get(testAccount.UID))
	assert.Equal(t, 1, tv.envelopes.puts)
}

func TestEnvelopeService_Rotate_CancelledWhileWaitingForLock(t *testing.T) {
	tv := newTestVault(t)
	tv.unlocked(t)

	unlock, err := tv.locker.Lock(context.Background(), testAccount.UID)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = tv.envelope.Rotate(ctx, testAccount, rotateRequest())
	assert.ErrorIs(t, err, context.Canceled)
}
