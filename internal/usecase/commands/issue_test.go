//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"courtpass/internal/domain/credential"
	"courtpass/internal/pkg/clock"
	"courtpass/internal/pkg/passcode"
	"courtpass/internal/usecase/commands"
	"courtpass/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issueBase = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type issueFixture struct {
	store         *fakeStore
	clock         *clock.MockClock
	signer        *passcode.Signer
	svc           commands.PassCommands
	reservationID uuid.UUID
}

func newIssueFixture(t *testing.T, status string, partySize int) *issueFixture {
	t.Helper()

	f := &issueFixture{
		store:         newFakeStore(),
		clock:         clock.NewMockClock(issueBase),
		signer:        passcode.NewSigner("test-secret"),
		reservationID: uuid.New(),
	}
	f.store.reservations[f.reservationID] = &shared.ReservationSnapshot{
		ID:        f.reservationID,
		CourtID:   uuid.New(),
		HolderID:  uuid.New(),
		StartTime: issueBase.Add(time.Hour),
		EndTime:   issueBase.Add(2 * time.Hour),
		PartySize: partySize,
		Status:    status,
	}
	f.svc = commands.NewPassCommands(&fakeUoW{store: f.store}, f.clock, f.signer, 30*time.Minute)
	return f
}

func TestIssuePass(t *testing.T) {
	t.Run("issues a pending credential for a confirmed reservation", func(t *testing.T) {
		f := newIssueFixture(t, shared.ReservationStatusConfirmed, 4)

		view, err := f.svc.IssuePass(context.Background(), f.reservationID)
		require.NoError(t, err)

		assert.Equal(t, f.reservationID, view.ReservationID)
		assert.Equal(t, credential.StatePending.String(), view.State)
		assert.Len(t, view.Code, 32)
		assert.Equal(t, 4, view.AdmissionBudget)
		assert.Equal(t, 0, view.AdmissionsUsed)
		assert.Equal(t, issueBase.Add(30*time.Minute), view.ValidFrom)
		assert.Equal(t, issueBase.Add(2*time.Hour+30*time.Minute), view.ValidUntil)

		stored := f.store.creds[view.ID]
		require.NotNil(t, stored)
		assert.True(t, f.signer.Verify(stored.IntegrityToken(), stored.Code(), f.reservationID, issueBase))

		// Code delivery goes through the outbox, never inline.
		require.Len(t, f.store.outbox, 1)
		assert.Equal(t, "pass_issued", f.store.outbox[0].topic)
	})

	t.Run("re-issuing returns the live credential unchanged", func(t *testing.T) {
		f := newIssueFixture(t, shared.ReservationStatusConfirmed, 2)

		first, err := f.svc.IssuePass(context.Background(), f.reservationID)
		require.NoError(t, err)
		second, err := f.svc.IssuePass(context.Background(), f.reservationID)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.Code, second.Code)
		assert.Len(t, f.store.creds, 1)
		assert.Len(t, f.store.outbox, 1)
	})

	t.Run("a cancelled credential does not block re-issuance", func(t *testing.T) {
		f := newIssueFixture(t, shared.ReservationStatusConfirmed, 2)

		first, err := f.svc.IssuePass(context.Background(), f.reservationID)
		require.NoError(t, err)
		require.NoError(t, f.svc.CancelCredentials(context.Background(), f.reservationID))

		second, err := f.svc.IssuePass(context.Background(), f.reservationID)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.NotEqual(t, first.Code, second.Code)
		assert.Len(t, f.store.creds, 2)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newIssueFixture(t, shared.ReservationStatusConfirmed, 2)

		_, err := f.svc.IssuePass(context.Background(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("cancelled reservation", func(t *testing.T) {
		f := newIssueFixture(t, shared.ReservationStatusCancelled, 2)

		_, err := f.svc.IssuePass(context.Background(), f.reservationID)
		assert.ErrorIs(t, err, commands.ErrReservationCancelled)
	})

	t.Run("completed reservation is no longer issuable", func(t *testing.T) {
		f := newIssueFixture(t, shared.ReservationStatusCompleted, 2)

		_, err := f.svc.IssuePass(context.Background(), f.reservationID)
		assert.ErrorIs(t, err, commands.ErrReservationNotConfirmed)
	})

	t.Run("party size below one", func(t *testing.T) {
		f := newIssueFixture(t, shared.ReservationStatusConfirmed, 0)

		_, err := f.svc.IssuePass(context.Background(), f.reservationID)
		assert.ErrorIs(t, err, commands.ErrInvalidPartySize)
	})
}

func TestCancelCredentials(t *testing.T) {
	t.Run("cancels the live credential", func(t *testing.T) {
		f := newIssueFixture(t, shared.ReservationStatusConfirmed, 2)
		view, err := f.svc.IssuePass(context.Background(), f.reservationID)
		require.NoError(t, err)

		require.NoError(t, f.svc.CancelCredentials(context.Background(), f.reservationID))

		assert.Equal(t, credential.StateCancelled, f.store.creds[view.ID].State())
	})

	t.Run("is a no-op without credentials", func(t *testing.T) {
		f := newIssueFixture(t, shared.ReservationStatusConfirmed, 2)

		assert.NoError(t, f.svc.CancelCredentials(context.Background(), f.reservationID))
	})
}
