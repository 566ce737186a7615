//go:build unit

package credential_test

import (
	"testing"
	"time"

	"courtpass/internal/domain/credential"
	"courtpass/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newTestCredential(t *testing.T, partySize int) *credential.Credential {
	t.Helper()
	services := &credential.Services{Clock: clock.NewMockClock(baseTime)}
	cred, err := credential.NewCredential(services, credential.ReservationSpec{
		ID:        uuid.New(),
		StartTime: baseTime.Add(1 * time.Hour),
		EndTime:   baseTime.Add(2 * time.Hour),
		PartySize: partySize,
	}, "CODE123", "token", 30*time.Minute)
	require.NoError(t, err)
	return cred
}

func TestNewCredential(t *testing.T) {
	t.Run("issues a pending credential with budget equal to party size", func(t *testing.T) {
		cred := newTestCredential(t, 4)

		assert.Equal(t, credential.StatePending, cred.State())
		assert.Equal(t, 0, cred.AdmissionsUsed())
		assert.Equal(t, 4, cred.AdmissionBudget())
		assert.Equal(t, 4, cred.RemainingAdmissions())
		assert.Nil(t, cred.FirstAdmissionAt())
		assert.Nil(t, cred.LastAdmissionAt())
	})

	t.Run("widens the window by the grace period on both sides", func(t *testing.T) {
		cred := newTestCredential(t, 2)

		assert.Equal(t, baseTime.Add(30*time.Minute), cred.Window().From())
		assert.Equal(t, baseTime.Add(2*time.Hour+30*time.Minute), cred.Window().Until())
	})

	t.Run("rejects party size below one", func(t *testing.T) {
		services := &credential.Services{Clock: clock.NewMockClock(baseTime)}
		_, err := credential.NewCredential(services, credential.ReservationSpec{
			ID:        uuid.New(),
			StartTime: baseTime,
			EndTime:   baseTime.Add(time.Hour),
			PartySize: 0,
		}, "CODE", "token", 0)
		assert.ErrorIs(t, err, credential.ErrInvalidPartySize)
	})

	t.Run("rejects a reservation that ends before it starts", func(t *testing.T) {
		services := &credential.Services{Clock: clock.NewMockClock(baseTime)}
		_, err := credential.NewCredential(services, credential.ReservationSpec{
			ID:        uuid.New(),
			StartTime: baseTime.Add(time.Hour),
			EndTime:   baseTime,
			PartySize: 2,
		}, "CODE", "token", 0)
		assert.ErrorIs(t, err, credential.ErrInvalidWindow)
	})
}

func TestCredentialAdmit(t *testing.T) {
	now := baseTime.Add(90 * time.Minute)

	t.Run("first admission moves PENDING to ACTIVE and stamps timestamps", func(t *testing.T) {
		cred := newTestCredential(t, 3)

		require.NoError(t, cred.Admit(now))

		assert.Equal(t, credential.StateActive, cred.State())
		assert.Equal(t, 1, cred.AdmissionsUsed())
		assert.Equal(t, 2, cred.RemainingAdmissions())
		require.NotNil(t, cred.FirstAdmissionAt())
		assert.Equal(t, now, *cred.FirstAdmissionAt())
		require.NotNil(t, cred.LastAdmissionAt())
		assert.Equal(t, now, *cred.LastAdmissionAt())
	})

	t.Run("reaching the budget moves the credential to USED", func(t *testing.T) {
		cred := newTestCredential(t, 2)

		require.NoError(t, cred.Admit(now))
		require.NoError(t, cred.Admit(now.Add(time.Minute)))

		assert.Equal(t, credential.StateUsed, cred.State())
		assert.Equal(t, 0, cred.RemainingAdmissions())
		assert.Equal(t, now, *cred.FirstAdmissionAt())
		assert.Equal(t, now.Add(time.Minute), *cred.LastAdmissionAt())
	})

	t.Run("party of one goes straight from PENDING to USED", func(t *testing.T) {
		cred := newTestCredential(t, 1)

		require.NoError(t, cred.Admit(now))

		assert.Equal(t, credential.StateUsed, cred.State())
	})

	t.Run("admitting a used credential fails", func(t *testing.T) {
		cred := newTestCredential(t, 1)
		require.NoError(t, cred.Admit(now))

		err := cred.Admit(now.Add(time.Minute))
		assert.ErrorIs(t, err, credential.ErrIllegalTransition)
		assert.Equal(t, 1, cred.AdmissionsUsed())
	})

	t.Run("admitting a cancelled credential fails", func(t *testing.T) {
		cred := newTestCredential(t, 2)
		require.NoError(t, cred.Cancel(now))

		assert.ErrorIs(t, cred.Admit(now), credential.ErrIllegalTransition)
	})
}

func TestCredentialTransitions(t *testing.T) {
	now := baseTime.Add(90 * time.Minute)

	t.Run("Activate requires PENDING inside the window", func(t *testing.T) {
		cred := newTestCredential(t, 2)
		require.NoError(t, cred.Activate(now))
		assert.Equal(t, credential.StateActive, cred.State())

		assert.ErrorIs(t, cred.Activate(now), credential.ErrCredentialNotPending)
	})

	t.Run("Activate outside the window fails", func(t *testing.T) {
		cred := newTestCredential(t, 2)
		assert.ErrorIs(t, cred.Activate(baseTime.Add(-time.Hour)), credential.ErrIllegalTransition)
		assert.Equal(t, credential.StatePending, cred.State())
	})

	t.Run("terminal states never transition again", func(t *testing.T) {
		for _, setup := range []struct {
			name   string
			mutate func(*credential.Credential) error
		}{
			{"expired", func(c *credential.Credential) error { return c.Expire(now) }},
			{"cancelled", func(c *credential.Credential) error { return c.Cancel(now) }},
			{"used", func(c *credential.Credential) error { return c.MarkUsed(now) }},
		} {
			t.Run(setup.name, func(t *testing.T) {
				cred := newTestCredential(t, 2)
				require.NoError(t, setup.mutate(cred))

				assert.Error(t, cred.Expire(now))
				assert.Error(t, cred.Cancel(now))
				assert.Error(t, cred.MarkUsed(now))
				assert.Error(t, cred.Admit(now))
			})
		}
	})
}

func TestWindow(t *testing.T) {
	window, err := credential.NewWindow(baseTime, baseTime.Add(time.Hour), 15*time.Minute)
	require.NoError(t, err)

	cases := []struct {
		name     string
		at       time.Time
		tooEarly bool
		lapsed   bool
	}{
		{"before the grace opens", baseTime.Add(-16 * time.Minute), true, false},
		{"exactly at valid_from", baseTime.Add(-15 * time.Minute), false, false},
		{"mid slot", baseTime.Add(30 * time.Minute), false, false},
		{"exactly at valid_until", baseTime.Add(75 * time.Minute), false, false},
		{"after the grace closes", baseTime.Add(76 * time.Minute), false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.tooEarly, window.TooEarly(tc.at))
			assert.Equal(t, tc.lapsed, window.Lapsed(tc.at))
			assert.Equal(t, !tc.tooEarly && !tc.lapsed, window.Contains(tc.at))
		})
	}

	t.Run("negative grace is clamped to zero", func(t *testing.T) {
		w, err := credential.NewWindow(baseTime, baseTime.Add(time.Hour), -time.Minute)
		require.NoError(t, err)
		assert.Equal(t, baseTime, w.From())
		assert.Equal(t, baseTime.Add(time.Hour), w.Until())
	})

	t.Run("zero-length reservation is rejected", func(t *testing.T) {
		_, err := credential.NewWindow(baseTime, baseTime, 0)
		assert.Error(t, err)
	})
}
