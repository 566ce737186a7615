package credential

import (
	"errors"
	"time"

	"courtpass/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidPartySize     = errors.New("party size must be at least 1")
	ErrInvalidWindow        = errors.New("invalid validity window")
	ErrBudgetExhausted      = errors.New("admission budget exhausted")
	ErrIllegalTransition    = errors.New("illegal state transition")
	ErrCredentialNotPending = errors.New("credential is not pending")
)

// ReservationSpec is the slice of the owning reservation a credential is
// derived from at issuance time.
type ReservationSpec struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	PartySize int
}

type Services struct {
	Clock clock.Clock
}

// Credential is the scannable admission pass for one reservation. The
// admission budget is fixed at issuance; admissionsUsed only ever grows
// and never beyond the budget.
type Credential struct {
	id               uuid.UUID
	reservationID    uuid.UUID
	code             string
	integrityToken   string
	window           Window
	state            State
	admissionsUsed   int
	admissionBudget  int
	firstAdmissionAt *time.Time
	lastAdmissionAt  *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func NewCredential(
	services *Services,
	res ReservationSpec,
	code string,
	integrityToken string,
	grace time.Duration,
) (*Credential, error) {
	if res.PartySize < 1 {
		return nil, ErrInvalidPartySize
	}

	window, err := NewWindow(res.StartTime, res.EndTime, grace)
	if err != nil {
		return nil, ErrInvalidWindow
	}

	now := services.Clock.Now()
	return &Credential{
		id:              uuid.New(),
		reservationID:   res.ID,
		code:            code,
		integrityToken:  integrityToken,
		window:          window,
		state:           StatePending,
		admissionsUsed:  0,
		admissionBudget: res.PartySize,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructCredential(
	id, reservationID uuid.UUID,
	code, integrityToken string,
	window Window,
	state State,
	admissionsUsed, admissionBudget int,
	firstAdmissionAt, lastAdmissionAt *time.Time,
	createdAt, updatedAt time.Time,
) *Credential {
	return &Credential{
		id:               id,
		reservationID:    reservationID,
		code:             code,
		integrityToken:   integrityToken,
		window:           window,
		state:            state,
		admissionsUsed:   admissionsUsed,
		admissionBudget:  admissionBudget,
		firstAdmissionAt: firstAdmissionAt,
		lastAdmissionAt:  lastAdmissionAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Admit records one successful admission: counters, first/last admission
// timestamps, and the PENDING→ACTIVE or →USED transition when the budget
// is reached. The caller is responsible for persisting atomically.
func (c *Credential) Admit(now time.Time) error {
	if c.state.IsTerminal() {
		return ErrIllegalTransition
	}
	if c.admissionsUsed >= c.admissionBudget {
		return ErrBudgetExhausted
	}

	c.admissionsUsed++
	if c.firstAdmissionAt == nil {
		t := now
		c.firstAdmissionAt = &t
	}
	t := now
	c.lastAdmissionAt = &t

	switch {
	case c.admissionsUsed == c.admissionBudget:
		c.state = StateUsed
	case c.state == StatePending:
		c.state = StateActive
	}
	c.updatedAt = now
	return nil
}

// Activate is the time-driven PENDING→ACTIVE sweep transition.
func (c *Credential) Activate(now time.Time) error {
	if c.state != StatePending {
		return ErrCredentialNotPending
	}
	if !c.window.Contains(now) {
		return ErrIllegalTransition
	}
	c.state = StateActive
	c.updatedAt = now
	return nil
}

// Expire moves a non-terminal credential to EXPIRED.
func (c *Credential) Expire(now time.Time) error {
	if !c.state.CanTransitionTo(StateExpired) {
		return ErrIllegalTransition
	}
	c.state = StateExpired
	c.updatedAt = now
	return nil
}

// MarkUsed closes out a credential whose ledger shows the budget already
// consumed, without recording a new admission.
func (c *Credential) MarkUsed(now time.Time) error {
	if !c.state.CanTransitionTo(StateUsed) {
		return ErrIllegalTransition
	}
	c.state = StateUsed
	c.updatedAt = now
	return nil
}

func (c *Credential) Cancel(now time.Time) error {
	if !c.state.CanTransitionTo(StateCancelled) {
		return ErrIllegalTransition
	}
	c.state = StateCancelled
	c.updatedAt = now
	return nil
}

func (c *Credential) RemainingAdmissions() int {
	remaining := c.admissionBudget - c.admissionsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c *Credential) ID() uuid.UUID               { return c.id }
func (c *Credential) ReservationID() uuid.UUID    { return c.reservationID }
func (c *Credential) Code() string                { return c.code }
func (c *Credential) IntegrityToken() string      { return c.integrityToken }
func (c *Credential) Window() Window              { return c.window }
func (c *Credential) State() State                { return c.state }
func (c *Credential) AdmissionsUsed() int         { return c.admissionsUsed }
func (c *Credential) AdmissionBudget() int        { return c.admissionBudget }
func (c *Credential) FirstAdmissionAt() *time.Time { return c.firstAdmissionAt }
func (c *Credential) LastAdmissionAt() *time.Time  { return c.lastAdmissionAt }
func (c *Credential) CreatedAt() time.Time        { return c.createdAt }
func (c *Credential) UpdatedAt() time.Time        { return c.updatedAt }
