package occupancy

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCheckedIn = errors.New("slot is already checked in")
	ErrEmptyDisplayName = errors.New("display name must not be empty")
)

// Slot is one admission unit within a reservation's budget, optionally
// tied to a named attendee.
type Slot struct {
	id            uuid.UUID
	reservationID uuid.UUID
	personID      *uuid.UUID
	kind          SlotKind
	displayName   string
	confirmed     bool
	checkedInAt   *time.Time
	createdAt     time.Time
}

func NewSlot(reservationID uuid.UUID, personID *uuid.UUID, kind SlotKind, displayName string, now time.Time) (*Slot, error) {
	if displayName == "" {
		return nil, ErrEmptyDisplayName
	}
	return &Slot{
		id:            uuid.New(),
		reservationID: reservationID,
		personID:      personID,
		kind:          kind,
		displayName:   displayName,
		confirmed:     false,
		createdAt:     now,
	}, nil
}

func ReconstructSlot(
	id, reservationID uuid.UUID,
	personID *uuid.UUID,
	kind SlotKind,
	displayName string,
	confirmed bool,
	checkedInAt *time.Time,
	createdAt time.Time,
) *Slot {
	return &Slot{
		id:            id,
		reservationID: reservationID,
		personID:      personID,
		kind:          kind,
		displayName:   displayName,
		confirmed:     confirmed,
		checkedInAt:   checkedInAt,
		createdAt:     createdAt,
	}
}

// CheckIn confirms the slot and stamps the admission time. A slot is
// admitted at most once.
func (s *Slot) CheckIn(now time.Time) error {
	if s.checkedInAt != nil {
		return ErrAlreadyCheckedIn
	}
	t := now
	s.checkedInAt = &t
	s.confirmed = true
	return nil
}

func (s *Slot) IsCheckedIn() bool {
	return s.checkedInAt != nil
}

func (s *Slot) ID() uuid.UUID            { return s.id }
func (s *Slot) ReservationID() uuid.UUID { return s.reservationID }
func (s *Slot) PersonID() *uuid.UUID     { return s.personID }
func (s *Slot) Kind() SlotKind           { return s.kind }
func (s *Slot) DisplayName() string      { return s.displayName }
func (s *Slot) Confirmed() bool          { return s.confirmed }
func (s *Slot) CheckedInAt() *time.Time  { return s.checkedInAt }
func (s *Slot) CreatedAt() time.Time     { return s.createdAt }
