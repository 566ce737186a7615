package adjudication

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// LogEntry is one row of the append-only audit trail. Entries are never
// updated or deleted; a ULID key keeps them time-ordered.
type LogEntry struct {
	id            ulid.ULID
	credentialID  *uuid.UUID
	reservationID uuid.UUID
	staffID       uuid.UUID
	action        Action
	outcome       Outcome
	occurredAt    time.Time
	slotID        *uuid.UUID
}

func NewLogEntry(
	credentialID *uuid.UUID,
	reservationID, staffID uuid.UUID,
	action Action,
	outcome Outcome,
	occurredAt time.Time,
	slotID *uuid.UUID,
) *LogEntry {
	return &LogEntry{
		id:            ulid.MustNew(ulid.Timestamp(occurredAt), rand.Reader),
		credentialID:  credentialID,
		reservationID: reservationID,
		staffID:       staffID,
		action:        action,
		outcome:       outcome,
		occurredAt:    occurredAt,
		slotID:        slotID,
	}
}

func ReconstructLogEntry(
	id ulid.ULID,
	credentialID *uuid.UUID,
	reservationID, staffID uuid.UUID,
	action Action,
	outcome Outcome,
	occurredAt time.Time,
	slotID *uuid.UUID,
) *LogEntry {
	return &LogEntry{
		id:            id,
		credentialID:  credentialID,
		reservationID: reservationID,
		staffID:       staffID,
		action:        action,
		outcome:       outcome,
		occurredAt:    occurredAt,
		slotID:        slotID,
	}
}

func (e *LogEntry) ID() ulid.ULID            { return e.id }
func (e *LogEntry) CredentialID() *uuid.UUID { return e.credentialID }
func (e *LogEntry) ReservationID() uuid.UUID { return e.reservationID }
func (e *LogEntry) StaffID() uuid.UUID       { return e.staffID }
func (e *LogEntry) Action() Action           { return e.action }
func (e *LogEntry) Outcome() Outcome         { return e.outcome }
func (e *LogEntry) OccurredAt() time.Time    { return e.occurredAt }
func (e *LogEntry) SlotID() *uuid.UUID       { return e.slotID }
