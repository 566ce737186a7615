package shared

import (
	"context"
	"time"

	"courtpass/internal/domain/credential"
	"courtpass/internal/domain/occupancy"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Credentials() CredentialRepository
	Slots() SlotRepository
	Reservations() ReservationRepository
	Outbox() OutboxRepository
	Reads() CommandReads
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// VenueForReservation resolves reservation → court → venue without
	// exposing the graph-shaped booking model.
	VenueForReservation(ctx context.Context, reservationID uuid.UUID) (uuid.UUID, error)
	// StaffAssigned reports whether the staff member has an active shift
	// at the venue covering the given instant.
	StaffAssigned(ctx context.Context, staffID, venueID uuid.UUID, at time.Time) (bool, error)
	PersonName(ctx context.Context, personID uuid.UUID) (string, error)
}

type CredentialRepository interface {
	Create(ctx context.Context, cred *credential.Credential) error
	// FindByCodeForUpdate locks the credential row for the remainder of
	// the transaction, linearizing concurrent scans of the same code.
	FindByCodeForUpdate(ctx context.Context, code string) (*credential.Credential, error)
	FindNonTerminalByReservation(ctx context.Context, reservationID uuid.UUID) (*credential.Credential, error)
	// Save persists counters and state. The UPDATE carries an
	// admissions_used ≤ admission_budget guard as a second line of
	// defense under the row lock.
	Save(ctx context.Context, cred *credential.Credential) error
	CancelByReservation(ctx context.Context, reservationID uuid.UUID, now time.Time) (int64, error)
	ActivatePending(ctx context.Context, now time.Time) (int64, error)
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

type SlotRepository interface {
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*occupancy.Slot, error)
	Create(ctx context.Context, slot *occupancy.Slot) error
	Save(ctx context.Context, slot *occupancy.Slot) error
}

type ReservationRepository interface {
	MarkCompleted(ctx context.Context, reservationID uuid.UUID, now time.Time) error
}

// Outbox rows are drained by the owner system's notification worker;
// writing them in the adjudication transaction gives at-least-once
// delivery without coupling the decision to the delivery.
type OutboxRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
