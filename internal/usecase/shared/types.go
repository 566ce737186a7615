package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

// Minimal snapshot of the owning reservation for command operations.
type ReservationSnapshot struct {
	ID        uuid.UUID
	CourtID   uuid.UUID
	HolderID  uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	PartySize int
	Status    string
}

func (r *ReservationSnapshot) IsConfirmed() bool {
	return r.Status == ReservationStatusConfirmed
}

func (r *ReservationSnapshot) IsCancelled() bool {
	return r.Status == ReservationStatusCancelled
}
