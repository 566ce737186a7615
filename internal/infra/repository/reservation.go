package repository

import (
	"context"
	"time"

	"courtpass/internal/infra"
	"courtpass/internal/infra/db"

	"github.com/google/uuid"
)

// ReservationRepository is the narrow write surface this core holds on
// the owner system's reservations: completion only.
type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) MarkCompleted(ctx context.Context, reservationID uuid.UUID, now time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET status = 'completed', updated_at = $2
		WHERE id = $1 AND status = 'confirmed'
	`, reservationID, now)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reservation completed", err)
	}
	return nil
}
