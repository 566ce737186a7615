package repository

import (
	"context"
	"time"

	"courtpass/internal/domain/occupancy"
	"courtpass/internal/infra"
	"courtpass/internal/infra/db"

	"github.com/google/uuid"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

// ListByReservation returns the full slot ledger in creation order; the
// allocator consumes pre-registered slots FIFO.
func (r *SlotRepository) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*occupancy.Slot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, reservation_id, person_id, kind, display_name, confirmed, checked_in_at, created_at
		FROM occupancy_slots
		WHERE reservation_id = $1
		ORDER BY created_at, id
	`, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupancy slots", err)
	}
	defer rows.Close()

	var slots []*occupancy.Slot
	for rows.Next() {
		var (
			id, resID   uuid.UUID
			personID    *uuid.UUID
			kind        string
			displayName string
			confirmed   bool
			checkedInAt *time.Time
			createdAt   time.Time
		)
		if err := rows.Scan(&id, &resID, &personID, &kind, &displayName, &confirmed, &checkedInAt, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy slot", err)
		}
		slots = append(slots, occupancy.ReconstructSlot(
			id, resID, personID, occupancy.SlotKind(kind), displayName, confirmed, checkedInAt, createdAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupancy slots", err)
	}
	return slots, nil
}

func (r *SlotRepository) Create(ctx context.Context, slot *occupancy.Slot) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO occupancy_slots (id, reservation_id, person_id, kind, display_name, confirmed, checked_in_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		slot.ID(), slot.ReservationID(), slot.PersonID(), slot.Kind().String(),
		slot.DisplayName(), slot.Confirmed(), slot.CheckedInAt(), slot.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create occupancy slot", err)
	}
	return nil
}

// Save only advances a slot from pending to checked-in; the guard keeps
// an already-admitted slot from being consumed twice.
func (r *SlotRepository) Save(ctx context.Context, slot *occupancy.Slot) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE occupancy_slots
		SET confirmed = $2, checked_in_at = $3
		WHERE id = $1 AND checked_in_at IS NULL
	`, slot.ID(), slot.Confirmed(), slot.CheckedInAt())
	if err != nil {
		return infra.WrapRepoErr("failed to save occupancy slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("occupancy slot already checked in", nil, infra.KindConflict)
	}
	return nil
}
