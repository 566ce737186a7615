package repository

import (
	"context"

	"courtpass/internal/domain/adjudication"
	"courtpass/internal/infra"
	"courtpass/internal/infra/db"

	"github.com/google/uuid"
)

// AdjudicationLogRepository is append-only; nothing in normal operation
// updates or deletes entries.
type AdjudicationLogRepository struct {
	db db.DBTX
}

func NewAdjudicationLogRepository(dbtx db.DBTX) *AdjudicationLogRepository {
	return &AdjudicationLogRepository{db: dbtx}
}

func (r *AdjudicationLogRepository) Append(ctx context.Context, entry *adjudication.LogEntry) error {
	var reservationID *uuid.UUID
	if entry.ReservationID() != uuid.Nil {
		id := entry.ReservationID()
		reservationID = &id
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO adjudication_log (id, credential_id, reservation_id, staff_id, action, outcome, occurred_at, slot_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		entry.ID().String(), entry.CredentialID(), reservationID, entry.StaffID(),
		entry.Action().String(), entry.Outcome().String(), entry.OccurredAt(), entry.SlotID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append adjudication log entry", err)
	}
	return nil
}
