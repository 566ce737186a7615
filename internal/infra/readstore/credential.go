package readstore

import (
	"context"
	"errors"
	"time"

	"courtpass/internal/infra"
	"courtpass/internal/infra/db"
	"courtpass/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CredentialReadStore struct {
	db db.DBTX
}

func NewCredentialReadStore(dbtx db.DBTX) *CredentialReadStore {
	return &CredentialReadStore{db: dbtx}
}

// FindByReservationID prefers the non-terminal credential; when only
// terminal ones remain, the most recent is returned so callers can still
// inspect a used or cancelled pass.
func (r *CredentialReadStore) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*queries.CredentialView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, reservation_id, code, valid_from, valid_until, state,
		       admissions_used, admission_budget, first_admission_at, last_admission_at,
		       created_at, updated_at
		FROM credentials
		WHERE reservation_id = $1
		ORDER BY (state IN ('PENDING', 'ACTIVE')) DESC, created_at DESC
		LIMIT 1
	`, reservationID)

	var view queries.CredentialView
	var firstAt, lastAt *time.Time
	err := row.Scan(
		&view.ID, &view.ReservationID, &view.Code, &view.ValidFrom, &view.ValidUntil, &view.State,
		&view.AdmissionsUsed, &view.AdmissionBudget, &firstAt, &lastAt,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("credential not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find credential by reservation", err)
	}
	view.FirstAdmissionAt = firstAt
	view.LastAdmissionAt = lastAt
	return &view, nil
}
