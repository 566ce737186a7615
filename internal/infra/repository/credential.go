package repository

import (
	"context"
	"errors"
	"time"

	"courtpass/internal/domain/credential"
	"courtpass/internal/infra"
	"courtpass/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type CredentialRepository struct {
	db db.DBTX
}

func NewCredentialRepository(dbtx db.DBTX) *CredentialRepository {
	return &CredentialRepository{db: dbtx}
}

const credentialColumns = `id, reservation_id, code, integrity_token, valid_from, valid_until,
	state, admissions_used, admission_budget, first_admission_at, last_admission_at,
	created_at, updated_at`

func (r *CredentialRepository) Create(ctx context.Context, cred *credential.Credential) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO credentials (`+credentialColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		cred.ID(), cred.ReservationID(), cred.Code(), cred.IntegrityToken(),
		cred.Window().From(), cred.Window().Until(),
		cred.State().String(), cred.AdmissionsUsed(), cred.AdmissionBudget(),
		cred.FirstAdmissionAt(), cred.LastAdmissionAt(),
		cred.CreatedAt(), cred.UpdatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("credential already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create credential", err)
	}
	return nil
}

// FindByCodeForUpdate locks the row until the surrounding transaction
// ends; two concurrent scans of the same code serialize here.
func (r *CredentialRepository) FindByCodeForUpdate(ctx context.Context, code string) (*credential.Credential, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+credentialColumns+`
		FROM credentials
		WHERE code = $1
		FOR UPDATE
	`, code)
	return scanCredential(row, "credential not found by code")
}

func (r *CredentialRepository) FindNonTerminalByReservation(ctx context.Context, reservationID uuid.UUID) (*credential.Credential, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+credentialColumns+`
		FROM credentials
		WHERE reservation_id = $1 AND state IN ('PENDING', 'ACTIVE')
		FOR UPDATE
	`, reservationID)
	return scanCredential(row, "no non-terminal credential for reservation")
}

// Save persists counters and state. The budget guard in the WHERE clause
// is the storage-level backstop for the admissionsUsed ≤ budget
// invariant; a zero row count means a conflicting writer got there first.
func (r *CredentialRepository) Save(ctx context.Context, cred *credential.Credential) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE credentials
		SET state = $2,
		    admissions_used = $3,
		    first_admission_at = $4,
		    last_admission_at = $5,
		    updated_at = $6
		WHERE id = $1 AND $3 <= admission_budget
	`,
		cred.ID(), cred.State().String(), cred.AdmissionsUsed(),
		cred.FirstAdmissionAt(), cred.LastAdmissionAt(), cred.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save credential", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("credential update rejected by budget guard", nil, infra.KindConflict)
	}
	return nil
}

func (r *CredentialRepository) CancelByReservation(ctx context.Context, reservationID uuid.UUID, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE credentials
		SET state = 'CANCELLED', updated_at = $2
		WHERE reservation_id = $1 AND state IN ('PENDING', 'ACTIVE')
	`, reservationID, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel credentials", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CredentialRepository) ActivatePending(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE credentials
		SET state = 'ACTIVE', updated_at = $1
		WHERE state = 'PENDING' AND valid_from <= $1 AND valid_until >= $1
	`, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to activate pending credentials", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CredentialRepository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE credentials
		SET state = 'EXPIRED', updated_at = $1
		WHERE state IN ('PENDING', 'ACTIVE') AND valid_until < $1
	`, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale credentials", err)
	}
	return tag.RowsAffected(), nil
}

func scanCredential(row pgx.Row, notFoundMsg string) (*credential.Credential, error) {
	var (
		id, reservationID    uuid.UUID
		code, integrityToken string
		validFrom            time.Time
		validUntil           time.Time
		state                string
		used, budget         int
		firstAt, lastAt      *time.Time
		createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&id, &reservationID, &code, &integrityToken, &validFrom, &validUntil,
		&state, &used, &budget, &firstAt, &lastAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan credential", err)
	}

	return credential.ReconstructCredential(
		id, reservationID, code, integrityToken,
		credential.ReconstructWindow(validFrom, validUntil),
		credential.State(state),
		used, budget,
		firstAt, lastAt,
		createdAt, updatedAt,
	), nil
}
