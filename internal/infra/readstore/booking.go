package readstore

import (
	"context"
	"errors"
	"time"

	"courtpass/internal/infra"
	"courtpass/internal/infra/db"
	"courtpass/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BookingReadStore is the narrow read surface over the owner system's
// booking tables: reservation snapshots, the reservation→court→venue
// resolution, the staff shift roster, and person display names.
type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, court_id, holder_id, starts_at, ends_at, party_size, status
		FROM reservations
		WHERE id = $1
	`, id)

	var snap shared.ReservationSnapshot
	err := row.Scan(&snap.ID, &snap.CourtID, &snap.HolderID, &snap.StartTime, &snap.EndTime, &snap.PartySize, &snap.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &snap, nil
}

func (r *BookingReadStore) VenueForReservation(ctx context.Context, reservationID uuid.UUID) (uuid.UUID, error) {
	row := r.db.QueryRow(ctx, `
		SELECT c.venue_id
		FROM reservations res
		JOIN courts c ON c.id = res.court_id
		WHERE res.id = $1
	`, reservationID)

	var venueID uuid.UUID
	if err := row.Scan(&venueID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, infra.WrapRepoErr("venue not found for reservation", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to resolve venue for reservation", err)
	}
	return venueID, nil
}

func (r *BookingReadStore) StaffAssigned(ctx context.Context, staffID, venueID uuid.UUID, at time.Time) (bool, error) {
	row := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM staff_shifts
			WHERE staff_id = $1 AND venue_id = $2 AND active
			  AND starts_at <= $3 AND ends_at > $3
		)
	`, staffID, venueID, at)

	var assigned bool
	if err := row.Scan(&assigned); err != nil {
		return false, infra.WrapRepoErr("failed to check staff assignment", err)
	}
	return assigned, nil
}

func (r *BookingReadStore) PersonName(ctx context.Context, personID uuid.UUID) (string, error) {
	row := r.db.QueryRow(ctx, `
		SELECT display_name FROM persons WHERE id = $1
	`, personID)

	var name string
	if err := row.Scan(&name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("person not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find person name", err)
	}
	return name, nil
}
