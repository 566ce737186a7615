package queries

import (
	"context"

	"courtpass/internal/infra"
	"courtpass/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCredentialNotFound = errs.New("credential not found")

type CredentialReadStore interface {
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*CredentialView, error)
}

type CredentialQueries interface {
	GetByReservation(ctx context.Context, reservationID uuid.UUID) (*CredentialView, error)
}

type credentialQueriesImpl struct {
	store CredentialReadStore
}

func NewCredentialQueries(store CredentialReadStore) CredentialQueries {
	return &credentialQueriesImpl{store: store}
}

func (q *credentialQueriesImpl) GetByReservation(ctx context.Context, reservationID uuid.UUID) (*CredentialView, error) {
	view, err := q.store.FindByReservationID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCredentialNotFound
		}
		return nil, err
	}
	return view, nil
}
