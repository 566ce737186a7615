package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"courtpass/internal/domain/credential"
	"courtpass/internal/infra"
	"courtpass/internal/pkg/clock"
	"courtpass/internal/pkg/errs"
	"courtpass/internal/pkg/passcode"
	"courtpass/internal/usecase/queries"
	"courtpass/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrReservationNotConfirmed = errs.New("reservation is not confirmed")
	ErrReservationCancelled    = errs.New("reservation is cancelled")
	ErrInvalidPartySize        = errs.New("reservation party size must be at least 1")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type PassCommands interface {
	// IssuePass creates the credential for a confirmed reservation, or
	// returns the existing one while it is non-terminal.
	IssuePass(ctx context.Context, reservationID uuid.UUID) (*queries.CredentialView, error)
	// CancelCredentials transitions every non-terminal credential of the
	// reservation to CANCELLED.
	CancelCredentials(ctx context.Context, reservationID uuid.UUID) error
}

type passUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	signer *passcode.Signer
	grace  time.Duration
}

func NewPassCommands(uow shared.UnitOfWork, clk clock.Clock, signer *passcode.Signer, grace time.Duration) PassCommands {
	return &passUseCaseImpl{
		uow:    uow,
		clock:  clk,
		signer: signer,
		grace:  grace,
	}
}

func (uc *passUseCaseImpl) IssuePass(ctx context.Context, reservationID uuid.UUID) (*queries.CredentialView, error) {
	snap, err := uc.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.IsCancelled() {
		return nil, ErrReservationCancelled
	}
	if !snap.IsConfirmed() {
		return nil, ErrReservationNotConfirmed
	}
	if snap.PartySize < 1 {
		return nil, ErrInvalidPartySize
	}

	var view *queries.CredentialView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, ferr := tx.Credentials().FindNonTerminalByReservation(ctx, reservationID)
		if ferr != nil && !infra.IsKind(ferr, infra.KindNotFound) {
			return ferr
		}
		if existing != nil {
			view = viewFromCredential(existing)
			return nil
		}

		code, cerr := passcode.NewCode()
		if cerr != nil {
			return cerr
		}
		token := uc.signer.IntegrityToken(code, reservationID, uc.clock.Now())

		services := &credential.Services{Clock: uc.clock}
		cred, derr := credential.NewCredential(services, credential.ReservationSpec{
			ID:        snap.ID,
			StartTime: snap.StartTime,
			EndTime:   snap.EndTime,
			PartySize: snap.PartySize,
		}, code, token, uc.grace)
		if derr != nil {
			return derr
		}

		if cerr := tx.Credentials().Create(ctx, cred); cerr != nil {
			return cerr
		}

		// The delivery collaborator picks the code up from the outbox;
		// this core never renders or transmits anything itself.
		payload, merr := json.Marshal(map[string]any{
			"reservation_id": reservationID,
			"code":           cred.Code(),
			"valid_from":     cred.Window().From(),
			"valid_until":    cred.Window().Until(),
		})
		if merr != nil {
			return merr
		}
		if oerr := tx.Outbox().CreateJob(ctx, "delivery", "pass_issued", payload, uc.clock.Now()); oerr != nil {
			return oerr
		}

		view = viewFromCredential(cred)
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *passUseCaseImpl) CancelCredentials(ctx context.Context, reservationID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Credentials().CancelByReservation(ctx, reservationID, uc.clock.Now())
		if err != nil {
			return err
		}
		if n > 0 {
			slog.Info("cancelled credentials for reservation",
				"reservation_id", reservationID, "count", n)
		}
		return nil
	})
}

func viewFromCredential(cred *credential.Credential) *queries.CredentialView {
	return &queries.CredentialView{
		ID:               cred.ID(),
		ReservationID:    cred.ReservationID(),
		Code:             cred.Code(),
		ValidFrom:        cred.Window().From(),
		ValidUntil:       cred.Window().Until(),
		State:            cred.State().String(),
		AdmissionsUsed:   cred.AdmissionsUsed(),
		AdmissionBudget:  cred.AdmissionBudget(),
		FirstAdmissionAt: cred.FirstAdmissionAt(),
		LastAdmissionAt:  cred.LastAdmissionAt(),
		CreatedAt:        cred.CreatedAt(),
		UpdatedAt:        cred.UpdatedAt(),
	}
}
