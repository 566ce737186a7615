package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"courtpass/internal/domain/adjudication"
	"courtpass/internal/domain/credential"
	"courtpass/internal/domain/occupancy"
	"courtpass/internal/infra"
	"courtpass/internal/obs"
	"courtpass/internal/pkg/clock"
	"courtpass/internal/pkg/errs"
	"courtpass/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidAction = errs.New("invalid scan action")

type ScanCommands interface {
	// Adjudicate decides one scan attempt. Expected business conditions
	// are reported through the Decision outcome, never as an error.
	Adjudicate(ctx context.Context, code string, staffID uuid.UUID, action adjudication.Action) (adjudication.Decision, error)
}

type scanUseCaseImpl struct {
	uow       shared.UnitOfWork
	logRepo   AdjudicationLogRepository
	allocator *occupancy.Allocator
	clock     clock.Clock
}

func NewScanCommands(uow shared.UnitOfWork, logRepo AdjudicationLogRepository, allocator *occupancy.Allocator, clk clock.Clock) ScanCommands {
	return &scanUseCaseImpl{
		uow:       uow,
		logRepo:   logRepo,
		allocator: allocator,
		clock:     clk,
	}
}

// scanRefs carries the identifiers resolved during evaluation so the
// audit entry can reference them even on a denial.
type scanRefs struct {
	credentialID  *uuid.UUID
	reservationID uuid.UUID
	slotID        *uuid.UUID
}

func (uc *scanUseCaseImpl) Adjudicate(ctx context.Context, code string, staffID uuid.UUID, action adjudication.Action) (adjudication.Decision, error) {
	if !action.IsValid() {
		return adjudication.Decision{}, ErrInvalidAction
	}

	var (
		decision adjudication.Decision
		refs     scanRefs
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Reset on retry: a previous attempt may have aborted mid-way.
		refs = scanRefs{}
		d, r, evalErr := uc.evaluate(ctx, tx, code, staffID, action)
		if evalErr != nil {
			return evalErr
		}
		decision = d
		refs = r
		return nil
	})
	if err != nil {
		// Retries exhausted or infrastructure failure. The gate is told
		// to rescan rather than being shown a business denial.
		slog.Error("adjudication aborted", "error", err.Error())
		decision = adjudication.Deny(adjudication.OutcomeTransientConflict)
	}

	uc.appendLog(ctx, refs, staffID, action, decision.Outcome)
	obs.CountAdjudication(string(action), string(decision.Outcome))
	return decision, nil
}

// evaluate runs the ordered checks, short-circuiting on the first
// failure. It mutates durable state only through tx, so a retried
// transaction re-evaluates from scratch.
func (uc *scanUseCaseImpl) evaluate(ctx context.Context, tx shared.Tx, code string, staffID uuid.UUID, action adjudication.Action) (adjudication.Decision, scanRefs, error) {
	now := uc.clock.Now()
	var refs scanRefs

	// 1. Lookup. The row lock taken here linearizes concurrent scans of
	// the same code for the remainder of the transaction.
	cred, err := tx.Credentials().FindByCodeForUpdate(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return adjudication.Deny(adjudication.OutcomeCodeUnknown), refs, nil
		}
		return adjudication.Decision{}, refs, err
	}
	credID := cred.ID()
	refs.credentialID = &credID
	refs.reservationID = cred.ReservationID()

	// 2. Authorization: active shift at the reservation's venue.
	venueID, err := tx.Reads().VenueForReservation(ctx, cred.ReservationID())
	if err != nil {
		return adjudication.Decision{}, refs, err
	}
	assigned, err := tx.Reads().StaffAssigned(ctx, staffID, venueID, now)
	if err != nil {
		return adjudication.Decision{}, refs, err
	}
	if !assigned {
		return adjudication.Deny(adjudication.OutcomeStaffNotAssigned), refs, nil
	}

	// 3. Terminal-state checks.
	switch cred.State() {
	case credential.StateCancelled:
		return adjudication.Deny(adjudication.OutcomePassCancelled), refs, nil
	case credential.StateExpired:
		return adjudication.Deny(adjudication.OutcomePassExpired), refs, nil
	}

	// 4. Temporal window.
	if cred.Window().TooEarly(now) {
		return adjudication.DenyTooEarly(cred.Window().From()), refs, nil
	}
	if cred.Window().Lapsed(now) {
		if terr := cred.Expire(now); terr != nil {
			return adjudication.Decision{}, refs, terr
		}
		if serr := tx.Credentials().Save(ctx, cred); serr != nil {
			return adjudication.Decision{}, refs, serr
		}
		return adjudication.Deny(adjudication.OutcomePassLapsed), refs, nil
	}

	// 5. Reservation state. A completed reservation stays admittable so
	// the budget check below answers exhausted scans truthfully.
	snap, err := tx.Reads().ReservationByID(ctx, cred.ReservationID())
	if err != nil {
		return adjudication.Decision{}, refs, err
	}
	if !snap.IsConfirmed() && snap.Status != shared.ReservationStatusCompleted {
		return adjudication.Deny(adjudication.OutcomeReservationNotConfirmed), refs, nil
	}

	// EXIT consumes no budget: once the pass is valid and the staff
	// member authorized, the exit is recorded and waved through.
	if action == adjudication.ActionExit {
		return adjudication.Grant(cred.RemainingAdmissions()), refs, nil
	}

	// 6. Budget check against the slot ledger. The ledger, not the
	// denormalized counter, is the source of truth.
	slots, err := tx.Slots().ListByReservation(ctx, cred.ReservationID())
	if err != nil {
		return adjudication.Decision{}, refs, err
	}
	effectiveUsed := occupancy.CheckedInCount(slots)
	if effectiveUsed < cred.AdmissionsUsed() {
		effectiveUsed = cred.AdmissionsUsed()
	}
	if effectiveUsed >= cred.AdmissionBudget() {
		if !cred.State().IsTerminal() {
			if terr := cred.MarkUsed(now); terr != nil {
				return adjudication.Decision{}, refs, terr
			}
			if serr := tx.Credentials().Save(ctx, cred); serr != nil {
				return adjudication.Decision{}, refs, serr
			}
		}
		return adjudication.Deny(adjudication.OutcomeBudgetExhausted), refs, nil
	}

	// 7. Slot allocation.
	holder, err := uc.ensureHolderSlot(ctx, tx, slots, snap, now)
	if err != nil {
		return adjudication.Decision{}, refs, err
	}
	if holder != nil {
		slots = append(slots, holder)
	}
	alloc, err := uc.allocator.Allocate(slots, cred.ReservationID(), cred.AdmissionBudget(), now)
	if err != nil {
		return adjudication.Decision{}, refs, err
	}
	if alloc == nil {
		return adjudication.Deny(adjudication.OutcomeBudgetExhausted), refs, nil
	}

	// 8. Admit: slot check-in, counters, and state transition persist as
	// one atomic unit under the credential row lock.
	if cerr := alloc.Slot.CheckIn(now); cerr != nil {
		return adjudication.Decision{}, refs, cerr
	}
	if alloc.Created {
		if serr := tx.Slots().Create(ctx, alloc.Slot); serr != nil {
			return adjudication.Decision{}, refs, serr
		}
	} else if serr := tx.Slots().Save(ctx, alloc.Slot); serr != nil {
		return adjudication.Decision{}, refs, serr
	}
	slotID := alloc.Slot.ID()
	refs.slotID = &slotID

	if aerr := cred.Admit(now); aerr != nil {
		return adjudication.Decision{}, refs, aerr
	}
	if serr := tx.Credentials().Save(ctx, cred); serr != nil {
		return adjudication.Decision{}, refs, serr
	}

	if cred.State() == credential.StateUsed {
		if cerr := uc.completeReservation(ctx, tx, snap, now); cerr != nil {
			return adjudication.Decision{}, refs, cerr
		}
	}

	return adjudication.Grant(cred.RemainingAdmissions()), refs, nil
}

// ensureHolderSlot materializes the holder's slot on the first
// adjudication attempt. Returns the created slot, or nil when one
// already exists.
func (uc *scanUseCaseImpl) ensureHolderSlot(ctx context.Context, tx shared.Tx, slots []*occupancy.Slot, snap *shared.ReservationSnapshot, now time.Time) (*occupancy.Slot, error) {
	holderName, err := tx.Reads().PersonName(ctx, snap.HolderID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		holderName = "Holder"
	}

	holder, err := uc.allocator.EnsureHolderSlot(slots, snap.ID, snap.HolderID, holderName, now)
	if err != nil || holder == nil {
		return nil, err
	}
	if err := tx.Slots().Create(ctx, holder); err != nil {
		return nil, err
	}
	return holder, nil
}

// completeReservation closes the owning reservation and drops a
// completion event on the outbox in the same transaction, so the
// notification is delivered at-least-once after commit.
func (uc *scanUseCaseImpl) completeReservation(ctx context.Context, tx shared.Tx, snap *shared.ReservationSnapshot, now time.Time) error {
	if snap.Status != shared.ReservationStatusConfirmed {
		return nil
	}
	if err := tx.Reservations().MarkCompleted(ctx, snap.ID, now); err != nil {
		return err
	}
	payload, err := json.Marshal(map[string]any{
		"reservation_id": snap.ID,
		"completed_at":   now,
	})
	if err != nil {
		return err
	}
	return tx.Outbox().CreateJob(ctx, "notification", "reservation_completed", payload, now)
}

// appendLog writes exactly one audit entry per adjudication call. It is
// best-effort: a logging failure is reported but never alters the
// decision already returned to the gate.
func (uc *scanUseCaseImpl) appendLog(ctx context.Context, refs scanRefs, staffID uuid.UUID, action adjudication.Action, outcome adjudication.Outcome) {
	entry := adjudication.NewLogEntry(
		refs.credentialID,
		refs.reservationID,
		staffID,
		action,
		outcome,
		uc.clock.Now(),
		refs.slotID,
	)
	if err := uc.logRepo.Append(ctx, entry); err != nil {
		slog.Error("failed to append adjudication log entry",
			"outcome", outcome.String(), "error", err.Error())
	}
}
