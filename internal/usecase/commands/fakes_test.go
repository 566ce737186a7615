//go:build unit

package commands_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"courtpass/internal/domain/adjudication"
	"courtpass/internal/domain/credential"
	"courtpass/internal/domain/occupancy"
	"courtpass/internal/infra"
	"courtpass/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the Postgres unit of work. A
// single mutex held for the whole of Within plays the role of the
// credential row lock, and every read hands back an independent copy so
// nothing persists without an explicit Create/Save, mirroring the real
// transaction boundary.
type fakeStore struct {
	mu sync.Mutex

	creds        map[uuid.UUID]*credential.Credential
	credsByCode  map[string]uuid.UUID
	slots        map[uuid.UUID]*occupancy.Slot
	reservations map[uuid.UUID]*shared.ReservationSnapshot
	venueByRes   map[uuid.UUID]uuid.UUID
	shifts       map[[2]uuid.UUID]bool
	persons      map[uuid.UUID]string
	outbox       []outboxJob

	// failNextLookup makes the next credential lookup fail, simulating an
	// exhausted retry loop.
	failNextLookup error
}

type outboxJob struct {
	kind, topic string
	payload     []byte
	runAt       time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		creds:        make(map[uuid.UUID]*credential.Credential),
		credsByCode:  make(map[string]uuid.UUID),
		slots:        make(map[uuid.UUID]*occupancy.Slot),
		reservations: make(map[uuid.UUID]*shared.ReservationSnapshot),
		venueByRes:   make(map[uuid.UUID]uuid.UUID),
		shifts:       make(map[[2]uuid.UUID]bool),
		persons:      make(map[uuid.UUID]string),
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func copyUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyCredential(c *credential.Credential) *credential.Credential {
	return credential.ReconstructCredential(
		c.ID(), c.ReservationID(), c.Code(), c.IntegrityToken(),
		credential.ReconstructWindow(c.Window().From(), c.Window().Until()),
		c.State(), c.AdmissionsUsed(), c.AdmissionBudget(),
		copyTime(c.FirstAdmissionAt()), copyTime(c.LastAdmissionAt()),
		c.CreatedAt(), c.UpdatedAt(),
	)
}

func copySlot(s *occupancy.Slot) *occupancy.Slot {
	return occupancy.ReconstructSlot(
		s.ID(), s.ReservationID(), copyUUID(s.PersonID()), s.Kind(),
		s.DisplayName(), s.Confirmed(), copyTime(s.CheckedInAt()), s.CreatedAt(),
	)
}

// fakeUoW serializes transactions with the store mutex.
type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(_ context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return fn(context.Background(), &fakeTx{store: u.store})
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store, lock: true}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Credentials() shared.CredentialRepository { return &fakeCredRepo{t.store} }
func (t *fakeTx) Slots() shared.SlotRepository             { return &fakeSlotRepo{t.store} }
func (t *fakeTx) Reservations() shared.ReservationRepository {
	return &fakeReservationRepo{t.store}
}
func (t *fakeTx) Outbox() shared.OutboxRepository { return &fakeOutboxRepo{t.store} }
func (t *fakeTx) Reads() shared.CommandReads      { return &fakeReads{store: t.store} }

type fakeCredRepo struct {
	store *fakeStore
}

func (r *fakeCredRepo) Create(_ context.Context, cred *credential.Credential) error {
	if _, exists := r.store.credsByCode[cred.Code()]; exists {
		return infra.WrapRepoErr("duplicate code", nil, infra.KindDuplicateKey)
	}
	r.store.creds[cred.ID()] = copyCredential(cred)
	r.store.credsByCode[cred.Code()] = cred.ID()
	return nil
}

func (r *fakeCredRepo) FindByCodeForUpdate(_ context.Context, code string) (*credential.Credential, error) {
	if err := r.store.failNextLookup; err != nil {
		r.store.failNextLookup = nil
		return nil, err
	}
	id, ok := r.store.credsByCode[code]
	if !ok {
		return nil, infra.WrapRepoErr("credential not found by code", nil, infra.KindNotFound)
	}
	return copyCredential(r.store.creds[id]), nil
}

func (r *fakeCredRepo) FindNonTerminalByReservation(_ context.Context, reservationID uuid.UUID) (*credential.Credential, error) {
	for _, c := range r.store.creds {
		if c.ReservationID() == reservationID && !c.State().IsTerminal() {
			return copyCredential(c), nil
		}
	}
	return nil, infra.WrapRepoErr("no non-terminal credential for reservation", nil, infra.KindNotFound)
}

func (r *fakeCredRepo) Save(_ context.Context, cred *credential.Credential) error {
	if cred.AdmissionsUsed() > cred.AdmissionBudget() {
		return infra.WrapRepoErr("credential update rejected by budget guard", nil, infra.KindConflict)
	}
	r.store.creds[cred.ID()] = copyCredential(cred)
	return nil
}

func (r *fakeCredRepo) CancelByReservation(_ context.Context, reservationID uuid.UUID, now time.Time) (int64, error) {
	var n int64
	for _, c := range r.store.creds {
		if c.ReservationID() == reservationID && !c.State().IsTerminal() {
			if err := c.Cancel(now); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

func (r *fakeCredRepo) ActivatePending(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for _, c := range r.store.creds {
		if c.State() == credential.StatePending && c.Window().Contains(now) {
			if err := c.Activate(now); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

func (r *fakeCredRepo) ExpireStale(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for _, c := range r.store.creds {
		if !c.State().IsTerminal() && c.Window().Lapsed(now) {
			if err := c.Expire(now); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

type fakeSlotRepo struct {
	store *fakeStore
}

func (r *fakeSlotRepo) ListByReservation(_ context.Context, reservationID uuid.UUID) ([]*occupancy.Slot, error) {
	var out []*occupancy.Slot
	for _, s := range r.store.slots {
		if s.ReservationID() == reservationID {
			out = append(out, copySlot(s))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})
	return out, nil
}

func (r *fakeSlotRepo) Create(_ context.Context, slot *occupancy.Slot) error {
	if _, exists := r.store.slots[slot.ID()]; exists {
		return infra.WrapRepoErr("duplicate slot", nil, infra.KindDuplicateKey)
	}
	r.store.slots[slot.ID()] = copySlot(slot)
	return nil
}

func (r *fakeSlotRepo) Save(_ context.Context, slot *occupancy.Slot) error {
	existing, ok := r.store.slots[slot.ID()]
	if !ok {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	if existing.IsCheckedIn() {
		return infra.WrapRepoErr("slot already checked in", nil, infra.KindConflict)
	}
	r.store.slots[slot.ID()] = copySlot(slot)
	return nil
}

type fakeReservationRepo struct {
	store *fakeStore
}

func (r *fakeReservationRepo) MarkCompleted(_ context.Context, reservationID uuid.UUID, _ time.Time) error {
	snap, ok := r.store.reservations[reservationID]
	if !ok || snap.Status != shared.ReservationStatusConfirmed {
		return infra.WrapRepoErr("reservation not completable", nil, infra.KindConflict)
	}
	snap.Status = shared.ReservationStatusCompleted
	return nil
}

type fakeOutboxRepo struct {
	store *fakeStore
}

func (r *fakeOutboxRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.store.outbox = append(r.store.outbox, outboxJob{kind: kind, topic: topic, payload: payload, runAt: runAt})
	return nil
}

// fakeReads locks only when used outside a transaction; inside one the
// transaction already holds the store mutex.
type fakeReads struct {
	store *fakeStore
	lock  bool
}

func (r *fakeReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	if r.lock {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	snap, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	c := *snap
	return &c, nil
}

func (r *fakeReads) VenueForReservation(_ context.Context, reservationID uuid.UUID) (uuid.UUID, error) {
	if r.lock {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	venueID, ok := r.store.venueByRes[reservationID]
	if !ok {
		return uuid.Nil, infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return venueID, nil
}

func (r *fakeReads) StaffAssigned(_ context.Context, staffID, venueID uuid.UUID, _ time.Time) (bool, error) {
	if r.lock {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	return r.store.shifts[[2]uuid.UUID{staffID, venueID}], nil
}

func (r *fakeReads) PersonName(_ context.Context, personID uuid.UUID) (string, error) {
	if r.lock {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	name, ok := r.store.persons[personID]
	if !ok {
		return "", infra.WrapRepoErr("person not found", nil, infra.KindNotFound)
	}
	return name, nil
}

// fakeLogRepo records audit entries appended after the transaction.
type fakeLogRepo struct {
	mu      sync.Mutex
	entries []*adjudication.LogEntry
}

func (r *fakeLogRepo) Append(_ context.Context, entry *adjudication.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeLogRepo) all() []*adjudication.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*adjudication.LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
