package occupancy

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Allocator decides which slot absorbs the next admission for a
// reservation. It is pure: the caller loads the current ledger, and the
// caller persists whatever the allocator hands back.
type Allocator struct{}

func NewAllocator() *Allocator {
	return &Allocator{}
}

// Allocation is the outcome of one allocation attempt. Created is non-nil
// when a new slot was materialized and must be inserted before check-in.
type Allocation struct {
	Slot    *Slot
	Created bool
}

// EnsureHolderSlot materializes the reservation holder's slot on first
// use. Returns nil when a holder slot already exists.
func (a *Allocator) EnsureHolderSlot(slots []*Slot, reservationID, holderID uuid.UUID, holderName string, now time.Time) (*Slot, error) {
	for _, s := range slots {
		if s.Kind() == KindHolder {
			return nil, nil
		}
	}
	hid := holderID
	return NewSlot(reservationID, &hid, KindHolder, holderName, now)
}

// Allocate picks the oldest not-yet-checked-in slot (FIFO by creation
// order, so a pre-registered guest list is consumed in order). When none
// is pending and the ledger is still below budget, a placeholder UNKNOWN
// slot is materialized. Returns nil when the budget is physically
// exhausted.
func (a *Allocator) Allocate(slots []*Slot, reservationID uuid.UUID, budget int, now time.Time) (*Allocation, error) {
	ordered := make([]*Slot, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt().Before(ordered[j].CreatedAt())
	})

	for _, s := range ordered {
		if !s.IsCheckedIn() {
			return &Allocation{Slot: s}, nil
		}
	}

	if len(slots) >= budget {
		return nil, nil
	}

	guest, err := NewSlot(reservationID, nil, KindUnknown, fmt.Sprintf("Guest %d", len(slots)+1), now)
	if err != nil {
		return nil, err
	}
	return &Allocation{Slot: guest, Created: true}, nil
}

// CheckedInCount is the ledger-derived usage figure; it is the source of
// truth the budget check runs against.
func CheckedInCount(slots []*Slot) int {
	n := 0
	for _, s := range slots {
		if s.IsCheckedIn() {
			n++
		}
	}
	return n
}
