package queries

import (
	"time"

	"github.com/google/uuid"
)

// CredentialView is the read-side projection exposed to callers. The
// integrity token stays internal; delivery collaborators only need the
// code and the window.
type CredentialView struct {
	ID               uuid.UUID  `json:"id"`
	ReservationID    uuid.UUID  `json:"reservation_id"`
	Code             string     `json:"code"`
	ValidFrom        time.Time  `json:"valid_from"`
	ValidUntil       time.Time  `json:"valid_until"`
	State            string     `json:"state"`
	AdmissionsUsed   int        `json:"admissions_used"`
	AdmissionBudget  int        `json:"admission_budget"`
	FirstAdmissionAt *time.Time `json:"first_admission_at,omitempty"`
	LastAdmissionAt  *time.Time `json:"last_admission_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
