package response

import (
	"time"

	"courtpass/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CredentialResponse struct {
	ID               uuid.UUID  `json:"id"`
	ReservationID    uuid.UUID  `json:"reservationId"`
	Code             string     `json:"code"`
	ValidFrom        time.Time  `json:"validFrom"`
	ValidUntil       time.Time  `json:"validUntil"`
	State            string     `json:"state"`
	AdmissionsUsed   int        `json:"admissionsUsed"`
	AdmissionBudget  int        `json:"admissionBudget"`
	FirstAdmissionAt *time.Time `json:"firstAdmissionAt,omitempty"`
	LastAdmissionAt  *time.Time `json:"lastAdmissionAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func FromCredentialView(view *queries.CredentialView) *CredentialResponse {
	var resp CredentialResponse
	// Field names line up one-to-one with the read model
	_ = copier.Copy(&resp, view)
	return &resp
}
