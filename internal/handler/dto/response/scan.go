package response

import (
	"time"

	"courtpass/internal/domain/adjudication"
)

type DecisionResponse struct {
	Granted             bool       `json:"granted"`
	ReasonCode          string     `json:"reasonCode"`
	RemainingAdmissions *int       `json:"remainingAdmissions,omitempty"`
	ValidFrom           *time.Time `json:"validFrom,omitempty"`
}

func FromDecision(d adjudication.Decision) *DecisionResponse {
	return &DecisionResponse{
		Granted:             d.Outcome.Granted(),
		ReasonCode:          d.Outcome.String(),
		RemainingAdmissions: d.RemainingAdmissions,
		ValidFrom:           d.ValidFrom,
	}
}
