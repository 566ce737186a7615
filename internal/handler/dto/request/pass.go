package request

import (
	"github.com/google/uuid"
)

type IssuePassRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
}
