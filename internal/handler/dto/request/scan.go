package request

import (
	"strings"

	"courtpass/internal/domain/adjudication"
)

type ScanRequest struct {
	Code   string `json:"code" binding:"required"`
	Action string `json:"action" binding:"required,oneof=ENTRY EXIT entry exit"`
}

func (r ScanRequest) ToAction() adjudication.Action {
	return adjudication.Action(strings.ToUpper(r.Action))
}
