package commands

import (
	"context"

	"courtpass/internal/domain/adjudication"
)

// AdjudicationLogRepository appends to the audit trail outside the
// adjudication transaction: a logging failure must never reverse an
// already-committed admit/deny decision.
type AdjudicationLogRepository interface {
	Append(ctx context.Context, entry *adjudication.LogEntry) error
}
