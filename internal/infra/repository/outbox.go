package repository

import (
	"context"
	"time"

	"courtpass/internal/infra"
	"courtpass/internal/infra/db"

	"github.com/google/uuid"
)

// OutboxRepository writes notification jobs in the caller's transaction;
// the owner system's worker drains them after commit.
type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(dbtx db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: dbtx}
}

func (r *OutboxRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
	`, uuid.New(), kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
