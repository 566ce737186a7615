package commands

import (
	"context"
	"log/slog"

	"courtpass/internal/pkg/clock"
	"courtpass/internal/usecase/shared"
)

// SweepCommands are the time-driven lifecycle transitions. Both are
// idempotent bulk updates, safe to run concurrently with adjudication.
type SweepCommands interface {
	ActivatePending(ctx context.Context) (int64, error)
	ExpireStale(ctx context.Context) (int64, error)
}

type sweepUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSweepCommands(uow shared.UnitOfWork, clk clock.Clock) SweepCommands {
	return &sweepUseCaseImpl{uow: uow, clock: clk}
}

func (uc *sweepUseCaseImpl) ActivatePending(ctx context.Context) (int64, error) {
	var activated int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Credentials().ActivatePending(ctx, uc.clock.Now())
		if err != nil {
			return err
		}
		activated = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	if activated > 0 {
		slog.Info("sweeper activated pending credentials", "count", activated)
	}
	return activated, nil
}

func (uc *sweepUseCaseImpl) ExpireStale(ctx context.Context) (int64, error) {
	var expired int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Credentials().ExpireStale(ctx, uc.clock.Now())
		if err != nil {
			return err
		}
		expired = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		slog.Info("sweeper expired stale credentials", "count", expired)
	}
	return expired, nil
}
