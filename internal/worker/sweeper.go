// Package worker runs the background lifecycle sweeper that moves
// credentials across time-driven state boundaries (PENDING->ACTIVE,
// stale->EXPIRED) independently of scan traffic.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"courtpass/internal/obs"
	"courtpass/internal/pkg/errs"
	"courtpass/internal/usecase/commands"
)

type Sweeper struct {
	scheduler gocron.Scheduler
	sweeps    commands.SweepCommands
	interval  time.Duration
	logger    *slog.Logger
}

func NewSweeper(sweeps commands.SweepCommands, interval time.Duration, logger *slog.Logger) (*Sweeper, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, errs.Wrap(err, "failed to create sweep scheduler")
	}
	return &Sweeper{
		scheduler: scheduler,
		sweeps:    sweeps,
		interval:  interval,
		logger:    logger,
	}, nil
}

// Start registers the sweep job and begins ticking. Both passes run in
// the same tick; each is independently idempotent so overlapping runs
// or crashes between passes are harmless.
func (s *Sweeper) Start(ctx context.Context) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			s.sweep(ctx)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return errs.Wrap(err, "failed to register sweep job")
	}
	s.scheduler.Start()
	return nil
}

func (s *Sweeper) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Sweeper) sweep(ctx context.Context) {
	activated, err := s.sweeps.ActivatePending(ctx)
	if err != nil {
		s.logger.Error("sweep: activate pending failed", slog.String("error", err.Error()))
	} else if activated > 0 {
		obs.CountSweepTransitions("activated", activated)
	}

	expired, err := s.sweeps.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("sweep: expire stale failed", slog.String("error", err.Error()))
	} else if expired > 0 {
		obs.CountSweepTransitions("expired", expired)
	}
}
