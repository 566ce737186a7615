package components

import (
	"context"
	"log/slog"

	"courtpass/internal/pkg/config"
	"courtpass/internal/usecase/commands"
	"courtpass/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(sweeps commands.SweepCommands, cfg config.Config, logger *slog.Logger) (*worker.Sweeper, error) {
			return worker.NewSweeper(sweeps, cfg.Pass.SweepInterval, logger)
		},
	),
	fx.Invoke(startSweeper),
)

func startSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sweeper.Start(context.WithoutCancel(ctx))
		},
		OnStop: func(_ context.Context) error {
			return sweeper.Stop()
		},
	})
}
