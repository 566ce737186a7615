package components

import (
	"courtpass/internal/domain/occupancy"
	"courtpass/internal/pkg/clock"
	"courtpass/internal/pkg/config"
	"courtpass/internal/pkg/passcode"
	"courtpass/internal/usecase/commands"
	"courtpass/internal/usecase/queries"
	"courtpass/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	occupancy.NewAllocator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(uow shared.UnitOfWork, clk clock.Clock, signer *passcode.Signer, cfg config.Config) commands.PassCommands {
			return commands.NewPassCommands(uow, clk, signer, cfg.Pass.GracePeriod)
		},
		commands.NewScanCommands,
		commands.NewSweepCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCredentialQueries,
	),
)
