package components

import (
	"courtpass/internal/infra/db"
	"courtpass/internal/infra/readstore"
	"courtpass/internal/infra/repository"
	"courtpass/internal/infra/uow"
	"courtpass/internal/usecase/commands"
	"courtpass/internal/usecase/queries"
	"courtpass/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCredentialReadStore,
			fx.As(new(queries.CredentialReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork owns the transactional repositories; only the
		// adjudication log writes outside a transaction and is wired here.
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			repository.NewAdjudicationLogRepository,
			fx.As(new(commands.AdjudicationLogRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
