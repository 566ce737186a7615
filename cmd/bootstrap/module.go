package bootstrap

import (
	"courtpass/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	SigningModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
