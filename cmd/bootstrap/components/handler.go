package components

import (
	"courtpass/internal/handler"
	"courtpass/internal/handler/api"
	"courtpass/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPassHandler,
		api.NewScanHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
