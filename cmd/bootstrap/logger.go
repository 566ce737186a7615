package bootstrap

import (
	"log/slog"

	"courtpass/internal/handler/middleware"
	"courtpass/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.Config) *middleware.Logger {
			return middleware.NewLogger(cfg.Log)
		},
		func(logger *middleware.Logger) *slog.Logger {
			return logger.GetSlogLogger()
		},
	),
)
