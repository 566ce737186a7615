package bootstrap

import (
	"courtpass/internal/pkg/config"
	"courtpass/internal/pkg/passcode"

	"go.uber.org/fx"
)

var SigningModule = fx.Module("signing",
	fx.Provide(
		func(cfg config.Config) *passcode.Signer {
			return passcode.NewSigner(cfg.Pass.IntegritySecret)
		},
	),
)
