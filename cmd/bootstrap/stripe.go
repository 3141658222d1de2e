package bootstrap

import (
	"scms/internal/infra/stripegw"
	"scms/internal/pkg/config"

	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		func(cfg config.Config) config.StripeConfig {
			return cfg.Stripe
		},
		stripegw.NewGateway,
	),
)
