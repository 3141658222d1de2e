package components

import (
	"scms/internal/pkg/clock"
	"scms/internal/pkg/config"
	"scms/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		func(cfg config.Config) config.RankingConfig {
			return cfg.Ranking
		},
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewUserUseCase,
		usecase.NewBookingUseCase,
		usecase.NewCourtUseCase,
		usecase.NewCouponUseCase,
		usecase.NewPaymentUseCase,
		usecase.NewRatingUseCase,
	),
)
