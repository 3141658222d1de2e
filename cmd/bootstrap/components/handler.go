package components

import (
	"scms/internal/handler"
	"scms/internal/handler/api"
	"scms/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewBookingHandler,
		api.NewCourtHandler,
		api.NewCouponHandler,
		api.NewPaymentHandler,
		api.NewRatingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
