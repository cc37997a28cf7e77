package components

import (
	"fuelpos/internal/handler"
	"fuelpos/internal/handler/api"
	"fuelpos/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPumpHandler,
		api.NewShiftHandler,
		api.NewPaymentHandler,
		api.NewAdminHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
