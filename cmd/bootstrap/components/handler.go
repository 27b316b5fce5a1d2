package components

import (
	"salon-booking-api/internal/handler"
	"salon-booking-api/internal/handler/api"
	"salon-booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewAnalyticsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
