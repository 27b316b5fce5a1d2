package components

import (
	"salon-booking-api/internal/pkg/clock"
	"salon-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewUserUseCase,
		usecase.NewBookingUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewAnalyticsUseCase,
	),
)
