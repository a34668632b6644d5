package components

import (
	"bookit-api/internal/pkg/clock"
	"bookit-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewUserUseCase,
		usecase.NewServiceUseCase,
		usecase.NewBookingUseCase,
		usecase.NewReviewUseCase,
	),
)
