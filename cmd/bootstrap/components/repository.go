package components

import (
	"bookit-api/internal/infra/repository"
	"bookit-api/internal/infra/uow"
	"bookit-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserRepository)),
		),
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(new(shared.ServiceRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(shared.BookingRepository)),
		),
		fx.Annotate(
			repository.NewReviewRepository,
			fx.As(new(shared.ReviewRepository)),
		),
	),
)
