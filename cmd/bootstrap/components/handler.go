package components

import (
	"bookit-api/internal/handler"
	"bookit-api/internal/handler/api"
	"bookit-api/internal/handler/middleware"
	"bookit-api/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewServiceHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
