package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookit-api/internal/handler/api"
	"bookit-api/internal/handler/middleware"
	"bookit-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	serviceHandler *api.ServiceHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, userHandler, serviceHandler, bookingHandler, reviewHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	serviceHandler *api.ServiceHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := engine.Group("/auth")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
		})

		authRequired := auth.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
		})
	}

	users := engine.Group("/users")
	users.Use(authMiddleware.RequireAuth())
	{
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "/me", Handler: userHandler.Me},
			{Method: http.MethodPatch, Path: "/me", Handler: userHandler.UpdateMe},
		})
	}

	services := engine.Group("/services")
	{
		addRoutes(services, []route{
			{Method: http.MethodGet, Path: "", Handler: serviceHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: serviceHandler.Get},
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: serviceHandler.ListReviews},
		})

		admin := services.Group("")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "", Handler: serviceHandler.Create},
			{Method: http.MethodPatch, Path: "/:id", Handler: serviceHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: serviceHandler.Delete},
		})
	}

	bookings := engine.Group("/bookings")
	bookings.Use(authMiddleware.RequireAuth())
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Delete},
		})
	}

	reviews := engine.Group("/reviews")
	{
		addRoutes(reviews, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: reviewHandler.Get},
		})

		authed := reviews.Group("")
		authed.Use(authMiddleware.RequireAuth())
		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "", Handler: reviewHandler.Create},
			{Method: http.MethodPatch, Path: "/:id", Handler: reviewHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: reviewHandler.Delete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
