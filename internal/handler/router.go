package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-booking-api/internal/handler/api"
	"salon-booking-api/internal/handler/middleware"
	"salon-booking-api/internal/pkg/config"
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
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	analyticsHandler *api.AnalyticsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, userHandler, bookingHandler, catalogHandler, analyticsHandler, authMiddleware)
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
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	analyticsHandler *api.AnalyticsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: userHandler.ForgotPassword},
				{Method: http.MethodPost, Path: "/reset-password", Handler: userHandler.ResetPassword},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
				{Method: http.MethodPut, Path: "/profile", Handler: userHandler.UpdateProfile},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: userHandler.ListUsers},
				{Method: http.MethodGet, Path: "/:id", Handler: userHandler.GetUser},
				{Method: http.MethodPut, Path: "/:id", Handler: userHandler.UpdateUser},
				{Method: http.MethodDelete, Path: "/:id", Handler: userHandler.DeleteUser},
			})
		}

		appointments := apiGroup.Group("/appointments")
		{
			// Slot availability is public: the booking page shows it before login.
			addRoutes(appointments, []route{
				{Method: http.MethodGet, Path: "/slots", Handler: bookingHandler.ListBookedSlots},
			})

			authed := appointments.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "/mine", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
			})

			admin := appointments.Group("")
			admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetAllBookings},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: bookingHandler.UpdateStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.DeleteBooking},
			})
		}

		artists := apiGroup.Group("/artists")
		{
			addRoutes(artists, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListArtists},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetArtist},
			})

			admin := artists.Group("")
			admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateArtist},
				{Method: http.MethodPut, Path: "/:id", Handler: catalogHandler.UpdateArtist},
				{Method: http.MethodDelete, Path: "/:id", Handler: catalogHandler.DeleteArtist},
			})
		}

		categories := apiGroup.Group("/categories")
		{
			addRoutes(categories, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListCategories},
				{Method: http.MethodGet, Path: "/:id/services", Handler: catalogHandler.ListServices},
			})

			admin := categories.Group("")
			admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateCategory},
				{Method: http.MethodDelete, Path: "/:id", Handler: catalogHandler.DeleteCategory},
				{Method: http.MethodPost, Path: "/:id/services", Handler: catalogHandler.CreateService},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(services, []route{
				{Method: http.MethodPut, Path: "/:id", Handler: catalogHandler.UpdateService},
				{Method: http.MethodDelete, Path: "/:id", Handler: catalogHandler.DeleteService},
			})
		}

		analytics := apiGroup.Group("/analytics")
		analytics.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(analytics, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: analyticsHandler.Dashboard},
				{Method: http.MethodGet, Path: "/revenue", Handler: analyticsHandler.Revenue},
				{Method: http.MethodGet, Path: "/trends", Handler: analyticsHandler.Trends},
				{Method: http.MethodGet, Path: "/popular-services", Handler: analyticsHandler.PopularServices},
				{Method: http.MethodGet, Path: "/artist-performance", Handler: analyticsHandler.ArtistPerformance},
			})
		}
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
