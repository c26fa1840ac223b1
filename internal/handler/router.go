package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkhub/internal/handler/api"
	"parkhub/internal/handler/middleware"
	"parkhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Lot          *api.LotHandler
	Availability *api.AvailabilityHandler
	Reservation  *api.ReservationHandler
	Export       *api.ExportHandler
	User         *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// availability is public so the kiosk displays need no session
		availability := apiGroup.Group("/availability")
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Availability.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Availability.Get},
			})
		}

		lots := apiGroup.Group("/lots")
		lots.Use(authMiddleware.RequireAuth())
		{
			addRoutes(lots, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Lot.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Lot.Get},
				{Method: http.MethodGet, Path: "/:id/spots", Handler: h.Lot.ListSpots},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Book},
				{Method: http.MethodPost, Path: "/:id/release", Handler: h.Booking.Release},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.History},
				{Method: http.MethodGet, Path: "/active", Handler: h.Reservation.Active},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			})
		}

		exports := apiGroup.Group("/exports")
		exports.Use(authMiddleware.RequireAuth())
		{
			addRoutes(exports, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Export.Request},
				{Method: http.MethodGet, Path: "", Handler: h.Export.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Export.Get},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/lots", Handler: h.Lot.Create},
				{Method: http.MethodPatch, Path: "/lots/:id", Handler: h.Lot.Update},
				{Method: http.MethodPost, Path: "/lots/:id/resize", Handler: h.Lot.Resize},
				{Method: http.MethodDelete, Path: "/lots/:id", Handler: h.Lot.Delete},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Availability.Stats},
				{Method: http.MethodGet, Path: "/users", Handler: h.User.List},
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
