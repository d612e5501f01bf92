package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelier/internal/handler/api"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/pkg/config"
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
	roomHandler *api.RoomHandler,
	availabilityHandler *api.AvailabilityHandler,
	guestHandler *api.GuestHandler,
	reservationHandler *api.ReservationHandler,
	paymentHandler *api.PaymentHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, roomHandler, availabilityHandler, guestHandler, reservationHandler, paymentHandler)
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
	roomHandler *api.RoomHandler,
	availabilityHandler *api.AvailabilityHandler,
	guestHandler *api.GuestHandler,
	reservationHandler *api.ReservationHandler,
	paymentHandler *api.PaymentHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodPost, Path: "", Handler: roomHandler.AddRoom},
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/summary", Handler: roomHandler.GetStatusSummary},
				{Method: http.MethodGet, Path: "/:number", Handler: roomHandler.GetRoom},
				{Method: http.MethodPut, Path: "/:number/maintenance", Handler: roomHandler.SetMaintenance},
				{Method: http.MethodGet, Path: "/:number/availability", Handler: availabilityHandler.CheckAvailability},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.ListAvailableRooms},
		})

		guests := apiGroup.Group("/guests")
		{
			addRoutes(guests, []route{
				{Method: http.MethodPost, Path: "", Handler: guestHandler.RegisterGuest},
				{Method: http.MethodGet, Path: "", Handler: guestHandler.ListGuests},
				{Method: http.MethodGet, Path: "/:phone", Handler: guestHandler.GetGuest},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: reservationHandler.CheckIn},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: reservationHandler.CheckOut},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "", Handler: paymentHandler.ListPayments},
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
