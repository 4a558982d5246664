package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-front-desk/internal/domain/staff"
	"hotel-front-desk/internal/handler/api"
	"hotel-front-desk/internal/handler/middleware"
	"hotel-front-desk/internal/pkg/config"
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
	reservationHandler *api.ReservationHandler,
	roomHandler *api.RoomHandler,
	guestHandler *api.GuestHandler,
	billingHandler *api.BillingHandler,
	dashboardHandler *api.DashboardHandler,
	eventsHandler *api.EventsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, roomHandler, guestHandler, billingHandler, dashboardHandler, eventsHandler, authMiddleware)
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
	reservationHandler *api.ReservationHandler,
	roomHandler *api.RoomHandler,
	guestHandler *api.GuestHandler,
	billingHandler *api.BillingHandler,
	dashboardHandler *api.DashboardHandler,
	eventsHandler *api.EventsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.SubmitReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:id/checkin", Handler: reservationHandler.CheckIn},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: reservationHandler.CheckOut},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.Cancel},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/available", Handler: roomHandler.ListAvailableRooms},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/room-types", Handler: roomHandler.ListRoomTypes},
			{Method: http.MethodGet, Path: "/service-items", Handler: roomHandler.ListServiceItems},
		})

		guests := apiGroup.Group("/guests")
		{
			addRoutes(guests, []route{
				{Method: http.MethodGet, Path: "/find", Handler: guestHandler.FindGuest},
				{Method: http.MethodPost, Path: "", Handler: guestHandler.CreateGuest},
			})
		}

		invoices := apiGroup.Group("/invoices")
		{
			addRoutes(invoices, []route{
				{Method: http.MethodPost, Path: "/preview", Handler: billingHandler.PreviewInvoice},
				{Method: http.MethodPost, Path: "/confirm", Handler: billingHandler.ConfirmPayment},
			})
		}

		addRoutes(apiGroup, []route{
			{
				Method:  http.MethodGet,
				Path:    "/dashboard",
				Handler: dashboardHandler.Get,
				Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(staff.RoleManager)},
			},
			{Method: http.MethodGet, Path: "/events/stream", Handler: eventsHandler.Stream},
		})
	}
}

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
