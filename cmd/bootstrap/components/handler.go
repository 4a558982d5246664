package components

import (
	"hotel-front-desk/internal/handler"
	"hotel-front-desk/internal/handler/api"
	"hotel-front-desk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewRoomHandler,
		api.NewGuestHandler,
		api.NewBillingHandler,
		api.NewDashboardHandler,
		api.NewEventsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
