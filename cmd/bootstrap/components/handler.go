package components

import (
	"hotelier/internal/handler"
	"hotelier/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewAvailabilityHandler,
		api.NewGuestHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
