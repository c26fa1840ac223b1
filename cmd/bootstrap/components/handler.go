package components

import (
	"parkhub/internal/handler"
	"parkhub/internal/handler/api"
	"parkhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewLotHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewExportHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	lot *api.LotHandler,
	availability *api.AvailabilityHandler,
	reservation *api.ReservationHandler,
	export *api.ExportHandler,
	user *api.UserHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Booking:      booking,
		Lot:          lot,
		Availability: availability,
		Reservation:  reservation,
		Export:       export,
		User:         user,
	}
}
