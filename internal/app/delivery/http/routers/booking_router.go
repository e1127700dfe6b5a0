package routers

import (
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// attachAdminSessionRoutes mounts the legacy flat admin endpoints the booking
// dashboard calls.
func attachAdminSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.With(middlewares.RequireAdmin).Post("/admin-changes-sessions", bookingController.ChangeSessionInformation)
	router.With(middlewares.RequireAdmin).Post("/admin-add-next-sessions", bookingController.AddNextSession)
	router.With(middlewares.RequireAdmin).Post("/admin-add-updated-prescriptions", bookingController.UpsertSessionPrescription)
}

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.With(middlewares.Authenticate).Post("/", bookingController.CreateBooking)
}

func attachAdminBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.With(middlewares.RequireAdmin).Get("/", bookingController.FindAll)
	router.With(middlewares.RequireAdmin).Get("/{booking_id}", bookingController.FindByID)
	router.With(middlewares.RequireAdmin).Post("/{booking_id}/cancel", bookingController.CancelBooking)
}
