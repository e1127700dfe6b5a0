package routers

import (
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTreatmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, treatmentController *controllers.TreatmentController) {
	router.Get("/", treatmentController.FindAll)
	router.With(middlewares.RequireAdmin).Post("/", treatmentController.Create)
	router.With(middlewares.RequireAdmin).Put("/{treatment_id}", treatmentController.Update)
}
