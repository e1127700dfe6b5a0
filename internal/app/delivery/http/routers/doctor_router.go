package routers

import (
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Get("/{doctor_id}", doctorController.FindByID)
	router.With(middlewares.RequireAdmin).Post("/", doctorController.Create)
	router.With(middlewares.RequireAdmin).Put("/{doctor_id}", doctorController.Update)
	router.With(middlewares.RequireAdmin).Delete("/{doctor_id}", doctorController.Delete)
	router.With(middlewares.RequireAdmin).Post("/{doctor_id}/avatar", doctorController.UploadAvatar)
}
