package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skm_backend/internals/features/forms/controller"
	"skm_backend/internals/features/forms/service"
	"skm_backend/internals/middlewares"
	authMw "skm_backend/internals/middlewares/auth"
)

// FormRoutes: /forms. Rute statis didaftarkan sebelum /:formId.
func FormRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFormController(service.NewFormService(db))

	forms := r.Group("/forms")

	// 📊 statistik (admin)
	stats := forms.Group("/all", authMw.OnlyAdmin())
	stats.Get("/statistics", ctrl.Statistics)
	stats.Get("/submission-distribution-form", ctrl.Distribution)
	stats.Get("/monthly-submission-count", ctrl.MonthlyCount)

	// 🔓 publik via share URL
	forms.Get("/url/:shareURL", ctrl.FindByURL)
	forms.Patch("/url", middlewares.SubmissionRateLimiter(), ctrl.Submit)
	forms.Get("/details/:detailId", ctrl.FindDetail)

	// 🔐 admin
	forms.Post("/", authMw.OnlyAdmin(), ctrl.Create)
	forms.Get("/", authMw.OnlyAdmin(), ctrl.FindAll)
	forms.Patch("/", authMw.OnlyAdmin(), ctrl.Update)
	forms.Delete("/:formId", authMw.OnlyAdmin(), ctrl.Remove)

	forms.Get("/:formId", ctrl.FindByID)
}
