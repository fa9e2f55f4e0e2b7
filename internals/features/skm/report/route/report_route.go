package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skm_backend/internals/features/skm/report/controller"
	"skm_backend/internals/features/skm/report/service"
	authMw "skm_backend/internals/middlewares/auth"
)

// ReportRoutes: /skm/report (admin)
func ReportRoutes(skm fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(service.NewReportService(db))

	r := skm.Group("/report", authMw.OnlyAdmin())
	r.Get("/summary", ctrl.Summary)
	r.Get("/export", ctrl.Export)
}
