package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skm_backend/internals/features/skm/responden/controller"
	"skm_backend/internals/features/skm/responden/service"
	"skm_backend/internals/middlewares"
	authMw "skm_backend/internals/middlewares/auth"
)

// RespondenRoutes: /skm/responden
func RespondenRoutes(skm fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRespondenController(service.NewRespondenService(db))

	r := skm.Group("/responden")

	// 🔓 publik
	r.Post("/", middlewares.SubmissionRateLimiter(), ctrl.Create)
	r.Get("/count/total", ctrl.CountAll)
	r.Get("/count/total/gender", ctrl.CountByGender)

	// 🔐 admin
	r.Get("/", authMw.OnlyAdmin(), ctrl.FindAll)
	r.Patch("/", authMw.OnlyAdmin(), ctrl.Update)
	r.Get("/:id", authMw.OnlyAdmin(), ctrl.FindByID)
	r.Delete("/:id", authMw.OnlyAdmin(), ctrl.Remove)
}
