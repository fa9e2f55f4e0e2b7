package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skm_backend/internals/features/skm/responses/controller"
	"skm_backend/internals/features/skm/responses/service"
	"skm_backend/internals/middlewares"
	authMw "skm_backend/internals/middlewares/auth"
)

// ResponsesRoutes: /skm/responses
func ResponsesRoutes(skm fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResponsesController(service.NewResponsesService(db))

	r := skm.Group("/responses")

	// 🔓 publik
	r.Post("/", middlewares.SubmissionRateLimiter(), ctrl.Create)
	r.Get("/", ctrl.FindAll)
	r.Get("/:responsesId/response", ctrl.FindByID)
	r.Get("/:questionId/all", ctrl.FindByQuestion)
	r.Get("/:userId/user", ctrl.FindByResponden)

	// 🔐 admin
	r.Patch("/", authMw.OnlyAdmin(), ctrl.Update)
}
