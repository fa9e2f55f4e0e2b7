package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skm_backend/internals/features/skm/question/controller"
	"skm_backend/internals/features/skm/question/service"
	authMw "skm_backend/internals/middlewares/auth"
)

// QuestionRoutes: /skm/question
func QuestionRoutes(skm fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestionController(service.NewQuestionService(db))

	q := skm.Group("/question")
	q.Get("/", ctrl.FindAll)
	q.Get("/:id", ctrl.FindByID)

	q.Post("/", authMw.OnlyAdmin(), ctrl.Create)
	q.Patch("/", authMw.OnlyAdmin(), ctrl.Update)
	q.Delete("/:id", authMw.OnlyAdmin(), ctrl.Remove)
}
