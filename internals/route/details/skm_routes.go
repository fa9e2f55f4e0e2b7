package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionRoute "skm_backend/internals/features/skm/question/route"
	reportRoute "skm_backend/internals/features/skm/report/route"
	respondenRoute "skm_backend/internals/features/skm/responden/route"
	responsesRoute "skm_backend/internals/features/skm/responses/route"
)

// SkmRoutes: /skm/question, /skm/responden, /skm/responses, /skm/report
func SkmRoutes(api fiber.Router, db *gorm.DB) {
	skm := api.Group("/skm")

	questionRoute.QuestionRoutes(skm, db)
	respondenRoute.RespondenRoutes(skm, db)
	responsesRoute.ResponsesRoutes(skm, db)
	reportRoute.ReportRoutes(skm, db)
}
