package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formRoute "skm_backend/internals/features/forms/route"
)

func FormRoutes(api fiber.Router, db *gorm.DB) {
	formRoute.FormRoutes(api, db)
}
