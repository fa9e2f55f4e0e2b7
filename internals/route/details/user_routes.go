package details

import (
	"github.com/gofiber/fiber/v2"

	userRoute "skm_backend/internals/features/users/route"
	userService "skm_backend/internals/features/users/service"
)

func UserRoutes(api fiber.Router, svc *userService.UserService) {
	userRoute.UserRoutes(api, svc)
}
