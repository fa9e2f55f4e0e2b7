package route

import (
	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/features/users/controller"
	"skm_backend/internals/features/users/service"
	"skm_backend/internals/middlewares"
	authMw "skm_backend/internals/middlewares/auth"
)

// UserRoutes: /users
func UserRoutes(r fiber.Router, svc *service.UserService) {
	ctrl := controller.NewUserController(svc, service.NewCaptchaVerifier())

	users := r.Group("/users")

	// 🔓 publik
	users.Post("/", middlewares.RegisterRateLimiter(), ctrl.Register)
	users.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	users.Post("/verify/captcha", ctrl.VerifyCaptcha)

	// 👤 user login
	users.Get("/current", authMw.RequireAuth(), ctrl.Current)

	// 🔐 super admin
	users.Post("/admin/add", authMw.OnlySuperAdmin(), ctrl.AdminAdd)
	users.Get("/", authMw.OnlySuperAdmin(), ctrl.FindAll)
	users.Delete("/admin/:userId", authMw.OnlySuperAdmin(), ctrl.Remove)
}
