package auth

import (
	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/constants"
	authHelper "skm_backend/internals/helpers/auth"
)

// RequireAuth: 401 bila tidak ada identitas.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := authHelper.RequireAuthenticated(CurrentIdentity(c)); err != nil {
			return err
		}
		return c.Next()
	}
}

// RequireRole: 401 untuk anonim, 403 untuk role yang tidak memenuhi level.
func RequireRole(level constants.RoleLevel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := authHelper.RequireRole(CurrentIdentity(c), level); err != nil {
			return err
		}
		return c.Next()
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyAdmin() fiber.Handler {
	return RequireRole(constants.LevelAdmin)
}

func OnlySuperAdmin() fiber.Handler {
	return RequireRole(constants.LevelSuperAdmin)
}
