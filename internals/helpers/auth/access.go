package auth

import (
	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/constants"
)

// RequireAuthenticated gagal 401 bila tidak ada identitas.
func RequireAuthenticated(id *Identity) (*Identity, error) {
	if id == nil || id.ID == 0 {
		return nil, fiber.NewError(fiber.StatusUnauthorized, constants.MsgUnauthorized)
	}
	return id, nil
}

// RequireRole: 401 lebih dulu bila anonim, lalu 403 bila role tidak cukup.
func RequireRole(id *Identity, level constants.RoleLevel) (*Identity, error) {
	id, err := RequireAuthenticated(id)
	if err != nil {
		return nil, err
	}
	if !level.Allows(id.Role) {
		return nil, fiber.NewError(fiber.StatusForbidden, constants.MsgForbidden)
	}
	return id, nil
}
