package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/constants"
	helper "skm_backend/internals/helpers"
	"skm_backend/internals/log"
)

// ErrorHandler merender semua error sebagai { errors: ... } tanpa detail internal.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var verr *helper.ValidationError
	if errors.As(err, &verr) {
		return helper.JsonError(c, fiber.StatusBadRequest, verr.Fields)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			log.Errorf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), fe.Message)
			return helper.JsonError(c, fe.Code, constants.MsgInternal)
		}
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if helper.IsNotFound(err) {
		return helper.JsonError(c, fiber.StatusNotFound, "not found")
	}

	log.Errorf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgInternal)
}
