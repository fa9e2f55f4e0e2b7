package testutil

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	helper "skm_backend/internals/helpers"
)

// StatusOf: kode HTTP yang akan dirender ErrorHandler; 0 untuk error internal.
func StatusOf(err error) int {
	var verr *helper.ValidationError
	if errors.As(err, &verr) {
		return fiber.StatusBadRequest
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return 0
}
