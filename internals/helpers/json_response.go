package helper

import (
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Envelope: { data } / { errors }
=================================*/

// JsonOK: response sukses generic. Semua operasi sukses memakai 200.
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": data,
	})
}

// JsonList: list dengan total (+ metadata paging bila ada).
func JsonList(c *fiber.Ctx, data any, total int64, pagination *Pagination) error {
	body := fiber.Map{
		"data":  data,
		"total": total,
	}
	if pagination != nil {
		p := *pagination
		p.Count = lenOf(data)
		body["pagination"] = p
	}
	return JsonOK(c, body)
}

// JsonError: semua kegagalan keluar lewat sini. errors bisa string atau list field error.
func JsonError(c *fiber.Ctx, status int, errors any) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"errors": errors,
	})
}
