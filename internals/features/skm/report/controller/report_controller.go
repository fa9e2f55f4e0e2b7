package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/constants"
	"skm_backend/internals/features/skm/report/service"
	helper "skm_backend/internals/helpers"
)

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(svc *service.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// GET /skm/report/summary
func (h *ReportController) Summary(c *fiber.Ctx) error {
	res, err := h.Service.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /skm/report/export
func (h *ReportController) Export(c *fiber.Ctx) error {
	buf, err := h.Service.Export(c.UserContext())
	if err != nil {
		return err
	}
	name := h.Service.FileName()
	c.Set(fiber.HeaderContentType, constants.DetectContentType(name))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
