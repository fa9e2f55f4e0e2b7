package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/features/forms/dto"
	"skm_backend/internals/features/forms/service"
	helper "skm_backend/internals/helpers"
	authMw "skm_backend/internals/middlewares/auth"
)

type FormController struct {
	Service *service.FormService
}

func NewFormController(svc *service.FormService) *FormController {
	return &FormController{Service: svc}
}

// POST /forms
func (h *FormController) Create(c *fiber.Ctx) error {
	var req dto.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("body", "invalid request body")
	}
	res, err := h.Service.Save(c.UserContext(), authMw.CurrentIdentity(c), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /forms
func (h *FormController) FindAll(c *fiber.Ctx) error {
	res, err := h.Service.FindAll(c.UserContext(), authMw.CurrentIdentity(c))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /forms/:formId
func (h *FormController) FindByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "formId")
	if err != nil {
		return err
	}
	res, err := h.Service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// PATCH /forms
func (h *FormController) Update(c *fiber.Ctx) error {
	var req dto.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("body", "invalid request body")
	}
	res, err := h.Service.Update(c.UserContext(), authMw.CurrentIdentity(c), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// DELETE /forms/:formId
func (h *FormController) Remove(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "formId")
	if err != nil {
		return err
	}
	res, err := h.Service.Remove(c.UserContext(), authMw.CurrentIdentity(c), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /forms/url/:shareURL
func (h *FormController) FindByURL(c *fiber.Ctx) error {
	shareURL := strings.TrimSpace(c.Params("shareURL"))
	if shareURL == "" {
		return helper.NewValidationError("shareURL", "shareURL is required")
	}
	res, err := h.Service.FindByURL(c.UserContext(), shareURL)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// PATCH /forms/url
func (h *FormController) Submit(c *fiber.Ctx) error {
	var req dto.SubmitFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("body", "invalid request body")
	}
	res, err := h.Service.UpdateDetails(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /forms/details/:detailId
func (h *FormController) FindDetail(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "detailId")
	if err != nil {
		return err
	}
	res, err := h.Service.FindDetailByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

/* ===== statistik ===== */

// GET /forms/all/statistics
func (h *FormController) Statistics(c *fiber.Ctx) error {
	res, err := h.Service.Statistics(c.UserContext(), authMw.CurrentIdentity(c))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /forms/all/submission-distribution-form
func (h *FormController) Distribution(c *fiber.Ctx) error {
	res, err := h.Service.SubmissionDistribution(c.UserContext(), authMw.CurrentIdentity(c))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /forms/all/monthly-submission-count
func (h *FormController) MonthlyCount(c *fiber.Ctx) error {
	res, err := h.Service.MonthlySubmissionCount(c.UserContext(), authMw.CurrentIdentity(c))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}
