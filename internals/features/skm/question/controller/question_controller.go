package controller

import (
	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/features/skm/question/dto"
	"skm_backend/internals/features/skm/question/service"
	helper "skm_backend/internals/helpers"
	authMw "skm_backend/internals/middlewares/auth"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// POST /skm/question
func (h *QuestionController) Create(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("body", "invalid request body")
	}
	res, err := h.Service.Save(c.UserContext(), authMw.CurrentIdentity(c), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /skm/question/:id
func (h *QuestionController) FindByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.Service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /skm/question
func (h *QuestionController) FindAll(c *fiber.Ctx) error {
	res, err := h.Service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// PATCH /skm/question
func (h *QuestionController) Update(c *fiber.Ctx) error {
	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("body", "invalid request body")
	}
	res, err := h.Service.Update(c.UserContext(), authMw.CurrentIdentity(c), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// DELETE /skm/question/:id
func (h *QuestionController) Remove(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.Service.Remove(c.UserContext(), authMw.CurrentIdentity(c), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}
