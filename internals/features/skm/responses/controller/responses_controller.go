package controller

import (
	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/features/skm/responses/dto"
	"skm_backend/internals/features/skm/responses/service"
	helper "skm_backend/internals/helpers"
	authMw "skm_backend/internals/middlewares/auth"
)

type ResponsesController struct {
	Service *service.ResponsesService
}

func NewResponsesController(svc *service.ResponsesService) *ResponsesController {
	return &ResponsesController{Service: svc}
}

// POST /skm/responses
func (h *ResponsesController) Create(c *fiber.Ctx) error {
	var req dto.CreateResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("body", "invalid request body")
	}
	res, err := h.Service.Save(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /skm/responses/:responsesId/response
func (h *ResponsesController) FindByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "responsesId")
	if err != nil {
		return err
	}
	res, err := h.Service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /skm/responses/:questionId/all
func (h *ResponsesController) FindByQuestion(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "questionId")
	if err != nil {
		return err
	}
	res, err := h.Service.FindByQuestionID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /skm/responses/:userId/user  (userId = id responden)
func (h *ResponsesController) FindByResponden(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "userId")
	if err != nil {
		return err
	}
	res, err := h.Service.FindByRespondenID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// PATCH /skm/responses
func (h *ResponsesController) Update(c *fiber.Ctx) error {
	var req dto.UpdateResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("body", "invalid request body")
	}
	res, err := h.Service.Update(c.UserContext(), authMw.CurrentIdentity(c), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /skm/responses
func (h *ResponsesController) FindAll(c *fiber.Ctx) error {
	res, err := h.Service.FindAllWithQuestions(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}
