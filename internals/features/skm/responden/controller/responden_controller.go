package controller

import (
	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/features/skm/responden/dto"
	"skm_backend/internals/features/skm/responden/service"
	helper "skm_backend/internals/helpers"
	authMw "skm_backend/internals/middlewares/auth"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type RespondenController struct {
	Service *service.RespondenService
}

func NewRespondenController(svc *service.RespondenService) *RespondenController {
	return &RespondenController{Service: svc}
}

// POST /skm/responden
func (h *RespondenController) Create(c *fiber.Ctx) error {
	var req dto.CreateRespondenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("body", "invalid request body")
	}
	res, err := h.Service.Save(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /skm/responden/:id
func (h *RespondenController) FindByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.Service.FindByID(c.UserContext(), authMw.CurrentIdentity(c), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /skm/responden?page=&limit=&search=
func (h *RespondenController) FindAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, defaultPerPage, maxPerPage)
	rows, total, err := h.Service.FindAll(c.UserContext(), authMw.CurrentIdentity(c), dto.ListQuery{
		Paging: paging,
		Search: c.Query("search"),
	})
	if err != nil {
		return err
	}
	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, rows, total, &pg)
}

// PATCH /skm/responden
func (h *RespondenController) Update(c *fiber.Ctx) error {
	var req dto.UpdateRespondenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("body", "invalid request body")
	}
	res, err := h.Service.Update(c.UserContext(), authMw.CurrentIdentity(c), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// DELETE /skm/responden/:id
func (h *RespondenController) Remove(c *fiber.Ctx) error {
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

// GET /skm/responden/count/total
func (h *RespondenController) CountAll(c *fiber.Ctx) error {
	res, err := h.Service.CountAll(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /skm/responden/count/total/gender
func (h *RespondenController) CountByGender(c *fiber.Ctx) error {
	res, err := h.Service.CountByGender(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}
