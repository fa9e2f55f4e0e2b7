package controller

import (
	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/features/users/dto"
	"skm_backend/internals/features/users/service"
	helper "skm_backend/internals/helpers"
	authMw "skm_backend/internals/middlewares/auth"
)

type UserController struct {
	Service *service.UserService
	Captcha *service.CaptchaVerifier
}

func NewUserController(svc *service.UserService, captcha *service.CaptchaVerifier) *UserController {
	return &UserController{Service: svc, Captcha: captcha}
}

// POST /users
func (h *UserController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("body", "invalid request body")
	}
	res, err := h.Service.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// POST /users/login
func (h *UserController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("body", "invalid request body")
	}
	res, err := h.Service.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /users/current
func (h *UserController) Current(c *fiber.Ctx) error {
	res, err := h.Service.Current(c.UserContext(), authMw.CurrentIdentity(c))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// POST /users/admin/add
func (h *UserController) AdminAdd(c *fiber.Ctx) error {
	var req dto.AdminRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("body", "invalid request body")
	}
	res, err := h.Service.AdminAddUser(c.UserContext(), authMw.CurrentIdentity(c), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /users
func (h *UserController) FindAll(c *fiber.Ctx) error {
	res, err := h.Service.FindAllUsers(c.UserContext(), authMw.CurrentIdentity(c))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// DELETE /users/admin/:userId
func (h *UserController) Remove(c *fiber.Ctx) error {
	userID, err := helper.ParseID(c, "userId")
	if err != nil {
		return err
	}
	res, err := h.Service.RemoveUser(c.UserContext(), authMw.CurrentIdentity(c), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// POST /users/verify/captcha
func (h *UserController) VerifyCaptcha(c *fiber.Ctx) error {
	var req dto.CaptchaRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.Captcha.Verify(c.UserContext(), req.Token)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}
