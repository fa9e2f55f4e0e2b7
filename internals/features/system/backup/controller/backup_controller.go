package controller

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/features/system/backup/dto"
	"skm_backend/internals/features/system/backup/service"
	helper "skm_backend/internals/helpers"
	authMw "skm_backend/internals/middlewares/auth"
	"skm_backend/internals/log"
)

// batas waktu job manual; tidak ikut dibatalkan saat klien memutus koneksi
const runTimeout = 10 * time.Minute

type BackupController struct {
	Service *service.BackupService
}

func NewBackupController(svc *service.BackupService) *BackupController {
	return &BackupController{Service: svc}
}

// POST /system/backup/run
func (h *BackupController) Run(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.UserContext()), runTimeout)
	defer cancel()

	if id := authMw.CurrentIdentity(c); id != nil {
		log.Printf("[BACKUP] backup manual oleh %s", id.Email)
	}
	res, err := h.Service.RunWithResult(ctx)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /system/backup
func (h *BackupController) List(c *fiber.Ctx) error {
	res, err := h.Service.List()
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// POST /system/backup/restore
func (h *BackupController) Restore(c *fiber.Ctx) error {
	var req dto.RestoreRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.UserContext()), runTimeout)
	defer cancel()

	if err := h.Service.Restore(ctx, req.File); err != nil {
		return err
	}
	return helper.JsonOK(c, "OK")
}
