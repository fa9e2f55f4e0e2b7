package route

import (
	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/features/system/backup/controller"
	"skm_backend/internals/features/system/backup/service"
	authMw "skm_backend/internals/middlewares/auth"
)

// BackupRoutes: /system/backup (super admin)
func BackupRoutes(r fiber.Router, svc *service.BackupService) {
	ctrl := controller.NewBackupController(svc)

	b := r.Group("/system/backup", authMw.OnlySuperAdmin())
	b.Get("/", ctrl.List)
	b.Post("/run", ctrl.Run)
	b.Post("/restore", ctrl.Restore)
}
