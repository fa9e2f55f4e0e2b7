package details

import (
	"github.com/gofiber/fiber/v2"

	backupRoute "skm_backend/internals/features/system/backup/route"
	backupService "skm_backend/internals/features/system/backup/service"
)

func SystemRoutes(api fiber.Router, backup *backupService.BackupService) {
	backupRoute.BackupRoutes(api, backup)
}
