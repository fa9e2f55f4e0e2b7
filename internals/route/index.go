package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	backupService "skm_backend/internals/features/system/backup/service"
	userService "skm_backend/internals/features/users/service"
	"skm_backend/internals/log"
	"skm_backend/internals/middlewares"
	authMw "skm_backend/internals/middlewares/auth"
	routeDetails "skm_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, backup *backupService.BackupService) {
	startTime = time.Now()

	BaseRoutes(app, db)

	users := userService.NewUserService(db)

	// ===================== API v1 =====================
	// JWT opsional di level group; guard per route
	log.Println("[INFO] Setting up /api/v1 group...")
	api := app.Group("/api/v1",
		middlewares.GlobalRateLimiter(),
		authMw.ResolveIdentity(users),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(api, users)

	log.Println("[INFO] Mounting Form routes...")
	routeDetails.FormRoutes(api, db)

	log.Println("[INFO] Mounting SKM routes...")
	routeDetails.SkmRoutes(api, db)

	if backup != nil {
		log.Println("[INFO] Mounting System routes...")
		routeDetails.SystemRoutes(api, backup)
	}
}
