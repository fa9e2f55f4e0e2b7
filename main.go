package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/configs"
	database "skm_backend/internals/databases"
	backupService "skm_backend/internals/features/system/backup/service"
	userService "skm_backend/internals/features/users/service"
	"skm_backend/internals/helpers/mailer"
	"skm_backend/internals/log"
	middlewares "skm_backend/internals/middlewares"
	routes "skm_backend/internals/route"
	"skm_backend/internals/schedulers"
	"skm_backend/internals/seeds"
)

func main() {
	seed := flag.Bool("seed", false, "jalankan seed super admin lalu lanjut start server")
	flag.Parse()

	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            middlewares.ErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}

	if *seed || configs.GetEnvBool("SEED", false) {
		if err := seeds.RunAllSeeds(database.DB); err != nil {
			log.Fatalf("❌ Seed gagal: %v", err)
		}
	}

	sender := mailer.NewSMTPSender()
	backup := backupService.NewBackupService(userService.NewUserService(database.DB), sender)

	// ⏱ scheduler setelah DB siap
	cron, err := schedulers.StartMonthlyJobs(database.DB, backup, sender)
	if err != nil {
		log.Fatalf("❌ Scheduler gagal: %v", err)
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, backup)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: server, cron, lalu pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	cron.Stop(ctx)

	database.Close()
}
