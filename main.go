package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"elo-board-system/handlers"
	"elo-board-system/middleware"
	"elo-board-system/models"
	"elo-board-system/services"
	"elo-board-system/utils"
	"elo-board-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New()

	app.Use(logger.New())
	app.Use(middleware.GatewayAuthMiddleware())

	// Load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	container := models.NewGameContainer("Main Game Container")

	// Persistence is optional. Without DATABASE_URL the service runs purely
	// in memory and ratings reset on restart.
	var snapshotService *services.SnapshotService
	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal("failed to connect to database:", err)
		}

		snapshotService = services.NewSnapshotService(db, container)
		if err := snapshotService.Migrate(); err != nil {
			log.Fatal("failed to migrate database:", err)
		}

		restored, err := snapshotService.Load()
		if err != nil {
			log.Fatal("failed to restore snapshot:", err)
		}
		if !restored {
			log.Println("⚠️  No snapshot found, starting with an empty container")
		}

		snapshotService.StartSnapshotScheduler()
	} else {
		log.Println("⚠️  DATABASE_URL not set, running in-memory only")
	}

	services.SeedSampleData(container)

	gameService := services.NewGameService(container)
	playerService := services.NewPlayerService(container)
	matchService := services.NewMatchService(container)
	dartService := services.NewDartService(container)
	teamService := services.NewTeamService(container)

	handlers.SetupGameRoutes(app, gameService)
	handlers.SetupPlayerRoutes(app, playerService)
	handlers.SetupMatchRoutes(app, matchService)
	handlers.SetupDartRoutes(app, dartService)
	handlers.SetupTeamRoutes(app, teamService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if utils.R2Configured() {
		if err := utils.InitR2(); err != nil {
			log.Fatal("failed to initialize R2 client:", err)
		}
		backupClient := workers.NewBackupClient(container)
		go workers.PollBackups(ctx, backupClient, 15*time.Minute)
		log.Println("✅ R2 snapshot backups running (every 15m)")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5300"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)

	<-ctx.Done()
	log.Println("Shutting down server...")

	if snapshotService != nil {
		if err := snapshotService.Save(); err != nil {
			log.Printf("❌ Final snapshot save failed: %v", err)
		} else {
			log.Println("✅ Final snapshot saved")
		}
	}

	if err := app.Shutdown(); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
