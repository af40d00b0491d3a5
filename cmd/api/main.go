package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/unitedfert/receipts-api/internal/application/service"
	"github.com/unitedfert/receipts-api/internal/config"
	"github.com/unitedfert/receipts-api/internal/infrastructure/database"
	"github.com/unitedfert/receipts-api/internal/infrastructure/repository"
	"github.com/unitedfert/receipts-api/internal/presentation/http/handler"
	"github.com/unitedfert/receipts-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the bootstrap admin account when configured
	if err := database.SeedAdminUser(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// Initialize repositories
	receiptRepo := repository.NewReceiptRepository(db)
	clientRepo := repository.NewClientRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	systemListRepo := repository.NewSystemListRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	receiptService := service.NewReceiptService(receiptRepo)
	clientService := service.NewClientService(clientRepo)
	settingsService := service.NewSettingsService(companyRepo, systemListRepo)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Receipt:  handler.NewReceiptHandler(receiptService),
		Client:   handler.NewClientHandler(clientService),
		Settings: handler.NewSettingsHandler(settingsService),
		User:     handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg: cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
