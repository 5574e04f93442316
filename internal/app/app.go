package app

import (
	"errors"
	"fmt"
	"time"

	"hiringbooth/database"
	"hiringbooth/internal/auth"
	"hiringbooth/internal/config"
	"hiringbooth/internal/email"
	"hiringbooth/internal/handlers"
	"hiringbooth/internal/logger"
	"hiringbooth/internal/middleware"
	"hiringbooth/internal/models"
	"hiringbooth/internal/repositories"
	"hiringbooth/internal/routes"
	"hiringbooth/internal/services"
	"hiringbooth/internal/storage"
	"hiringbooth/internal/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	emailProvider, err := email.NewSMTPProvider(cfg)
	if err != nil {
		logger.Warn("SMTP is not configured, emails will be logged instead of sent", "error", err)
		emailProvider = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()

	return &services.ServiceContainer{
		Auth:        services.NewAuthService(userRepo, profileRepo, emailProvider),
		Profile:     services.NewProfileService(profileRepo, userRepo),
		Job:         services.NewJobService(jobRepo, userRepo, profileRepo),
		Application: services.NewApplicationService(applicationRepo, jobRepo),
		Admin:       services.NewAdminService(userRepo, profileRepo, jobRepo, applicationRepo, emailProvider),
		Upload:      services.NewUploadService(storageInstance, cfg),
	}
}

func initializeHandlers(container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	// Общий лимит на все auth-эндпоинты, от перебора паролей и OTP
	authLimiter := middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.Auth, authLimiter),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, container.Profile),
		JobHandler:         handlers.NewJobHandler(baseHandler, container.Job),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.Application),
		AdminHandler:       handlers.NewAdminHandler(baseHandler, container.Admin),
		UploadHandler:      handlers.NewUploadHandler(baseHandler, container.Upload, storageInstance),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin создает первого администратора из конфигурации.
// Админ рождается верифицированным, OTP ему не высылается.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		IsVerified:   true,
		IsApproved:   true,
		IsActive:     true,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
