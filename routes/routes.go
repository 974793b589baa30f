package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"IrisCare/config"
	"IrisCare/controllers"
	"IrisCare/handlers"
	"IrisCare/middlewares"
	"IrisCare/repositories"
	"IrisCare/services"
	"IrisCare/storage"
)

// SetupRoutes initializes the middleware chain, repositories, services and
// handlers, and returns the assembled HTTP handler. When db is nil every
// collection lives in the key-value store; otherwise patients, professionals
// and messages move to Postgres while sessions stay in the key-value store.
func SetupRoutes(kv storage.KV, cfg *config.AppConfig, db *gorm.DB) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middlewares.ValidateBearerToken(cfg.GetBearerToken()))
	router.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))
	router.Use(middlewares.LoggingMiddleware())

	patientRepo, professionalRepo, messageRepo := repositories.NewRepositories(kv, db)

	patientService := services.NewPatientService(patientRepo)
	professionalService := services.NewProfessionalService(professionalRepo)
	messageService := services.NewMessageService(messageRepo)
	authService := services.NewAuthService(kv, patientRepo, professionalRepo, cfg)
	exportService := services.NewExportService(kv, patientRepo, professionalRepo)
	importService := services.NewImportService(patientRepo, professionalRepo)

	patientHandler := handlers.NewPatientHandler(patientService)
	professionalHandler := handlers.NewProfessionalHandler(professionalService)
	messageHandler := handlers.NewMessageHandler(messageService, authService)
	authHandler := handlers.NewAuthHandler(authService)
	exportHandler := handlers.NewExportHandler(exportService, importService)

	controllers.SetupPatientRoutes(router, authService, patientHandler, messageHandler)
	controllers.SetupProfessionalRoutes(router, authService, professionalHandler, exportHandler)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
