package main

import (
	"time"

	"rvclassifieds/internal/config"
	"rvclassifieds/internal/handlers"
	"rvclassifieds/internal/middleware"
	"rvclassifieds/internal/notifications"
	"rvclassifieds/internal/repositories"
	"rvclassifieds/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxBodySize bounds request bodies; listings carry base64 images.
const maxBodySize = 16 << 20

// NewApp builds the Fiber application on top of db and notifier.
func NewApp(cfg *config.Config, db *gorm.DB, notifier notifications.Notifier, logger *zap.Logger) *fiber.App {
	// --- Repositories ---
	stores := repositories.NewGORMStores(db)
	txManager := repositories.NewGORMTxManager(db)

	// --- Services ---
	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	authService := services.NewAuthService(stores.Users, tokenService, logger)
	listingService := services.NewListingService(stores.Listings, stores.Users)
	privacyService := services.NewPrivacyService(stores, txManager, logger)
	contactService := services.NewContactService(stores.Listings, notifier, cfg.Mail.From, logger)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	listingHandler := handlers.NewListingHandler(listingService)
	contactHandler := handlers.NewContactHandler(contactService)
	privacyHandler := handlers.NewPrivacyHandler(privacyService)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    maxBodySize,
	})

	// --- Middleware ---
	app.Use(middleware.RequestLogger(logger))
	app.Use(recover.New())
	app.Use(middleware.CORS(cfg.Server.CORSOrigin))

	authRequired := middleware.AuthRequired(authService)

	// --- API Routes ---
	api := app.Group("/api")
	authHandler.RegisterRoutes(api, middleware.RateLimitAuth(cfg.Server.AuthRateLimit), authRequired)
	listingHandler.RegisterRoutes(api, authRequired)
	contactHandler.RegisterRoutes(api)
	privacyHandler.RegisterRoutes(api, authRequired)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return app
}
