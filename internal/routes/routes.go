package routes

import (
	"time"

	"github.com/corems/corems-backend/internal/config"
	"github.com/corems/corems-backend/internal/handlers"
	"github.com/corems/corems-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	complaintHandler *handlers.ComplaintHandler,
	categoryHandler *handlers.CategoryHandler,
	userHandler *handlers.UserHandler,
	uploadHandler *handlers.UploadHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Stored photos are public once the URL is known.
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Complaints — visibility is computed per caller inside the services
	jwt := middleware.JWTProtected(cfg)
	api.Get("/complaints", jwt, complaintHandler.List)
	api.Post("/complaints", jwt, complaintHandler.Create)
	api.Get("/complaints/search", jwt, complaintHandler.Search)
	api.Get("/complaints/:id", jwt, complaintHandler.Get)
	api.Get("/complaints/:id/status", jwt, complaintHandler.History)
	api.Put("/complaints/:id/status", jwt, complaintHandler.UpdateStatus)

	api.Get("/categories", jwt, categoryHandler.List)
	api.Post("/upload", jwt, uploadHandler.Upload)

	// Superadmin administration surface
	admin := api.Group("", jwt, middleware.SuperadminRequired(db))
	admin.Post("/categories", categoryHandler.Create)
	admin.Delete("/categories/:id", categoryHandler.Delete)
	admin.Get("/users", userHandler.List)
	admin.Put("/users/:id/role", userHandler.ChangeRole)
}
