package router

import (
	"database/sql"

	"tenthouse_backend/internal/handlers"
	"tenthouse_backend/internal/middleware"
	"tenthouse_backend/internal/notify"
	"tenthouse_backend/internal/repositories"
	"tenthouse_backend/internal/services"
	"tenthouse_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, store storage.ObjectStorage, whatsapp *notify.WhatsAppBuilder) {
	// Initialize Repositories
	authRepo := repositories.NewAuthRepository(db)
	enquiryRepo := repositories.NewEnquiryRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	portfolioRepo := repositories.NewPortfolioRepository(db)

	// Initialize Services
	authService := services.NewAuthService(authRepo, db)
	enquiryService := services.NewEnquiryService(enquiryRepo, db, whatsapp)
	reviewService := services.NewReviewService(reviewRepo, db)
	portfolioService := services.NewPortfolioService(portfolioRepo, db, store)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)

	apiV1 := engine.Group("/api/v1")

	// Public surface: lead capture, approved testimonials, active gallery.
	SetupPublicRoutes(apiV1, enquiryHandler, reviewHandler, portfolioHandler)

	// Admin surface: token auth plus the allow-list guard on every request.
	admin := apiV1.Group("/admin")
	SetupAdminAuthRoutes(admin, authHandler, authService)

	guarded := admin.Group("")
	guarded.Use(middleware.AuthMiddleware(), middleware.AdminAuthMiddleware(authService))
	{
		SetupAdminEnquiryRoutes(guarded, enquiryHandler)
		SetupAdminReviewRoutes(guarded, reviewHandler)
		SetupAdminPortfolioRoutes(guarded, portfolioHandler)
	}
}
