package router

import (
	"tenthouse_backend/internal/handlers"
	"tenthouse_backend/internal/middleware"
	"tenthouse_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes registers the unauthenticated website surface.
func SetupPublicRoutes(apiGroup *gin.RouterGroup, enquiryHandler *handlers.EnquiryHandler, reviewHandler *handlers.ReviewHandler, portfolioHandler *handlers.PortfolioHandler) {
	apiGroup.POST("/enquiries", enquiryHandler.SubmitEnquiry)
	apiGroup.GET("/reviews", reviewHandler.GetApprovedReviews)
	apiGroup.POST("/reviews", reviewHandler.SubmitReview)
	apiGroup.GET("/portfolio", portfolioHandler.GetPublicPortfolio)
}

// SetupAdminAuthRoutes registers login (public) and the profile endpoint
// (token + allow-list guarded).
func SetupAdminAuthRoutes(adminGroup *gin.RouterGroup, authHandler *handlers.AuthHandler, authService services.AuthService) {
	authRoutes := adminGroup.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.LoginAdmin)

		guardedRoutes := authRoutes.Group("")
		guardedRoutes.Use(middleware.AuthMiddleware(), middleware.AdminAuthMiddleware(authService))
		{
			guardedRoutes.GET("/me", authHandler.GetCurrentAdmin)
		}
	}
}

// SetupAdminEnquiryRoutes registers the lead-management panel routes.
func SetupAdminEnquiryRoutes(guardedGroup *gin.RouterGroup, enquiryHandler *handlers.EnquiryHandler) {
	enquiryRoutes := guardedGroup.Group("/enquiries")
	{
		enquiryRoutes.GET("", enquiryHandler.GetEnquiries)
		enquiryRoutes.DELETE("/:id", enquiryHandler.DeleteEnquiry)
	}
}

// SetupAdminReviewRoutes registers the moderation panel routes.
func SetupAdminReviewRoutes(guardedGroup *gin.RouterGroup, reviewHandler *handlers.ReviewHandler) {
	reviewRoutes := guardedGroup.Group("/reviews")
	{
		reviewRoutes.GET("", reviewHandler.GetAllReviews)
		reviewRoutes.PATCH("/:id/approve", reviewHandler.ApproveReview)
		reviewRoutes.DELETE("/:id", reviewHandler.DeleteReview)
	}
}

// SetupAdminPortfolioRoutes registers the showcase management routes.
func SetupAdminPortfolioRoutes(guardedGroup *gin.RouterGroup, portfolioHandler *handlers.PortfolioHandler) {
	portfolioRoutes := guardedGroup.Group("/portfolio")
	{
		portfolioRoutes.GET("", portfolioHandler.GetAllPortfolio)
		portfolioRoutes.POST("/upload", portfolioHandler.UploadImage)
		portfolioRoutes.POST("", portfolioHandler.CreateItem)
		portfolioRoutes.PATCH("/:id", portfolioHandler.UpdateItem)
		portfolioRoutes.DELETE("/:id", portfolioHandler.DeleteItem)
	}
}
