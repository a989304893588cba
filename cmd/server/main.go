package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"tenthouse_backend/internal/database"
	"tenthouse_backend/internal/notify"
	"tenthouse_backend/internal/router"
	"tenthouse_backend/internal/storage"
	"tenthouse_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present (ignore error when it doesn't exist)
	_ = godotenv.Load()

	// Initialize Logger
	utils.InitLogger()

	// JWT signing key for admin sessions
	if err := utils.InitJWT(os.Getenv("JWT_SECRET")); err != nil {
		log.Fatalf("JWT_SECRET must be set: %v", err)
	}

	// Load database configuration from environment variables
	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "tenthouse_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "tenthouse_password")
	dbName := utils.Getenv("DB_NAME", "tenthouse_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
	dbSchemaPath := utils.Getenv("DB_SCHEMA_PATH", "")

	// Initialize Database
	database.InitDB(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode, dbSchemaPath)
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	// Object storage for portfolio images
	store, err := storage.NewOSSStorage(
		utils.Getenv("OSS_ENDPOINT", "https://oss-ap-south-1.aliyuncs.com"),
		os.Getenv("OSS_ACCESS_KEY_ID"),
		os.Getenv("OSS_ACCESS_KEY_SECRET"),
		utils.Getenv("OSS_BUCKET", "portfolio"),
	)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// WhatsApp handoff target for captured leads
	whatsapp := notify.NewWhatsAppBuilder(
		utils.Getenv("WHATSAPP_NUMBER", "919926543692"),
		utils.Getenv("BUSINESS_NAME", "Azad Tent House"),
	)

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"} // Default origins
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, database.GetDB(), store, whatsapp)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
