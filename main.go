package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"beer-pong-backend/config"
	"beer-pong-backend/controllers"
	"beer-pong-backend/data_access"
	"beer-pong-backend/services"
)

func setupCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	// AllowAllOrigins cannot be combined with credentials, so allow
	// every origin through the origin func instead.
	corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "Cache-Control", "X-Requested-With"}
	return cors.New(corsConfig)
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.LoadConfig()

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Close(context.Background())

	// Initialize repositories
	matchRepo := data_access.NewMatchRepository(mongodb)

	// Initialize services
	matchService := services.NewMatchService(matchRepo)

	// Initialize controllers
	matchController := controllers.NewMatchController(matchService)
	diagnosticsController := controllers.NewDiagnosticsController(mongodb)

	// Setup Gin router
	r := gin.Default()
	r.Use(setupCORS())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Beer Pong API is running"})
	})
	r.GET("/test", diagnosticsController.TestDatabase)

	api := r.Group("/api")
	{
		api.POST("/matches", matchController.CreateMatch)
		api.GET("/matches", matchController.ListMatches)
		api.GET("/matches/:match_id", matchController.GetMatch)
		api.POST("/matches/:match_id/hit", matchController.RecordHit)
		api.POST("/matches/:match_id/reset", matchController.ResetMatch)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
