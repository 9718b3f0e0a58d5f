package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/travelbuddy/backend/controllers"
	"github.com/travelbuddy/backend/database"
	"github.com/travelbuddy/backend/docs"
	"github.com/travelbuddy/backend/email"
	"github.com/travelbuddy/backend/middleware"
)

// @title           Travel Buddy API
// @version         1.0
// @description     API Server for Travel Buddy
// @host            localhost:8080
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize database
	database.Connect()
	database.Migrate()

	// Wire the email provider
	controllers.Mailer = email.NewSenderFromEnv()

	// Set up Swagger info
	docs.SwaggerInfo.Title = "Travel Buddy API"
	docs.SwaggerInfo.Description = "API Server for Travel Buddy"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + os.Getenv("PORT")
	if docs.SwaggerInfo.Host == "localhost:" {
		docs.SwaggerInfo.Host = "localhost:8080"
	}
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Set up router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authentication routes
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify", controllers.VerifyEmail)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Public trip routes
	router.GET("/api/trips", controllers.GetTrips)

	// Protected routes
	api := router.Group("/api")
	api.Use(middleware.JWTAuth())
	{
		// User routes
		api.GET("/users/profile", controllers.GetProfile)
		api.PUT("/users/profile", controllers.UpdateProfile)

		// Trip routes
		api.POST("/trips", controllers.CreateTrip)
		api.GET("/trips/user/me", controllers.GetMyTrips)
		api.DELETE("/trips/:id", controllers.DeleteTrip)

		// Join request routes
		api.POST("/requests/send", controllers.SendRequest)
		api.PATCH("/requests/:requestId/:status", controllers.DecideRequest)
		api.DELETE("/requests/:tripId", controllers.WithdrawRequest)
	}

	// Trip detail stays public (contact reveal is done by field selection)
	router.GET("/api/trips/:id", controllers.GetTrip)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server running on port %s", port)
	log.Printf("Swagger documentation available at http://localhost:%s/swagger/index.html", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
