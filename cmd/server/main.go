package main

import (
	"fmt"
	"net/http"

	"videogamehub/backend/internal/auth"
	"videogamehub/backend/internal/catalog"
	"videogamehub/backend/internal/config"
	"videogamehub/backend/internal/database"
	"videogamehub/backend/internal/handler"
	"videogamehub/backend/internal/lists"
	"videogamehub/backend/internal/logger"
	"videogamehub/backend/internal/middleware"
	"videogamehub/backend/internal/reviews"
	"videogamehub/backend/internal/session"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "videogamehub/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           VideoGameHub API
// @version         1.0
// @description     Catalog browsing, personal game lists and reviews for the VideoGameHub client.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	appLogger := logger.New(config.AppConfig.LogLevel)

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL, appLogger)

	// Shared services
	sessions := session.NewRegistry()
	catalogClient := catalog.NewClient(config.AppConfig, appLogger)
	listStore := lists.NewStore(lists.NewGormDocumentStore(database.DB), appLogger)
	listStore.Bind(sessions)
	defer listStore.Close()
	reviewStore := reviews.NewStore(database.DB, catalogClient, appLogger)

	authHandler := handler.NewAuthHandler(sessions)
	userHandler := handler.NewUserHandler(reviewStore)
	gameHandler := handler.NewGameHandler(catalogClient, reviewStore)
	listHandler := handler.NewListHandler(listStore, catalogClient)

	router := gin.Default()
	router.Use(middleware.RequestID(appLogger))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)

			protected := authRoutes.Group("")
			protected.Use(auth.AuthMiddleware(sessions))
			{
				protected.POST("/logout", authHandler.Logout)
				protected.PUT("/password", authHandler.ChangePassword)
			}
		}

		// Game routes (public catalog; token honored when present)
		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(auth.OptionalAuthMiddleware(sessions))
		{
			gameRoutes.GET("", gameHandler.SearchGames)
			gameRoutes.GET("/top", gameHandler.TopRated)
			gameRoutes.GET("/trending", gameHandler.Trending)
			gameRoutes.GET("/:id", gameHandler.GetGameByID)
			gameRoutes.GET("/:id/reviews", gameHandler.GetGameReviews)
		}

		// Review submission (protected)
		reviewRoutes := apiV1.Group("/games")
		reviewRoutes.Use(auth.AuthMiddleware(sessions))
		{
			reviewRoutes.POST("/:id/reviews", gameHandler.CreateReview)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware(sessions))
		{
			userRoutes.GET("/me", userHandler.GetMe)
			userRoutes.PUT("/me", userHandler.UpdateMe)
			userRoutes.GET("/me/reviews", userHandler.GetMyReviews)
		}

		// List routes (protected)
		listRoutes := apiV1.Group("/lists")
		listRoutes.Use(auth.AuthMiddleware(sessions))
		{
			listRoutes.GET("", listHandler.GetLists)
			listRoutes.GET("/games", listHandler.GetListGames)
			listRoutes.POST("/refresh", listHandler.RefreshLists)
			listRoutes.POST("/:label/games/:gameID", listHandler.AddToList)
			listRoutes.DELETE("/:label/games/:gameID", listHandler.RemoveFromList)
		}
	}

	addr := fmt.Sprintf(":%s", config.AppConfig.ServerPort)
	appLogger.Info().Str("addr", addr).Msg("server starting")
	appLogger.Info().Msg("Swagger UI is available at http://localhost:" + config.AppConfig.ServerPort + "/swagger/index.html")
	if err := router.Run(addr); err != nil {
		appLogger.Fatal().Err(err).Msg("server failed")
	}
}
