package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/todofast/api/internal/auth"
	"github.com/todofast/api/internal/config"
	"github.com/todofast/api/internal/database"
	"github.com/todofast/api/internal/handlers"
	"github.com/todofast/api/internal/middleware"
	"github.com/todofast/api/internal/repository"
	"github.com/todofast/api/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Token manager with the process-wide secret and algorithm
	tokenManager, err := auth.NewTokenManager(
		cfg.SecretKey,
		cfg.Algorithm,
		time.Duration(cfg.AccessTokenExpireMinutes)*time.Minute,
		time.Now,
	)
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	todoRepo := repository.NewTodoRepository(database.GetDB())

	authService := services.NewAuthService(userRepo, tokenManager)
	userService := services.NewUserService(userRepo)
	todoService := services.NewTodoService(todoRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	todoHandler := handlers.NewTodoHandler(todoService)

	// Initialize Gin router
	r := gin.Default()

	r.GET("/", handlers.Root)

	// Auth routes
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/token", authHandler.Login)
		authRoutes.POST("/refresh_token", middleware.RequireAuth(authService), authHandler.Refresh)
	}

	// User routes
	users := r.Group("/users")
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
		users.PUT("/:id", middleware.RequireAuth(authService), middleware.RequireSelf(), userHandler.Update)
		users.DELETE("/:id", middleware.RequireAuth(authService), middleware.RequireSelf(), userHandler.Delete)
	}

	// Todo routes (protected)
	todos := r.Group("/todos")
	todos.Use(middleware.RequireAuth(authService))
	{
		todos.POST("", todoHandler.Create)
		todos.GET("", todoHandler.List)
		todos.PATCH("/:id", todoHandler.Update)
		todos.DELETE("/:id", todoHandler.Delete)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
