package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portfolioHTTP "dev-portfolio/internal/controller/http"
	"dev-portfolio/internal/repo/persistent"
	"dev-portfolio/internal/usecase"
	"dev-portfolio/pkg/config"
	"dev-portfolio/pkg/logger"
	"dev-portfolio/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "dev-portfolio/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB) {
	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)
	projectRepo := persistent.NewProjectRepository(db)

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, log)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, log)
	checkoutUseCase := usecase.NewCheckoutUseCase(cfg, log)

	// Initialize HTTP handlers
	postHandler := portfolioHTTP.NewPostHandler(postUseCase, log)
	projectHandler := portfolioHTTP.NewProjectHandler(projectUseCase, log)
	checkoutHandler := portfolioHTTP.NewCheckoutHandler(checkoutUseCase, log)

	// Setup router
	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	{
		api.POST("/create-checkout-session", checkoutHandler.CreateCheckoutSession)

		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/:id", postHandler.GetPost)
		api.POST("/posts", postHandler.CreatePost)
		api.PUT("/posts/:id", postHandler.UpdatePost)
		api.DELETE("/posts/:id", postHandler.DeletePost)
		api.POST("/posts/:id/comments", postHandler.CreateComment)

		api.GET("/projects", projectHandler.ListProjects)
		api.POST("/projects", projectHandler.CreateProject)
		api.DELETE("/projects/:id", projectHandler.DeleteProject)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Portfolio server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down portfolio server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Portfolio server exited")
}
