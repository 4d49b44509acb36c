package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alidemir/catalog/internal/handlers"
	"github.com/alidemir/catalog/internal/middleware"
	"github.com/alidemir/catalog/internal/repositories"
	"github.com/alidemir/catalog/internal/resolver"
	"github.com/alidemir/catalog/internal/services"
	"github.com/alidemir/catalog/pkg/config"
	"github.com/alidemir/catalog/pkg/database"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig

	gin.SetMode(cfg.Server.Mode)

	// Initialize stores
	personStore, authorStore, bookStore, userStore, err := buildStores(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer database.Close()

	// Initialize services
	authService := services.NewAuthService(userStore, cfg.Auth.Secret)
	personService := services.NewPersonService(
		personStore, userStore,
		cfg.Auth.RequireWrites,
		cfg.Auth.Deployment == config.DeploymentPhonebook,
	)
	authorService := services.NewAuthorService(authorStore, bookStore)
	bookService := services.NewBookService(bookStore, authorStore, cfg.Auth.RequireWrites)
	userService := services.NewUserService(userStore, personStore, authService, cfg.Auth.Deployment)
	exportService := services.NewExportService(personStore, authorStore, bookStore)

	if cfg.Auth.Seed {
		if err := services.SeedCatalog(authorStore, bookStore); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	// Initialize router
	router := gin.Default()
	router.Use(middleware.BearerAuth(authService))

	// Setup routes
	queryHandler := handlers.NewQueryHandler(resolver.New(personService, authorService, bookService, userService, authService, cfg.Auth.Deployment))
	exportHandler := handlers.NewExportHandler(exportService)
	healthHandler := handlers.NewHealthHandler()

	router.POST("/query", queryHandler.Query)
	router.GET("/export", exportHandler.Export)
	router.GET("/health", healthHandler.HealthCheck)

	// Setup server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}

func buildStores(cfg *config.Config) (repositories.PersonStore, repositories.AuthorStore, repositories.BookStore, repositories.UserStore, error) {
	if cfg.Database.Driver == "memory" {
		return repositories.NewMemoryPersonStore(),
			repositories.NewMemoryAuthorStore(),
			repositories.NewMemoryBookStore(),
			repositories.NewMemoryUserStore(),
			nil
	}

	if err := database.Init(cfg.Database.Path); err != nil {
		return nil, nil, nil, nil, err
	}
	return repositories.NewPersonRepository(database.DB),
		repositories.NewAuthorRepository(database.DB),
		repositories.NewBookRepository(database.DB),
		repositories.NewUserRepository(database.DB),
		nil
}
