package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/qiraat-compare-api/internal/config"
	"github.com/qiraat-compare-api/internal/handlers"
	"github.com/qiraat-compare-api/internal/middleware"
	"github.com/qiraat-compare-api/internal/repository"
	"github.com/qiraat-compare-api/internal/repository/postgres"
	"github.com/qiraat-compare-api/internal/services"
	"github.com/qiraat-compare-api/pkg/schema/db"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	// Get configuration
	cfg := config.GetConfig()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Gzip())
	e.Use(middleware.CORSMiddleware())

	// Initialize PostgreSQL
	ctx := context.Background()
	if err := db.InitPostgres(ctx); err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	log.Println("Database initialization complete")

	// Create repositories
	pgDB := db.GetPostgres()
	surahRepo := postgres.NewSurahRepository(pgDB)
	qiraatRepo := postgres.NewQiraatRepository(pgDB)
	searchRepo := postgres.NewSearchRepository(pgDB)

	// Create comparison repository based on configuration
	var comparisonRepo repository.ComparisonRepository
	switch cfg.ComparisonBackend {
	case "live":
		log.Println("Using live-join comparison backend")
		comparisonRepo = postgres.NewLiveComparisonRepository(pgDB)
	default:
		log.Println("Using materialized-view comparison backend")
		comparisonRepo = postgres.NewMatrixComparisonRepository(pgDB)
	}

	// Create services
	comparisonSvc := services.NewComparisonService(comparisonRepo, cfg.CacheTTL)
	surahSvc := services.NewSurahService(surahRepo, cfg.DefaultQiraat)
	qiraatSvc := services.NewQiraatService(qiraatRepo)
	navigationSvc := services.NewNavigationService(searchRepo, cfg.DefaultQiraat)
	searchSvc := services.NewSearchService(searchRepo)

	// Create API group with prefix
	api := e.Group(cfg.APIPrefix)

	// Register handlers
	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(api)

	handlers.NewComparisonHandler(comparisonSvc).RegisterRoutes(api)
	handlers.NewSurahHandler(surahSvc).RegisterRoutes(api)
	handlers.NewQiraatHandler(qiraatSvc).RegisterRoutes(api)
	handlers.NewNavigationHandler(navigationSvc).RegisterRoutes(api)
	handlers.NewSearchHandler(searchSvc).RegisterRoutes(api)

	// Root info
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Starting %s v%s on %s", cfg.APITitle, cfg.APIVersion, addr)
		if err := e.Start(addr); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := db.ClosePostgres(); err != nil {
		log.Printf("Error closing PostgreSQL: %v", err)
	}

	log.Println("Server stopped")
}
