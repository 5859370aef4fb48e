package main

import (
	"net/http"
	"os"

	"pos_service/config"
	"pos_service/internal/cache"
	"pos_service/internal/delivery"
	"pos_service/internal/repository"
	"pos_service/internal/usecase"
	"pos_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting POS Service...")
	logger.Infof("Log level set to: %s", logLevel.String())

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("FATAL: Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connection established.")

	// --- Dependency Injection ---
	catalogCache := cache.NewCatalogCache()

	menuRepo := repository.NewPostgresMenuRepository(database, logger)
	saleRepo := repository.NewPostgresSaleRepository(database, logger)
	logger.Info("Repositories initialized.")

	menuUseCase := usecase.NewMenuUseCase(menuRepo, catalogCache, logger)
	saleUseCase := usecase.NewSaleUseCase(saleRepo, catalogCache, logger)
	reportUseCase := usecase.NewReportUseCase(saleRepo, logger)
	logger.Info("Use cases initialized.")

	menuHandler := delivery.NewMenuHandler(menuUseCase, logger)
	saleHandler := delivery.NewSaleHandler(saleUseCase, logger)
	reportHandler := delivery.NewReportHandler(reportUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.Default()
	router.RedirectTrailingSlash = false

	if cfg.PrometheusEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		logger.Info("/metrics endpoint registered")
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	menuHandler.RegisterRoutes(router)
	saleHandler.RegisterRoutes(router)
	reportHandler.RegisterRoutes(router)
	logger.Info("Routes registered.")

	// --- Start Server ---
	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start server on port %s: %v", cfg.Port, err)
		os.Exit(1)
	}
}
