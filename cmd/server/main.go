// backend-go/cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/api"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/cache"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/config"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/dataset"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/drive"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/repository"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/repository/postgres"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/service"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/sim"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/storage"
	"github.com/andresuchdata/inventory-sim/backend-go/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.Server.LogLevel)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// The dataset is loaded once here and shared read-only for the life of
	// the process.
	table, err := loadDataset(cfg)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	logger.Log.Info().
		Str("source", cfg.Dataset.Source).
		Int("rows", table.Len()).
		Msg("Dataset loaded")

	resultCache, err := cache.NewSimResultCache(cfg.Cache)
	if err != nil {
		log.Fatalf("Failed to initialize result cache: %v", err)
	}

	engine := sim.NewEngine(cfg.Sim.Workers)

	simService, err := service.NewSimService(table, engine, resultCache)
	if err != nil {
		log.Fatalf("Failed to initialize sim service: %v", err)
	}
	productService, err := service.NewProductService(table)
	if err != nil {
		log.Fatalf("Failed to initialize product service: %v", err)
	}

	router := api.NewRouter(&api.Services{
		SimService:     simService,
		ProductService: productService,
		SimDefaults: domain.SimParams{
			HorizonWeeks:      cfg.Sim.HorizonWeeks,
			LeadTimeWeeks:     cfg.Sim.LeadTimeWeeks,
			ReviewPeriodWeeks: cfg.Sim.ReviewPeriodWeeks,
			ServiceLevel:      cfg.Sim.ServiceLevel,
			SafetyFactor:      cfg.Sim.SafetyFactor,
			NumSimulations:    cfg.Sim.NumSimulations,
			Seed:              cfg.Sim.Seed,
		},
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}

// loadDataset resolves the configured source into an in-memory table.
func loadDataset(cfg *config.Config) (*dataset.Table, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch cfg.Dataset.Source {
	case "csv", "":
		return repository.NewCSVDatasetRepository(cfg.Dataset.CSVPath).LoadTable(ctx)

	case "postgres":
		db, err := postgres.NewDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return postgres.NewForecastRepository(db).LoadTable(ctx)

	case "s3":
		client, err := storage.NewMinioClient(cfg.Dataset.S3)
		if err != nil {
			return nil, err
		}
		destPath := filepath.Join(cfg.Dataset.DataDir, filepath.Base(cfg.Dataset.S3.Object))
		if err := client.DownloadObject(ctx, cfg.Dataset.S3.Object, destPath); err != nil {
			return nil, err
		}
		return repository.NewCSVDatasetRepository(destPath).LoadTable(ctx)

	case "drive":
		svc, err := drive.NewService(cfg.Dataset.DriveCredentialsJSON)
		if err != nil {
			return nil, err
		}
		localPath, err := svc.FetchLatest(cfg.Dataset.DriveFolder, cfg.Dataset.DataDir)
		if err != nil {
			return nil, err
		}
		return repository.NewCSVDatasetRepository(localPath).LoadTable(ctx)

	default:
		return nil, fmt.Errorf("unknown dataset source: %s", cfg.Dataset.Source)
	}
}
