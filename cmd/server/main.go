package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freshbites/planner/backend-go/internal/api"
	"github.com/freshbites/planner/backend-go/internal/api/handlers"
	"github.com/freshbites/planner/backend-go/internal/cache"
	"github.com/freshbites/planner/backend-go/internal/collab"
	"github.com/freshbites/planner/backend-go/internal/config"
	"github.com/freshbites/planner/backend-go/internal/forecast"
	"github.com/freshbites/planner/backend-go/internal/repository/postgres"
	"github.com/freshbites/planner/backend-go/internal/service"
	"github.com/freshbites/planner/backend-go/internal/storage"
	"github.com/freshbites/planner/backend-go/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	repo, err := postgres.NewPlanningRepository(db)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to prepare schema")
	}

	plannerCache, err := cache.NewPlannerCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Cache unavailable, continuing without it")
		plannerCache = cache.NewNoopPlannerCache()
	}

	archive, err := storage.NewObjectStorage(cfg.Archive)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Archive storage unavailable, continuing without it")
		archive = storage.NewNoopStorage()
	}

	collabStore := collab.NewStore()
	uploads := handlers.NewUploads(cfg.App.UploadDir, archive)

	services := &api.Services{
		Inventory:   service.NewInventoryService(repo, plannerCache),
		Demand:      service.NewDemandService(repo, plannerCache),
		Suppliers:   service.NewSupplierService(repo),
		Procurement: service.NewProcurementService(repo, plannerCache),
		Planning:    service.NewPlanningService(repo, cfg.App.BaseCost),
		Reset:       service.NewResetService(repo, plannerCache, collabStore, cfg.App.UploadDir),
		Forecast:    forecast.NewHoltProvider(),
		Collab:      collabStore,
		Uploads:     uploads,
	}

	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
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
