package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/config"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/database"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/fieldcrypt"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/logger"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/repository"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/scheduler"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/service"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logg := logger.New(cfg.Log.Level)
	log.Logger = logg

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		logg.Fatal().Err(err).Msg("failed to migrate database")
	}

	logg.Info().Str("path", cfg.Database.Path).Str("version", version.Version).Msg("connected to database")

	cipher, err := fieldcrypt.New(cfg.Security.FieldEncryptionKey)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to initialise field encryption")
	}
	if !cipher.Enabled() {
		logg.Warn().Msg("FIELD_ENCRYPTION_KEY not set, personal data is stored in plaintext")
	}

	loc := cfg.Locale.Location

	// Create repositories
	aspiranteRepo := repository.NewAspiranteRepository(db, cipher)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	systemService := service.NewSystemService(db, map[string]bool{
		model.FeatureFieldEncryption: cipher.Enabled(),
		model.FeatureWeeklySnapshots: cfg.Scheduler.Enabled(),
	})
	aspiranteService := service.NewAspiranteService(db, aspiranteRepo, loc)
	dashboardService := service.NewDashboardService(aspiranteRepo, loc)
	snapshotService := service.NewSnapshotService(aspiranteRepo, snapshotRepo, loc, logg)
	exportService := service.NewExportService(aspiranteService, loc)

	// Background jobs
	sched := scheduler.New(loc, logg)
	if cfg.Scheduler.Enabled() {
		err := sched.Add("weekly-snapshot", cfg.Scheduler.SnapshotSchedule, func(ctx context.Context) error {
			_, err := snapshotService.RefreshCurrentWeek(ctx)
			return err
		})
		if err != nil {
			logg.Fatal().Err(err).Msg("failed to schedule snapshot job")
		}
		sched.Start()
		logg.Info().Str("schedule", cfg.Scheduler.SnapshotSchedule).Msg("snapshot job scheduled")
	}

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		Aspirante: aspiranteService,
		Dashboard: dashboardService,
		Snapshot:  snapshotService,
		Export:    exportService,
	}, cfg, logg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logg.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sched.Stop(ctx)

	if err := server.Shutdown(ctx); err != nil {
		logg.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	logg.Info().Msg("server exited")
}
