package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api/middleware"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/config"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/service"
)

// Services groups the services the HTTP layer depends on.
type Services struct {
	System    *service.SystemService
	Aspirante *service.AspiranteService
	Dashboard *service.DashboardService
	Snapshot  *service.SnapshotService
	Export    *service.ExportService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	loc := cfg.Locale.Location

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/aspirante", func(r chi.Router) {
			aspiranteHandler := handlers.NewAspiranteHandler(svc.Aspirante, loc)
			exportHandler := handlers.NewExportHandler(svc.Export, loc)

			r.Get("/", aspiranteHandler.Aspirantes)
			r.Post("/", aspiranteHandler.CreateAspirante)
			r.Post("/import", aspiranteHandler.ImportAspirantes)
			r.Get("/export", exportHandler.ExportCSV)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", aspiranteHandler.GetAspirante)
				r.Put("/", aspiranteHandler.UpdateAspirante)
				r.Delete("/", aspiranteHandler.DeleteAspirante)
				r.Get("/receipt", exportHandler.Receipt)
			})
		})

		r.Route("/summary", func(r chi.Router) {
			summaryHandler := handlers.NewSummaryHandler(svc.Dashboard, svc.Snapshot, loc)
			r.Get("/", summaryHandler.Overview)
			r.Get("/week", summaryHandler.Week)
			r.Get("/month", summaryHandler.Month)
			r.Get("/snapshots", summaryHandler.Snapshots)
		})
	})

	return r
}
