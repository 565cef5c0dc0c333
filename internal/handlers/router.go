package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"foodbridge/internal/config"
	"foodbridge/internal/directory"
	"foodbridge/internal/matching"
	"foodbridge/internal/metrics"
	custommiddleware "foodbridge/internal/middleware"
	"foodbridge/internal/safety"
)

// NewRouter builds the HTTP API over engines constructed from dir.
// mt may be nil to disable metrics.
func NewRouter(cfg *config.Config, dir *directory.Directory, mt *metrics.Metrics) http.Handler {
	safetyEngine := safety.NewEngine(dir.HighTemperature)
	matchingEngine := matching.NewEngine(dir)

	donationHandler := NewDonationHandler(safetyEngine, matchingEngine, mt, cfg)
	referenceHandler := NewReferenceHandler(dir)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Health)
	if mt != nil {
		r.Handle("/metrics", mt.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(custommiddleware.CORS(cfg.AllowedOrigins))
		if cfg.RequestTimeout > 0 {
			r.Use(custommiddleware.Timeout(cfg.RequestTimeout))
		}
		r.Use(custommiddleware.RequireJSON)

		r.Post("/safety/evaluate", donationHandler.Evaluate)
		r.Get("/match", donationHandler.Match)
		r.Post("/donations/submit", donationHandler.Submit)
		r.Post("/donations/triage", donationHandler.Triage)

		r.Get("/reference/labels", referenceHandler.Labels)
		r.Get("/reference/cities", referenceHandler.Cities)
	})

	return r
}
