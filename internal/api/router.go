package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pagovia/settlements/internal/ingestion"
	"github.com/pagovia/settlements/internal/repository"
)

// NewRouter creates the Chi router with all API routes mounted.
func NewRouter(
	reportRepo *repository.ReportRepo,
	ingestionSvc *ingestion.Service,
) http.Handler {
	h := &Handlers{
		reportRepo:   reportRepo,
		ingestionSvc: ingestionSvc,
	}

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// Ingestion.
		r.Post("/reports/ingest", h.IngestReport)
		r.Post("/reports/detect", h.DetectFormat)

		// Reports.
		r.Get("/reports", h.ListReports)
		r.Get("/reports/{id}", h.GetReport)
		r.Get("/reports/{id}/transactions", h.ListReportTransactions)
		r.Get("/reports/{id}/csv", h.DownloadReportCSV)

		// Rate profiles.
		r.Get("/profiles", h.ListProfiles)
	})

	return r
}
