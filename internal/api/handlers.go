package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pagovia/settlements/internal/config"
	"github.com/pagovia/settlements/internal/domain"
	"github.com/pagovia/settlements/internal/ingestion"
	"github.com/pagovia/settlements/internal/report"
	"github.com/pagovia/settlements/internal/repository"
)

// Handlers groups all HTTP handler methods and their dependencies.
type Handlers struct {
	reportRepo   *repository.ReportRepo
	ingestionSvc *ingestion.Service
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[api] encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}

// writeIngestError maps the two named ingestion failures to actionable
// messages; everything else is a generic processing failure.
func writeIngestError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrFormatNotRecognized):
		writeError(w, http.StatusUnprocessableEntity, "file not recognized as a settlement export")
	case errors.Is(err, domain.ErrEmptyInput):
		writeError(w, http.StatusUnprocessableEntity, "file had no transactions")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// --- IngestReport ---

// IngestReport accepts a multipart upload: the "file" field carries the
// settlement export, the "config" field a JSON ProcessingConfig. An optional
// "profile" field names a rate profile that overrides cfg.Rates.
func (h *Handlers) IngestReport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	var cfg domain.ProcessingConfig
	if raw := r.FormValue("config"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			writeError(w, http.StatusBadRequest, "invalid config: "+err.Error())
			return
		}
	}
	if profile := r.FormValue("profile"); profile != "" {
		rates, err := config.ResolveProfile(profile)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		cfg.Rates = rates
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "read file: "+err.Error())
		return
	}

	result, err := h.ingestionSvc.IngestReport(data, cfg)
	if err != nil {
		writeIngestError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// --- DetectFormat ---

// DetectFormat checks the header fingerprint of an upload without running
// the pipeline, so callers can reject wrong files before configuring rates.
func (h *Handlers) DetectFormat(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 32<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{
		"recognized": ingestion.Detect(string(data)),
	})
}

// --- ListReports ---

func (h *Handlers) ListReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := parseIntDefault(q.Get("page"), 1)
	limit := parseIntDefault(q.Get("limit"), 50)

	reports, total, err := h.reportRepo.List(q.Get("client_id"), page, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"reports": reports,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// --- GetReport ---

func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	stored, rpt, err := h.reportRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "report not found: "+id)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"meta":   stored,
		"report": rpt,
	})
}

// --- ListReportTransactions ---

func (h *Handlers) ListReportTransactions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	txns, err := h.reportRepo.ListTransactions(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(txns) == 0 {
		writeError(w, http.StatusNotFound, "report not found: "+id)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"report_id":    id,
		"transactions": txns,
	})
}

// --- DownloadReportCSV ---

func (h *Handlers) DownloadReportCSV(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	_, rpt, err := h.reportRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "report not found: "+id)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="report-`+id+`.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, report.RenderCSV(rpt)); err != nil {
		log.Printf("[api] write csv: %v", err)
	}
}

// --- ListProfiles ---

func (h *Handlers) ListProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"profiles": config.ProfileNames()})
}
