package ingestion

import (
	"crypto/sha256"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pagovia/settlements/internal/commission"
	"github.com/pagovia/settlements/internal/domain"
	"github.com/pagovia/settlements/internal/report"
	"github.com/pagovia/settlements/internal/repository"
)

// IngestResult is returned from a successful ingestion.
type IngestResult struct {
	ReportID         string    `json:"report_id"`
	TransactionCount int       `json:"transaction_count"`
	PeriodStart      time.Time `json:"period_start"`
	PeriodEnd        time.Time `json:"period_end"`
	AlreadyIngested  bool      `json:"already_ingested"`
}

// Service runs the settlement pipeline over uploaded exports and persists
// the resulting reports. The pipeline itself is pure; all I/O lives here.
type Service struct {
	reportRepo *repository.ReportRepo
}

// NewService creates a new ingestion service.
func NewService(reportRepo *repository.ReportRepo) *Service {
	return &Service{reportRepo: reportRepo}
}

// Process runs the full pipeline over a decoded export without touching
// storage: detect, parse, normalize, compute, assemble. It returns
// domain.ErrFormatNotRecognized or domain.ErrEmptyInput as distinct
// conditions so callers can tell the two apart.
func Process(data []byte, cfg domain.ProcessingConfig) (*domain.Report, error) {
	text := string(data)

	if !Detect(text) {
		return nil, domain.ErrFormatNotRecognized
	}

	rows := Parse(text)
	if len(rows) == 0 {
		return nil, domain.ErrEmptyInput
	}

	cols := ResolveColumns(rows[0], FuzzyResolver{})
	src := Normalize(rows, cols)
	txns := commission.ComputeAll(src, cfg.Rates)

	return report.Assemble(txns, cfg)
}

// IngestReport processes an uploaded settlement export and stores the
// generated report. Re-uploading a byte-identical file is a no-op detected
// via its SHA-256 hash.
func (s *Service) IngestReport(data []byte, cfg domain.ProcessingConfig) (*IngestResult, error) {
	hash := fmt.Sprintf("%x", sha256.Sum256(data))
	exists, err := s.reportRepo.ExistsByHash(hash)
	if err != nil {
		return nil, fmt.Errorf("check hash: %w", err)
	}
	if exists {
		return &IngestResult{AlreadyIngested: true}, nil
	}

	rpt, err := Process(data, cfg)
	if err != nil {
		return nil, err
	}

	stored := &repository.StoredReport{
		ID:                 uuid.NewString(),
		ClientID:           cfg.ClientID,
		ServiceID:          cfg.ServiceID,
		FileHash:           hash,
		Format:             rpt.Format,
		PeriodStart:        rpt.PeriodStart,
		PeriodEnd:          rpt.PeriodEnd,
		TransactionCount:   rpt.Summary.TransactionCount,
		TotalAmount:        rpt.Summary.TotalAmount,
		ProviderCommission: rpt.Summary.ProviderCommission,
		PlatformCommission: rpt.Summary.PlatformCommission,
		ClientPayout:       rpt.Summary.ClientPayout,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.reportRepo.Insert(stored, rpt); err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}

	log.Printf("[ingestion] Generated report %s for client %s: %d transactions, period %s - %s",
		stored.ID, cfg.ClientID, stored.TransactionCount,
		stored.PeriodStart.Format("2006-01-02"), stored.PeriodEnd.Format("2006-01-02"))

	return &IngestResult{
		ReportID:         stored.ID,
		TransactionCount: stored.TransactionCount,
		PeriodStart:      stored.PeriodStart,
		PeriodEnd:        stored.PeriodEnd,
	}, nil
}
