package report

import (
	"github.com/pagovia/settlements/internal/domain"
)

// Assemble derives the settlement period from the transaction set and builds
// the final report value. The period bounds come from the raw timestamps of
// the rows whose dates parsed; rows without a usable date still count in
// every total but cannot move the period edges.
//
// Returns domain.ErrEmptyInput when no transactions survived normalization —
// the file was well-formed but had nothing usable in it, which the caller
// must distinguish from an unrecognized format.
func Assemble(txns []domain.Transaction, cfg domain.ProcessingConfig) (*domain.Report, error) {
	if len(txns) == 0 {
		return nil, domain.ErrEmptyInput
	}

	r := &domain.Report{
		Transactions: txns,
		Summary:      Summarize(txns, cfg.Distribution, cfg.Promoters),
		Weeks:        AggregateByWeek(txns, cfg.Distribution, cfg.Promoters),
		Rates:        cfg.Rates,
		Format:       cfg.Rates.Format,
	}

	for _, t := range txns {
		if !t.HasDate() {
			continue
		}
		if r.PeriodStart.IsZero() || t.Timestamp.Before(r.PeriodStart) {
			r.PeriodStart = t.Timestamp
		}
		if r.PeriodEnd.IsZero() || t.Timestamp.After(r.PeriodEnd) {
			r.PeriodEnd = t.Timestamp
		}
	}

	return r, nil
}
