// Package report aggregates computed transactions into the final settlement
// report: whole-period summary, gap-free daily series, Monday-anchored week
// buckets and the rendered CSV export.
package report

import (
	"github.com/pagovia/settlements/internal/distribution"
	"github.com/pagovia/settlements/internal/domain"
)

// Summarize computes the full summary for a transaction set. The same
// function serves the whole period and each week bucket, so the per-bucket
// numbers always reconcile with the period totals by construction.
func Summarize(txns []domain.Transaction, dist domain.RevenueDistribution, promoters []domain.PromoterShare) domain.ReportSummary {
	s := domain.ReportSummary{
		TransactionCount: len(txns),
		ByCardClass:      make(map[domain.CardClass]domain.CardClassTotals),
	}

	for _, t := range txns {
		s.TotalSubtotal = s.TotalSubtotal.Add(t.Subtotal)
		s.TotalTip = s.TotalTip.Add(t.Tip)
		s.TotalAmount = s.TotalAmount.Add(t.Total)
		s.ProviderCommission = s.ProviderCommission.Add(t.ProviderCommission)
		s.PlatformCommission = s.PlatformCommission.Add(t.PlatformCommission)
		s.ClientPayout = s.ClientPayout.Add(t.ClientPayout)

		cc := s.ByCardClass[t.CardClass]
		cc.Count++
		cc.Amount = cc.Amount.Add(t.Total)
		s.ByCardClass[t.CardClass] = cc
	}

	s.Days = AggregateByDay(txns)
	s.Allocations = distribution.Allocate(s.PlatformCommission, dist, promoters)

	return s
}
