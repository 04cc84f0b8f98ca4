// Package commission turns normalized settlement rows into transactions with
// the full commission breakdown applied.
package commission

import (
	"github.com/shopspring/decimal"

	"github.com/pagovia/settlements/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Compute builds the canonical Transaction for one source row under the
// given rate configuration. Pure: same inputs always produce the same
// transaction, so rows may be computed concurrently.
//
// The provider's commission is taken verbatim from the export — the
// processor already charged it and recomputing it would only disagree with
// the money that actually moved. Its rate is derived from the charged
// amount instead.
func Compute(row domain.SourceRow, rates domain.RateConfig) domain.Transaction {
	providerRate := decimal.Zero
	if !row.Total.IsZero() {
		providerRate = row.Commission.Div(row.Total).Mul(hundred).Round(2)
	}

	platformRate := rates.RateFor(row.CardClass)
	platformCommission := row.Total.Mul(platformRate).Div(hundred).Round(2)

	var payout decimal.Decimal
	switch rates.Format {
	case domain.FormatA:
		// Client is charged the processor fee and the platform fee.
		payout = row.Total.Sub(row.Commission).Sub(platformCommission).Round(2)
	default:
		// FormatB: the platform fee is the client's only deduction; the
		// processor fee is absorbed into the platform's margin.
		payout = row.Total.Sub(platformCommission).Round(2)
	}

	return domain.Transaction{
		ExternalID:         row.ExternalID,
		Timestamp:          row.Timestamp,
		Device:             row.Device,
		MaskedCard:         row.MaskedCard,
		CardClass:          row.CardClass,
		Subtotal:           row.Subtotal,
		Tip:                row.Tip,
		Total:              row.Total,
		Refunded:           row.Refunded,
		ProviderCommission: row.Commission,
		ProviderRate:       providerRate,
		PlatformCommission: platformCommission,
		PlatformRate:       platformRate,
		ClientPayout:       payout,
	}
}

// ComputeAll maps Compute over a row set, preserving order.
func ComputeAll(rows []domain.SourceRow, rates domain.RateConfig) []domain.Transaction {
	txns := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, Compute(row, rates))
	}
	return txns
}
