package domain

import "github.com/shopspring/decimal"

// ReportFormat selects how the client payout is computed.
//
// FormatA charges the client both the processor's fee and the platform fee.
// FormatB deducts only the platform fee; the processor's fee is absorbed
// into the platform's own margin.
type ReportFormat string

const (
	FormatA ReportFormat = "formatA"
	FormatB ReportFormat = "formatB"
)

// RateConfig holds the platform commission rates applied per card class,
// expressed as percentages (3 means 3%). International cards typically carry
// a higher rate than domestic debit/credit. Never mutated by the engine.
type RateConfig struct {
	DebitCreditRate   decimal.Decimal `json:"debit_credit_rate"`
	InternationalRate decimal.Decimal `json:"international_rate"`
	Format            ReportFormat    `json:"format"`
}

// RateFor returns the platform rate for a card class.
func (c RateConfig) RateFor(class CardClass) decimal.Decimal {
	if class == CardInternational {
		return c.InternationalRate
	}
	return c.DebitCreditRate
}

// ProcessingConfig is everything the caller resolves before invoking the
// engine. ClientID and ServiceID are opaque pass-through identifiers; the
// engine never interprets them.
type ProcessingConfig struct {
	ClientID     string              `json:"client_id"`
	ServiceID    string              `json:"service_id"`
	Rates        RateConfig          `json:"rates"`
	Distribution RevenueDistribution `json:"distribution"`
	Promoters    []PromoterShare     `json:"promoters,omitempty"`
}
