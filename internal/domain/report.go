package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DaySummary is one calendar day of the report, keyed by the post-rollover
// settlement date. Days inside the period with no transactions are present
// with zero values.
type DaySummary struct {
	Date   time.Time       `json:"date"`
	Sales  decimal.Decimal `json:"sales"`
	Payout decimal.Decimal `json:"payout"`
}

// CardClassTotals is the per-class slice of the summary.
type CardClassTotals struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// ReportSummary aggregates a transaction set. The same summary is computed
// for the whole period and, recursively, for each week bucket.
type ReportSummary struct {
	TransactionCount   int                           `json:"transaction_count"`
	TotalSubtotal      decimal.Decimal               `json:"total_subtotal"`
	TotalTip           decimal.Decimal               `json:"total_tip"`
	TotalAmount        decimal.Decimal               `json:"total_amount"`
	ProviderCommission decimal.Decimal               `json:"provider_commission"`
	PlatformCommission decimal.Decimal               `json:"platform_commission"`
	ClientPayout       decimal.Decimal               `json:"client_payout"`
	ByCardClass        map[CardClass]CardClassTotals `json:"by_card_class"`
	Days               []DaySummary                  `json:"days"`
	Allocations        []RecipientAllocation         `json:"allocations"`
}

// WeekBucket is a Monday-anchored seven-day window with its own full summary.
type WeekBucket struct {
	WeekStart    time.Time     `json:"week_start"`
	Transactions []Transaction `json:"transactions"`
	Summary      ReportSummary `json:"summary"`
}

// Report is the immutable end product of one ingested settlement export.
// Identity assignment and persistence happen outside the engine.
type Report struct {
	PeriodStart  time.Time     `json:"period_start"`
	PeriodEnd    time.Time     `json:"period_end"`
	Transactions []Transaction `json:"transactions"`
	Summary      ReportSummary `json:"summary"`
	Weeks        []WeekBucket  `json:"weeks"`
	Rates        RateConfig    `json:"rates"`
	Format       ReportFormat  `json:"format"`
}
