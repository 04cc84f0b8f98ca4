package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CardClass string

const (
	CardDebit         CardClass = "debit"
	CardCredit        CardClass = "credit"
	CardInternational CardClass = "international"
)

// Transaction is the canonical unit of settlement, built once from a parsed
// export row and immutable afterwards. Timestamp keeps the source-local wall
// clock; a zero Timestamp means the source date cell did not parse, which
// excludes the row from period bounds but not from totals.
type Transaction struct {
	ExternalID         string          `json:"external_id"`
	Timestamp          time.Time       `json:"timestamp"`
	Device             string          `json:"device"`
	MaskedCard         string          `json:"masked_card"`
	CardClass          CardClass       `json:"card_class"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Tip                decimal.Decimal `json:"tip"`
	Total              decimal.Decimal `json:"total"`
	Refunded           decimal.Decimal `json:"refunded"`
	ProviderCommission decimal.Decimal `json:"provider_commission"`
	ProviderRate       decimal.Decimal `json:"provider_rate"`
	PlatformCommission decimal.Decimal `json:"platform_commission"`
	PlatformRate       decimal.Decimal `json:"platform_rate"`
	ClientPayout       decimal.Decimal `json:"client_payout"`
}

// HasDate reports whether the source date cell parsed. Rows without a date
// are still counted in totals but cannot anchor the settlement period.
func (t *Transaction) HasDate() bool {
	return !t.Timestamp.IsZero()
}
