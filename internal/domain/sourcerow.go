package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceRow is a normalized settlement-export row: cells resolved by column,
// amounts coerced to decimals, card class classified. It carries the values
// the processor reported verbatim; derived commission fields are computed
// later when the row becomes a Transaction.
type SourceRow struct {
	ExternalID string
	Timestamp  time.Time
	Device     string
	MaskedCard string
	CardClass  CardClass
	Subtotal   decimal.Decimal
	Tip        decimal.Decimal
	Total      decimal.Decimal
	Refunded   decimal.Decimal
	Commission decimal.Decimal
}
