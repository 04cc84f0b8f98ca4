package ingestion

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pagovia/settlements/internal/domain"
)

// Normalize turns parsed rows into canonical source rows. rows[0] is assumed
// to be the header and is skipped. Rows with fewer than 5 cells or an empty
// transaction-id cell are dropped silently: exports end with footer and
// totals lines that are junk, not errors.
func Normalize(rows [][]string, cols Columns) []domain.SourceRow {
	var out []domain.SourceRow

	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 5 {
			continue
		}
		id := strings.TrimSpace(cell(row, cols.ID))
		if id == "" {
			continue
		}

		out = append(out, domain.SourceRow{
			ExternalID: id,
			Timestamp:  parseTimestamp(cell(row, cols.Date), cell(row, cols.Time)),
			Device:     strings.TrimSpace(cell(row, cols.Device)),
			MaskedCard: strings.TrimSpace(cell(row, cols.Card)),
			CardClass:  classifyCard(cell(row, cols.CardType)),
			Subtotal:   parseAmount(cell(row, cols.Subtotal)),
			Tip:        parseAmount(cell(row, cols.Tip)),
			Total:      parseAmount(cell(row, cols.Total)),
			Refunded:   parseAmount(cell(row, cols.Refunded)),
			Commission: parseAmount(cell(row, cols.Commission)),
		})
	}

	return out
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseAmount coerces a money cell to a decimal. Currency symbols, grouping
// commas and stray quotes are stripped first; anything still unparsable
// becomes zero. One corrupt cell must never abort a multi-hundred-row file.
func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	for _, junk := range []string{"$", ",", "\"", " "} {
		s = strings.ReplaceAll(s, junk, "")
	}
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// classifyCard maps the export's card-type label to a card class. Debit is
// the fallback for anything unrecognized, not a detected positive match.
func classifyCard(label string) domain.CardClass {
	label = strings.ToLower(label)
	switch {
	case strings.Contains(label, "internacional"):
		return domain.CardInternational
	case strings.Contains(label, "credito"), strings.Contains(label, "crédito"):
		return domain.CardCredit
	default:
		return domain.CardDebit
	}
}

var dateLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp combines the export's date and time cells. Exports carry
// either a combined datetime in the date column or split date/time columns.
// A date that fails every layout yields the zero time; the row still counts
// in totals but not in period bounds.
func parseTimestamp(date, clock string) time.Time {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" {
		return time.Time{}
	}

	candidate := date
	if clock != "" && !strings.Contains(date, " ") {
		candidate = date + " " + clock
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t
		}
	}
	// Retry the bare date in case the time cell was the corrupt half.
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t
		}
	}
	return time.Time{}
}
