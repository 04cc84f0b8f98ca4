package commission_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pagovia/settlements/internal/commission"
	"github.com/pagovia/settlements/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rates(format domain.ReportFormat) domain.RateConfig {
	return domain.RateConfig{
		DebitCreditRate:   dec("3"),
		InternationalRate: dec("4.5"),
		Format:            format,
	}
}

func baseRow() domain.SourceRow {
	return domain.SourceRow{
		ExternalID: "TX-1",
		CardClass:  domain.CardDebit,
		Subtotal:   dec("1000"),
		Total:      dec("1000"),
		Commission: dec("25"),
	}
}

func TestCompute_FormatB(t *testing.T) {
	txn := commission.Compute(baseRow(), rates(domain.FormatB))

	if !txn.PlatformCommission.Equal(dec("30")) {
		t.Errorf("platform commission: got %s, want 30", txn.PlatformCommission)
	}
	if !txn.ProviderRate.Equal(dec("2.5")) {
		t.Errorf("provider rate: got %s, want 2.5", txn.ProviderRate)
	}
	// FormatB deducts only the platform fee: 1000 - 30.
	if !txn.ClientPayout.Equal(dec("970")) {
		t.Errorf("client payout: got %s, want 970", txn.ClientPayout)
	}
}

func TestCompute_FormatA(t *testing.T) {
	txn := commission.Compute(baseRow(), rates(domain.FormatA))

	// FormatA deducts both fees: 1000 - 25 - 30.
	if !txn.ClientPayout.Equal(dec("945")) {
		t.Errorf("client payout: got %s, want 945", txn.ClientPayout)
	}
}

func TestCompute_ProviderCommissionTakenVerbatim(t *testing.T) {
	row := baseRow()
	row.Commission = dec("99.99")

	txn := commission.Compute(row, rates(domain.FormatB))

	if !txn.ProviderCommission.Equal(dec("99.99")) {
		t.Errorf("provider commission must come from the source row, got %s", txn.ProviderCommission)
	}
	if !txn.ProviderRate.Equal(dec("10")) {
		t.Errorf("provider rate: got %s, want 10", txn.ProviderRate)
	}
}

func TestCompute_ZeroTotalGuardsRate(t *testing.T) {
	row := baseRow()
	row.Total = decimal.Zero
	row.Commission = dec("5")

	txn := commission.Compute(row, rates(domain.FormatB))

	if !txn.ProviderRate.IsZero() {
		t.Errorf("zero total must yield zero provider rate, got %s", txn.ProviderRate)
	}
	if !txn.PlatformCommission.IsZero() {
		t.Errorf("zero total must yield zero platform commission, got %s", txn.PlatformCommission)
	}
}

func TestCompute_InternationalRate(t *testing.T) {
	row := baseRow()
	row.CardClass = domain.CardInternational

	txn := commission.Compute(row, rates(domain.FormatB))

	if !txn.PlatformRate.Equal(dec("4.5")) {
		t.Errorf("platform rate: got %s, want 4.5", txn.PlatformRate)
	}
	if !txn.PlatformCommission.Equal(dec("45")) {
		t.Errorf("platform commission: got %s, want 45", txn.PlatformCommission)
	}
}

func TestCompute_Rounding(t *testing.T) {
	row := baseRow()
	row.Total = dec("333.33")

	txn := commission.Compute(row, rates(domain.FormatB))

	// 333.33 * 3% = 9.9999 -> 10.00
	if !txn.PlatformCommission.Equal(dec("10")) {
		t.Errorf("platform commission: got %s, want 10", txn.PlatformCommission)
	}
}

// FormatA always pays the client at most what FormatB would, with equality
// only when the provider charged nothing.
func TestCompute_FormatAPayoutNeverExceedsFormatB(t *testing.T) {
	rows := []domain.SourceRow{
		baseRow(),
		{ExternalID: "TX-2", CardClass: domain.CardCredit, Total: dec("57.80"), Commission: dec("1.45")},
		{ExternalID: "TX-3", CardClass: domain.CardInternational, Total: dec("240"), Commission: dec("0")},
	}

	for _, row := range rows {
		a := commission.Compute(row, rates(domain.FormatA))
		b := commission.Compute(row, rates(domain.FormatB))

		if a.ClientPayout.GreaterThan(b.ClientPayout) {
			t.Errorf("%s: formatA payout %s exceeds formatB payout %s",
				row.ExternalID, a.ClientPayout, b.ClientPayout)
		}
		if row.Commission.IsZero() && !a.ClientPayout.Equal(b.ClientPayout) {
			t.Errorf("%s: payouts must be equal when provider commission is zero", row.ExternalID)
		}
	}
}

func TestComputeAll_PreservesOrder(t *testing.T) {
	rows := []domain.SourceRow{
		{ExternalID: "TX-1", Total: dec("10")},
		{ExternalID: "TX-2", Total: dec("20")},
	}

	txns := commission.ComputeAll(rows, rates(domain.FormatB))

	if len(txns) != 2 || txns[0].ExternalID != "TX-1" || txns[1].ExternalID != "TX-2" {
		t.Errorf("order not preserved: %+v", txns)
	}
}
