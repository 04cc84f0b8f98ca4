package distribution_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pagovia/settlements/internal/distribution"
	"github.com/pagovia/settlements/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func twoRecipients(role60 domain.RecipientRole) domain.RevenueDistribution {
	return domain.RevenueDistribution{
		Recipients: []domain.Recipient{
			{ID: "r1", Name: "Ana", Role: role60, Percentage: dec("60")},
			{ID: "r2", Name: "Luis", Role: domain.RoleInternalStaff, Percentage: dec("40")},
		},
	}
}

func TestAllocate_EmptyRecipientsDefaultsToPlatform(t *testing.T) {
	allocs := distribution.Allocate(dec("30"), domain.RevenueDistribution{}, nil)

	if len(allocs) != 1 {
		t.Fatalf("expected 1 allocation, got %d", len(allocs))
	}
	a := allocs[0]
	if a.Role != domain.RolePlatform {
		t.Errorf("role: got %s, want %s", a.Role, domain.RolePlatform)
	}
	if !a.Percentage.Equal(dec("100")) || !a.Amount.Equal(dec("30")) {
		t.Errorf("expected 100%% / 30.00, got %s%% / %s", a.Percentage, a.Amount)
	}
}

func TestAllocate_SixtyForty(t *testing.T) {
	allocs := distribution.Allocate(dec("30"), twoRecipients(domain.RoleInternalStaff), nil)

	if len(allocs) != 2 {
		t.Fatalf("expected 2 allocations, got %d", len(allocs))
	}
	if !allocs[0].Amount.Equal(dec("18")) {
		t.Errorf("60%% share: got %s, want 18", allocs[0].Amount)
	}
	if !allocs[1].Amount.Equal(dec("12")) {
		t.Errorf("40%% share: got %s, want 12", allocs[1].Amount)
	}
}

func TestAllocate_PromoterLeavesNamedRecipientsAlone(t *testing.T) {
	promoters := []domain.PromoterShare{{ID: "p1", Name: "Promotor", Percentage: dec("10")}}

	allocs := distribution.Allocate(dec("30"), twoRecipients(domain.RoleInternalStaff), promoters)

	if len(allocs) != 3 {
		t.Fatalf("expected 3 allocations, got %d", len(allocs))
	}
	// Neither recipient carries the platform-itself role, so both keep
	// their full configured cut; the promoter's share is simply added.
	if !allocs[0].Percentage.Equal(dec("60")) || !allocs[0].Amount.Equal(dec("18")) {
		t.Errorf("60%% recipient must be untouched: %s%% / %s", allocs[0].Percentage, allocs[0].Amount)
	}
	if !allocs[1].Percentage.Equal(dec("40")) || !allocs[1].Amount.Equal(dec("12")) {
		t.Errorf("40%% recipient must be untouched: %s%% / %s", allocs[1].Percentage, allocs[1].Amount)
	}
	promoter := allocs[2]
	if promoter.Role != domain.RoleReferralAgent {
		t.Errorf("promoter role: got %s", promoter.Role)
	}
	if !promoter.Amount.Equal(dec("3")) {
		t.Errorf("promoter amount: got %s, want 3", promoter.Amount)
	}
}

func TestAllocate_PromoterReducesPlatformRecipient(t *testing.T) {
	promoters := []domain.PromoterShare{{ID: "p1", Name: "Promotor", Percentage: dec("10")}}

	allocs := distribution.Allocate(dec("30"), twoRecipients(domain.RolePlatform), promoters)

	// The 60% recipient is the platform itself here, so it funds the
	// promoter: 60% -> 50%, 18.00 -> 15.00.
	if !allocs[0].Percentage.Equal(dec("50")) {
		t.Errorf("platform percentage: got %s, want 50", allocs[0].Percentage)
	}
	if !allocs[0].Amount.Equal(dec("15")) {
		t.Errorf("platform amount: got %s, want 15", allocs[0].Amount)
	}
	if !allocs[2].Amount.Equal(dec("3")) {
		t.Errorf("promoter amount: got %s, want 3", allocs[2].Amount)
	}
}

func TestAllocate_PlatformShareFloorsAtZero(t *testing.T) {
	dist := domain.RevenueDistribution{
		Recipients: []domain.Recipient{
			{ID: "plat", Name: "Plataforma", Role: domain.RolePlatform, Percentage: dec("20")},
		},
	}
	promoters := []domain.PromoterShare{
		{ID: "p1", Name: "P1", Percentage: dec("15")},
		{ID: "p2", Name: "P2", Percentage: dec("15")},
	}

	allocs := distribution.Allocate(dec("100"), dist, promoters)

	if !allocs[0].Percentage.IsZero() || !allocs[0].Amount.IsZero() {
		t.Errorf("platform share must floor at zero, got %s%% / %s",
			allocs[0].Percentage, allocs[0].Amount)
	}
}

func TestAllocate_PercentagesNotValidated(t *testing.T) {
	// 80 + 50 = 130%. The engine allocates exactly what is configured.
	dist := domain.RevenueDistribution{
		Recipients: []domain.Recipient{
			{ID: "r1", Role: domain.RoleInternalStaff, Percentage: dec("80")},
			{ID: "r2", Role: domain.RoleInternalStaff, Percentage: dec("50")},
		},
	}

	allocs := distribution.Allocate(dec("100"), dist, nil)

	if len(allocs) != 2 {
		t.Fatalf("over-allocation must not error, got %d allocations", len(allocs))
	}
	if !allocs[0].Amount.Equal(dec("80")) || !allocs[1].Amount.Equal(dec("50")) {
		t.Errorf("got %s and %s, want 80 and 50", allocs[0].Amount, allocs[1].Amount)
	}
}

func TestAllocate_ConservationAtHundredPercent(t *testing.T) {
	dist := domain.RevenueDistribution{
		Recipients: []domain.Recipient{
			{ID: "r1", Role: domain.RoleInternalStaff, Percentage: dec("33.33")},
			{ID: "r2", Role: domain.RoleInternalStaff, Percentage: dec("33.33")},
			{ID: "r3", Role: domain.RolePlatform, Percentage: dec("33.34")},
		},
	}
	total := dec("487.12")

	allocs := distribution.Allocate(total, dist, nil)

	sum := decimal.Zero
	for _, a := range allocs {
		sum = sum.Add(a.Amount)
	}

	// Per-recipient rounding may drift by at most one cent each.
	tolerance := decimal.NewFromInt(int64(len(allocs))).Div(decimal.NewFromInt(100))
	if sum.Sub(total.Round(2)).Abs().GreaterThan(tolerance) {
		t.Errorf("allocated %s of %s, beyond tolerance %s", sum, total, tolerance)
	}
}

func TestAllocate_OrderFollowsConfigThenPromoters(t *testing.T) {
	promoters := []domain.PromoterShare{
		{ID: "p1", Percentage: dec("5")},
		{ID: "p2", Percentage: dec("5")},
	}

	allocs := distribution.Allocate(dec("100"), twoRecipients(domain.RoleInternalStaff), promoters)

	wantOrder := []string{"r1", "r2", "p1", "p2"}
	for i, id := range wantOrder {
		if allocs[i].RecipientID != id {
			t.Errorf("position %d: got %s, want %s", i, allocs[i].RecipientID, id)
		}
	}
}
