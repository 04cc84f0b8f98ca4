package domain

import "github.com/shopspring/decimal"

type RecipientRole string

const (
	RoleInternalStaff RecipientRole = "internal-staff"
	RoleReferralAgent RecipientRole = "referral-agent"
	RolePlatform      RecipientRole = "platform-itself"
)

// Recipient is a party entitled to a percentage of the platform commission.
type Recipient struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Role       RecipientRole   `json:"role"`
	Percentage decimal.Decimal `json:"percentage"`
}

// RevenueDistribution is a two-level split of the gross commission: the
// supplier share taken upstream, and within the platform's remainder an
// ordered recipient list. Recipient percentages should sum to 100 but this
// is never enforced; over- and under-allocation are the caller's problem.
type RevenueDistribution struct {
	SupplierPercentage decimal.Decimal `json:"supplier_percentage"`
	PlatformPercentage decimal.Decimal `json:"platform_percentage"`
	Recipients         []Recipient     `json:"recipients"`
}

// PromoterShare is a referral-agent cut layered on at report time. Each
// promoter's percentage comes out of the platform-itself share, not out of
// the other recipients.
type PromoterShare struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
}

// RecipientAllocation is one resolved line of the commission breakdown.
type RecipientAllocation struct {
	RecipientID string          `json:"recipient_id"`
	Name        string          `json:"name"`
	Role        RecipientRole   `json:"role"`
	Percentage  decimal.Decimal `json:"percentage"`
	Amount      decimal.Decimal `json:"amount"`
}
