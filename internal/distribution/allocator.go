// Package distribution splits the aggregate platform commission across the
// configured recipients and any report-time promoter shares.
package distribution

import (
	"github.com/shopspring/decimal"

	"github.com/pagovia/settlements/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Allocate resolves the commission breakdown for a period total.
//
// With no configured recipients the whole amount goes to a single
// platform-itself entry. Otherwise each recipient gets its configured
// percentage, in configuration order. Promoter shares are layered on
// afterwards: each emits a referral-agent entry and deducts its percentage
// from the platform-itself entries only — named recipients keep their cut.
// Percentages are never validated to sum to 100; over- and under-allocation
// pass through untouched.
func Allocate(total decimal.Decimal, dist domain.RevenueDistribution, promoters []domain.PromoterShare) []domain.RecipientAllocation {
	var allocs []domain.RecipientAllocation

	if len(dist.Recipients) == 0 {
		allocs = append(allocs, domain.RecipientAllocation{
			RecipientID: "platform",
			Name:        "Plataforma",
			Role:        domain.RolePlatform,
			Percentage:  hundred,
			Amount:      total.Round(2),
		})
	} else {
		for _, rec := range dist.Recipients {
			allocs = append(allocs, domain.RecipientAllocation{
				RecipientID: rec.ID,
				Name:        rec.Name,
				Role:        rec.Role,
				Percentage:  rec.Percentage,
				Amount:      share(total, rec.Percentage),
			})
		}
	}

	for _, p := range promoters {
		allocs = append(allocs, domain.RecipientAllocation{
			RecipientID: p.ID,
			Name:        p.Name,
			Role:        domain.RoleReferralAgent,
			Percentage:  p.Percentage,
			Amount:      share(total, p.Percentage),
		})

		// The promoter's cut comes out of the platform's own share.
		// The platform percentage is floored at zero; it can be fully
		// consumed but never driven negative.
		for i := range allocs {
			if allocs[i].Role != domain.RolePlatform {
				continue
			}
			reduced := allocs[i].Percentage.Sub(p.Percentage)
			if reduced.IsNegative() {
				reduced = decimal.Zero
			}
			allocs[i].Percentage = reduced
			allocs[i].Amount = share(total, reduced)
		}
	}

	return allocs
}

func share(total, percentage decimal.Decimal) decimal.Decimal {
	return total.Mul(percentage).Div(hundred).Round(2)
}
