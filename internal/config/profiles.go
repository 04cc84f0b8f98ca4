// Package config holds the named rate profiles a caller can select instead
// of passing explicit rates. Profiles are plain immutable values resolved
// once per request; the engine itself never consults them.
package config

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pagovia/settlements/internal/domain"
)

// Default profiles offered by the platform. "standard" bills the processor
// fee and the platform fee separately; "premium" absorbs the processor fee
// into a single, higher platform rate.
var profiles = map[string]domain.RateConfig{
	"standard": {
		DebitCreditRate:   decimal.NewFromFloat(3.0),
		InternationalRate: decimal.NewFromFloat(4.5),
		Format:            domain.FormatA,
	},
	"premium": {
		DebitCreditRate:   decimal.NewFromFloat(5.0),
		InternationalRate: decimal.NewFromFloat(6.5),
		Format:            domain.FormatB,
	},
}

// ResolveProfile returns the rate configuration for a named profile.
func ResolveProfile(name string) (domain.RateConfig, error) {
	p, ok := profiles[name]
	if !ok {
		return domain.RateConfig{}, fmt.Errorf("unknown rate profile: %s", name)
	}
	return p, nil
}

// ProfileNames lists the available profile names.
func ProfileNames() []string {
	return []string{"standard", "premium"}
}
