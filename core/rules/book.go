// Package rules - Built-in price book
package rules

import (
	"github.com/shopspring/decimal"

	"quotecalc/core/types"
)

func price(units int64) decimal.Decimal {
	return decimal.NewFromInt(units)
}

func mult(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Default returns the compiled-in price book. Enterprise carries no
// entries: it is priced out of band and the engine never does arithmetic
// on it.
func Default() *Table {
	entries := []RuleEntry{
		{types.CategoryLanding, types.TierStarter, price(900), 2},
		{types.CategoryLanding, types.TierBusiness, price(1900), 3},
		{types.CategoryLanding, types.TierPro, price(3600), 5},

		{types.CategoryCorporate, types.TierStarter, price(1500), 3},
		{types.CategoryCorporate, types.TierBusiness, price(2800), 4},
		{types.CategoryCorporate, types.TierPro, price(5200), 6},

		{types.CategoryEcommerce, types.TierStarter, price(2400), 4},
		{types.CategoryEcommerce, types.TierBusiness, price(4500), 6},
		{types.CategoryEcommerce, types.TierPro, price(8000), 9},

		{types.CategoryMobile, types.TierStarter, price(3000), 5},
		{types.CategoryMobile, types.TierBusiness, price(6000), 8},
		{types.CategoryMobile, types.TierPro, price(11000), 12},

		{types.CategoryCRM, types.TierStarter, price(3500), 6},
		{types.CategoryCRM, types.TierBusiness, price(7000), 9},
		{types.CategoryCRM, types.TierPro, price(12500), 13},

		{types.CategoryBot, types.TierStarter, price(1200), 2},
		{types.CategoryBot, types.TierBusiness, price(2500), 4},
		{types.CategoryBot, types.TierPro, price(4800), 6},

		{types.CategoryWeb3, types.TierStarter, price(4000), 5},
		{types.CategoryWeb3, types.TierBusiness, price(8500), 8},
		{types.CategoryWeb3, types.TierPro, price(15000), 12},
	}

	scales := []ScaleFactor{
		{types.ScaleSmall, mult("1.0"), 0},
		{types.ScaleMedium, mult("1.25"), 1},
		{types.ScaleLarge, mult("1.6"), 3},
	}

	speeds := []SpeedFactor{
		{types.SpeedRelaxed, mult("0.9")},
		{types.SpeedStandard, mult("1.0")},
		{types.SpeedUrgent, mult("1.35")},
	}

	addOns := []AddOn{
		{Key: types.AddOnLanguages, Label: "extra languages", Cost: price(250), PerUnit: true, FirstUnitIncluded: true},
		{Key: types.AddOnIntegrations, Label: "integrations", Cost: price(300), PerUnit: true},
		{Key: types.AddOnPayments, Label: "payment acceptance", Cost: price(450)},
		{Key: types.AddOnContent, Label: "content population", Cost: price(600)},
		{Key: types.AddOnDataImport, Label: "data import", Cost: price(800)},
		{Key: types.AddOnSupport, Label: "extended support", Cost: price(500)},
	}

	features := map[types.ServiceTier][]string{
		types.TierStarter: {
			"Responsive layout",
			"Basic SEO setup",
			"Contact form",
			"One revision round",
		},
		types.TierBusiness: {
			"Responsive layout",
			"Full SEO setup",
			"Content management system",
			"Analytics integration",
			"Three revision rounds",
		},
		types.TierPro: {
			"Custom design system",
			"Full SEO setup",
			"Content management system",
			"Analytics integration",
			"Performance optimization",
			"Priority support",
			"Unlimited revision rounds",
		},
		types.TierEnterprise: {
			"Dedicated project team",
			"Custom architecture",
			"Service-level agreement",
			"On-call support",
			"Unlimited revision rounds",
		},
	}

	return NewTable(types.CurrencyUSD, entries, scales, speeds, addOns, features)
}
