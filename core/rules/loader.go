// Package rules - HCL price book overrides
// Operators can override parts of the compiled-in book with an HCL file:
//
//	currency = "USD"
//
//	rule "landing" "business" {
//	  base_price = 2100
//	  base_weeks = 3
//	}
//
//	scale "large" {
//	  price_multiplier = 1.7
//	  weeks_delta      = 4
//	}
//
//	speed "urgent" {
//	  price_multiplier = 1.4
//	}
//
//	addon "integrations" {
//	  cost = 350
//	}
//
// The merged book is validated like the defaults; a defective override
// file fails the load.
package rules

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"quotecalc/core/types"
	qerrors "quotecalc/internal/errors"
)

type bookFile struct {
	Currency string       `hcl:"currency,optional"`
	Rules    []ruleBlock  `hcl:"rule,block"`
	Scales   []scaleBlock `hcl:"scale,block"`
	Speeds   []speedBlock `hcl:"speed,block"`
	AddOns   []addOnBlock `hcl:"addon,block"`
}

type ruleBlock struct {
	Category  string  `hcl:"category,label"`
	Tier      string  `hcl:"tier,label"`
	BasePrice float64 `hcl:"base_price"`
	BaseWeeks int     `hcl:"base_weeks"`
}

type scaleBlock struct {
	Scale           string  `hcl:"scale,label"`
	PriceMultiplier float64 `hcl:"price_multiplier"`
	WeeksDelta      *int    `hcl:"weeks_delta"`
}

type speedBlock struct {
	Speed           string  `hcl:"speed,label"`
	PriceMultiplier float64 `hcl:"price_multiplier"`
}

type addOnBlock struct {
	Key  string  `hcl:"key,label"`
	Cost float64 `hcl:"cost"`
}

// Load reads an HCL override file and merges it over the default book.
// The merged table is fully validated before it is returned.
func Load(path string) (*Table, error) {
	var file bookFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, qerrors.Wrap(qerrors.TypeConfig, "failed to parse price book file", err)
	}

	base := Default()

	currency := base.Currency()
	if file.Currency != "" {
		currency = types.Currency(file.Currency)
	}

	entries := base.Entries()
	for _, block := range file.Rules {
		category := types.ProjectCategory(block.Category)
		tier := types.ServiceTier(block.Tier)
		if !category.Valid() {
			return nil, qerrors.Newf(qerrors.TypeConfig, "unknown category %q in price book file", block.Category)
		}
		if !tier.Priced() {
			return nil, qerrors.Newf(qerrors.TypeConfig, "tier %q in price book file is not a priced tier", block.Tier)
		}
		replaced := false
		for i, e := range entries {
			if e.Category == category && e.Tier == tier {
				entries[i].BasePrice = decimal.NewFromFloat(block.BasePrice)
				entries[i].BaseWeeks = block.BaseWeeks
				replaced = true
				break
			}
		}
		if !replaced {
			entries = append(entries, RuleEntry{
				Category:  category,
				Tier:      tier,
				BasePrice: decimal.NewFromFloat(block.BasePrice),
				BaseWeeks: block.BaseWeeks,
			})
		}
	}

	scales := make([]ScaleFactor, 0, len(types.Scales()))
	for _, level := range types.Scales() {
		factor, _ := base.Scale(level)
		for _, block := range file.Scales {
			if types.ProjectScale(block.Scale) == level {
				factor.PriceMultiplier = decimal.NewFromFloat(block.PriceMultiplier)
				if block.WeeksDelta != nil {
					factor.WeeksDelta = *block.WeeksDelta
				}
			}
		}
		scales = append(scales, factor)
	}

	speeds := make([]SpeedFactor, 0, len(types.Speeds()))
	for _, level := range types.Speeds() {
		factor, _ := base.Speed(level)
		for _, block := range file.Speeds {
			if types.DeliverySpeed(block.Speed) == level {
				factor.PriceMultiplier = decimal.NewFromFloat(block.PriceMultiplier)
			}
		}
		speeds = append(speeds, factor)
	}

	addOns := base.AddOns()
	for _, block := range file.AddOns {
		key := types.AddOnKey(block.Key)
		if !key.Valid() {
			return nil, qerrors.Newf(qerrors.TypeConfig, "unknown add-on %q in price book file", block.Key)
		}
		for i, a := range addOns {
			if a.Key == key {
				addOns[i].Cost = decimal.NewFromFloat(block.Cost)
			}
		}
	}

	features := make(map[types.ServiceTier][]string, len(types.Tiers()))
	for _, tier := range types.Tiers() {
		features[tier] = base.Features(tier)
	}

	table := NewTable(currency, entries, scales, speeds, addOns, features)
	if err := table.Validate(); err != nil {
		return nil, qerrors.Wrap(qerrors.TypeConfig, "price book file produced an invalid table", err)
	}
	return table, nil
}
