// Package rules - Price book validation
// A missing or malformed rule is a configuration defect, not a runtime
// error: validation runs once at load and a defect is fatal. The engine
// never discovers a gap lazily during a user's interaction.
package rules

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"quotecalc/core/types"
)

// ValidationRule checks one aspect of a table
type ValidationRule func(*Table) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateCompleteness,
		validateEntries,
		validateScales,
		validateSpeeds,
		validateAddOns,
		validateFeatures,
	}
}

// Validate checks the table against all rules and aggregates failures
func (t *Table) Validate() error {
	var err error
	for _, rule := range DefaultValidationRules() {
		err = multierr.Append(err, rule(t))
	}
	return err
}

// MustValidate panics on any validation failure
func (t *Table) MustValidate() {
	if err := t.Validate(); err != nil {
		panic(fmt.Sprintf("price book has configuration defects: %v", err))
	}
}

// validateCompleteness enforces the cross-product contract: every
// (category, priced tier) pair has exactly one entry, and enterprise has
// none.
func validateCompleteness(t *Table) error {
	var err error
	for _, category := range types.Categories() {
		for _, tier := range types.PricedTiers() {
			if _, ok := t.Entry(category, tier); !ok {
				err = multierr.Append(err, fmt.Errorf("missing rule entry for %s/%s", category, tier))
			}
		}
		if _, ok := t.Entry(category, types.TierEnterprise); ok {
			err = multierr.Append(err, fmt.Errorf("enterprise tier must not carry a rule entry (%s)", category))
		}
	}
	return err
}

func validateEntries(t *Table) error {
	var err error
	for key, e := range t.entries {
		if !key.category.Valid() {
			err = multierr.Append(err, fmt.Errorf("unknown category %q in rule entry", key.category))
		}
		if !key.tier.Valid() {
			err = multierr.Append(err, fmt.Errorf("unknown tier %q in rule entry", key.tier))
		}
		if !e.BasePrice.IsPositive() {
			err = multierr.Append(err, fmt.Errorf("%s/%s: base price must be > 0, got %s", key.category, key.tier, e.BasePrice))
		}
		if e.BaseWeeks < 1 {
			err = multierr.Append(err, fmt.Errorf("%s/%s: base weeks must be >= 1, got %d", key.category, key.tier, e.BaseWeeks))
		}
	}
	return err
}

// validateScales requires every level present, multipliers monotonically
// non-decreasing small -> large, and non-negative week deltas.
func validateScales(t *Table) error {
	var err error
	prev := decimal.Zero
	for _, level := range types.Scales() {
		s, ok := t.Scale(level)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("missing scale factor %q", level))
			continue
		}
		if s.PriceMultiplier.LessThan(prev) {
			err = multierr.Append(err, fmt.Errorf("scale %q multiplier %s breaks monotonicity", level, s.PriceMultiplier))
		}
		prev = s.PriceMultiplier
		if s.WeeksDelta < 0 {
			err = multierr.Append(err, fmt.Errorf("scale %q weeks delta must be >= 0, got %d", level, s.WeeksDelta))
		}
	}
	return err
}

// validateSpeeds requires relaxed <= 1.0 <= urgent and standard == 1.0
func validateSpeeds(t *Table) error {
	var err error
	one := decimal.NewFromInt(1)
	for _, level := range types.Speeds() {
		s, ok := t.Speed(level)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("missing speed factor %q", level))
			continue
		}
		switch level {
		case types.SpeedRelaxed:
			if s.PriceMultiplier.GreaterThan(one) {
				err = multierr.Append(err, fmt.Errorf("relaxed multiplier must be <= 1.0, got %s", s.PriceMultiplier))
			}
		case types.SpeedStandard:
			if !s.PriceMultiplier.Equal(one) {
				err = multierr.Append(err, fmt.Errorf("standard multiplier must be exactly 1.0, got %s", s.PriceMultiplier))
			}
		case types.SpeedUrgent:
			if s.PriceMultiplier.LessThan(one) {
				err = multierr.Append(err, fmt.Errorf("urgent multiplier must be >= 1.0, got %s", s.PriceMultiplier))
			}
		}
	}
	return err
}

func validateAddOns(t *Table) error {
	var err error
	if _, ok := t.AddOn(types.AddOnLanguages); !ok {
		err = multierr.Append(err, fmt.Errorf("missing add-on %q", types.AddOnLanguages))
	}
	if _, ok := t.AddOn(types.AddOnIntegrations); !ok {
		err = multierr.Append(err, fmt.Errorf("missing add-on %q", types.AddOnIntegrations))
	}
	for _, key := range t.addOnOrder {
		a := t.addOns[key]
		if !a.Key.Valid() {
			err = multierr.Append(err, fmt.Errorf("unknown add-on key %q", a.Key))
		}
		if !a.Cost.IsPositive() {
			err = multierr.Append(err, fmt.Errorf("add-on %q cost must be > 0, got %s", a.Key, a.Cost))
		}
		if a.FirstUnitIncluded && !a.PerUnit {
			err = multierr.Append(err, fmt.Errorf("add-on %q: first-unit-included requires per-unit billing", a.Key))
		}
		if a.Label == "" {
			err = multierr.Append(err, fmt.Errorf("add-on %q has no label", a.Key))
		}
	}
	return err
}

// validateFeatures requires a non-empty manifest for every tier,
// enterprise included
func validateFeatures(t *Table) error {
	var err error
	for _, tier := range types.Tiers() {
		if len(t.features[tier]) == 0 {
			err = multierr.Append(err, fmt.Errorf("tier %q has no feature manifest", tier))
		}
	}
	return err
}
