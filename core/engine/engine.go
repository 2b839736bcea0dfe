// Package engine - Quote estimation engine
// Estimate is a pure function over a validated price book: table lookups
// and decimal arithmetic only, no I/O. It runs on every selection change,
// so it must stay cheap enough to call unconditionally.
package engine

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"quotecalc/core/rules"
	"quotecalc/core/types"
	qerrors "quotecalc/internal/errors"
)

// The displayed range is a fixed band around the rounded point price,
// not a confidence interval. The asymmetry is intentional: scope grows
// more often than it shrinks.
var (
	bandLow  = decimal.RequireFromString("0.90")
	bandHigh = decimal.RequireFromString("1.15")
)

// Duration adjustments per delivery speed. Urgent compresses by 20%
// (rounded, floored at 1 week); relaxed extends by 10% (rounded up).
const (
	urgentCompression = 0.8
	relaxedExtension  = 1.1
)

// Engine computes quotes against an immutable price book
type Engine struct {
	table *rules.Table
}

// New creates an engine after validating the price book. A defective
// book is a configuration error caught here, never during a user's
// interaction.
func New(table *rules.Table) (*Engine, error) {
	if err := table.Validate(); err != nil {
		return nil, qerrors.Config("price book failed validation", err)
	}
	return &Engine{table: table}, nil
}

// MustNew creates an engine and panics on a defective price book
func MustNew(table *rules.Table) *Engine {
	table.MustValidate()
	return &Engine{table: table}
}

// Table returns the engine's price book
func (e *Engine) Table() *rules.Table {
	return e.table
}

// addOnLine is one selected add-on with its billable amount
type addOnLine struct {
	addOn  rules.AddOn
	units  int
	amount decimal.Decimal
}

// Estimate maps a selection to a quote or the enterprise sentinel.
// The selection must satisfy the engine preconditions: known enum
// members, languageCount >= 1, integrationCount >= 0. Violations are
// programming errors in the caller (the UI enumerates valid options
// only) and panic rather than return an error.
func (e *Engine) Estimate(sel types.Selection) types.Outcome {
	assertSelection(sel)

	// Enterprise is priced out of band; skip all arithmetic.
	if sel.Tier == types.TierEnterprise {
		return types.EnterpriseOutcome()
	}

	entry, ok := e.table.Entry(sel.Category, sel.Tier)
	if !ok {
		// Completeness is validated at construction; a miss here is a defect.
		panic(fmt.Sprintf("engine: no rule entry for %s/%s", sel.Category, sel.Tier))
	}
	scale, _ := e.table.Scale(sel.Scale)
	speed, _ := e.table.Speed(sel.Speed)

	// Multipliers compose before any rounding; intermediates stay exact.
	raw := entry.BasePrice.Mul(scale.PriceMultiplier).Mul(speed.PriceMultiplier)

	// Add-on costs are additive on top of the multiplied base; scale and
	// speed factors never touch them.
	lines := e.selectedAddOns(sel)
	addOnTotal := decimal.Zero
	for _, line := range lines {
		addOnTotal = addOnTotal.Add(line.amount)
	}

	// Round half-up to whole currency units, then derive both bounds from
	// the already-rounded point so range and point always agree.
	pricePoint := raw.Add(addOnTotal).Round(0)
	low := pricePoint.Mul(bandLow).Round(0)
	high := pricePoint.Mul(bandHigh).Round(0)

	weeks := adjustWeeks(entry.BaseWeeks+scale.WeeksDelta, sel.Speed)

	quote := &types.Quote{
		PricePoint:       pricePoint,
		PriceRangeLow:    low,
		PriceRangeHigh:   high,
		Currency:         e.table.Currency(),
		EstimatedWeeks:   weeks,
		IncludedFeatures: e.table.Features(sel.Tier),
	}
	quote.SummaryText = renderSummary(sel, quote, lines)

	return types.QuoteOutcome(quote)
}

// selectedAddOns resolves the selection's add-ons against the catalog in
// its fixed order. Per-unit add-ons with zero billable units produce no
// line.
func (e *Engine) selectedAddOns(sel types.Selection) []addOnLine {
	var lines []addOnLine
	for _, addOn := range e.table.AddOns() {
		switch {
		case addOn.Key == types.AddOnLanguages:
			if units := addOn.BillableUnits(sel.LanguageCount); units > 0 {
				lines = append(lines, addOnLine{addOn, units, addOn.Cost.Mul(decimal.NewFromInt(int64(units)))})
			}
		case addOn.Key == types.AddOnIntegrations:
			if units := addOn.BillableUnits(sel.IntegrationCount); units > 0 {
				lines = append(lines, addOnLine{addOn, units, addOn.Cost.Mul(decimal.NewFromInt(int64(units)))})
			}
		case !addOn.PerUnit && sel.HasAddOn(addOn.Key):
			lines = append(lines, addOnLine{addOn, 0, addOn.Cost})
		}
	}
	return lines
}

// adjustWeeks applies the speed adjustment to the scale-adjusted base
// duration. The result is always >= 1.
func adjustWeeks(weeks int, speed types.DeliverySpeed) int {
	switch speed {
	case types.SpeedUrgent:
		weeks = int(math.Round(float64(weeks) * urgentCompression))
	case types.SpeedRelaxed:
		weeks = int(math.Ceil(float64(weeks) * relaxedExtension))
	}
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}

func assertSelection(sel types.Selection) {
	if !sel.Category.Valid() {
		panic(fmt.Sprintf("engine: unknown project category %q", sel.Category))
	}
	if !sel.Tier.Valid() {
		panic(fmt.Sprintf("engine: unknown service tier %q", sel.Tier))
	}
	if !sel.Scale.Valid() {
		panic(fmt.Sprintf("engine: unknown project scale %q", sel.Scale))
	}
	if !sel.Speed.Valid() {
		panic(fmt.Sprintf("engine: unknown delivery speed %q", sel.Speed))
	}
	if sel.LanguageCount < 1 {
		panic(fmt.Sprintf("engine: language count must be >= 1, got %d", sel.LanguageCount))
	}
	if sel.IntegrationCount < 0 {
		panic(fmt.Sprintf("engine: integration count must be >= 0, got %d", sel.IntegrationCount))
	}
	for _, key := range sel.AddOns {
		if !key.Valid() {
			panic(fmt.Sprintf("engine: unknown add-on key %q", key))
		}
	}
}
