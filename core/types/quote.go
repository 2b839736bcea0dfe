// Package types - Quote output
package types

import "github.com/shopspring/decimal"

// Quote is the engine's output for a priced selection. It is immutable and
// recomputed from scratch on every selection change; it has no identity and
// is never partially updated.
type Quote struct {
	// PricePoint is the rounded point price in whole currency units
	PricePoint decimal.Decimal `json:"price_point"`

	// PriceRangeLow is round(PricePoint * 0.90)
	PriceRangeLow decimal.Decimal `json:"price_range_low"`

	// PriceRangeHigh is round(PricePoint * 1.15). The asymmetric band is
	// intentional: scope growth is more likely than scope shrinkage.
	PriceRangeHigh decimal.Decimal `json:"price_range_high"`

	// Currency is the quote currency
	Currency Currency `json:"currency"`

	// EstimatedWeeks is the duration estimate, always >= 1
	EstimatedWeeks int `json:"estimated_weeks"`

	// IncludedFeatures is the tier's fixed, ordered feature manifest
	IncludedFeatures []string `json:"included_features"`

	// SummaryText is the deterministic human-readable summary
	SummaryText string `json:"summary_text"`
}

// Outcome is the result of an estimation: either a numeric Quote or the
// enterprise sentinel. The sentinel is a designed terminal state, not an
// error; callers render a "contact us" affordance instead of numbers.
type Outcome struct {
	// Enterprise marks a quote-on-request outcome; Quote is nil when set
	Enterprise bool `json:"enterprise"`

	// Quote carries the numeric quote for non-enterprise tiers
	Quote *Quote `json:"quote,omitempty"`
}

// EnterpriseOutcome returns the sentinel outcome
func EnterpriseOutcome() Outcome {
	return Outcome{Enterprise: true}
}

// QuoteOutcome wraps a numeric quote
func QuoteOutcome(q *Quote) Outcome {
	return Outcome{Quote: q}
}
