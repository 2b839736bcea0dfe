// Package rules - Authoritative price book for quote estimation
// Defines the canonical rule table the engine combines: base prices and
// durations per (category, tier), scale and speed factors, the add-on
// catalog, and per-tier feature manifests. This is the source of truth;
// completeness over the full category x priced-tier cross product is a
// hard contract checked at load time.
package rules

import (
	"github.com/shopspring/decimal"

	"quotecalc/core/types"
)

// RuleEntry maps a (category, tier) pair to its base numbers
type RuleEntry struct {
	Category types.ProjectCategory `json:"category"`

	Tier types.ServiceTier `json:"tier"`

	// BasePrice is the pre-multiplier price, always > 0
	BasePrice decimal.Decimal `json:"base_price"`

	// BaseWeeks is the pre-adjustment duration, always >= 1
	BaseWeeks int `json:"base_weeks"`
}

// ScaleFactor adjusts price multiplicatively and duration additively
type ScaleFactor struct {
	Scale types.ProjectScale `json:"scale"`

	// PriceMultiplier is monotonically non-decreasing small -> large
	PriceMultiplier decimal.Decimal `json:"price_multiplier"`

	// WeeksDelta is added to base weeks, always >= 0
	WeeksDelta int `json:"weeks_delta"`
}

// SpeedFactor adjusts price multiplicatively; relaxed <= 1.0 <= urgent,
// standard is exactly 1.0
type SpeedFactor struct {
	Speed types.DeliverySpeed `json:"speed"`

	PriceMultiplier decimal.Decimal `json:"price_multiplier"`
}

// AddOn is an optional capability with a fixed or per-unit cost.
// Add-on costs are strictly additive: scale and speed multipliers never
// apply to them.
type AddOn struct {
	Key types.AddOnKey `json:"key"`

	Label string `json:"label"`

	// Cost is the flat cost, or the per-unit cost when PerUnit is set
	Cost decimal.Decimal `json:"cost"`

	PerUnit bool `json:"per_unit"`

	// FirstUnitIncluded marks per-unit add-ons whose first unit is covered
	// by the base price (languages). Business rule pending confirmation,
	// kept explicit as data rather than buried in arithmetic.
	FirstUnitIncluded bool `json:"first_unit_included,omitempty"`
}

// BillableUnits returns how many units of a per-unit add-on are charged
func (a AddOn) BillableUnits(count int) int {
	if !a.PerUnit || count <= 0 {
		return 0
	}
	if a.FirstUnitIncluded {
		return count - 1
	}
	return count
}

type ruleKey struct {
	category types.ProjectCategory
	tier     types.ServiceTier
}

// Table is the immutable, validated price book
type Table struct {
	currency types.Currency
	entries  map[ruleKey]RuleEntry
	scales   map[types.ProjectScale]ScaleFactor
	speeds   map[types.DeliverySpeed]SpeedFactor
	addOns   map[types.AddOnKey]AddOn

	// addOnOrder fixes the emission order for summaries; it must never
	// depend on map iteration order
	addOnOrder []types.AddOnKey

	features map[types.ServiceTier][]string
}

// NewTable builds a table from its parts. The result is not validated;
// call Validate or MustValidate before handing it to the engine.
func NewTable(currency types.Currency, entries []RuleEntry, scales []ScaleFactor, speeds []SpeedFactor, addOns []AddOn, features map[types.ServiceTier][]string) *Table {
	t := &Table{
		currency: currency,
		entries:  make(map[ruleKey]RuleEntry, len(entries)),
		scales:   make(map[types.ProjectScale]ScaleFactor, len(scales)),
		speeds:   make(map[types.DeliverySpeed]SpeedFactor, len(speeds)),
		addOns:   make(map[types.AddOnKey]AddOn, len(addOns)),
		features: make(map[types.ServiceTier][]string, len(features)),
	}
	for _, e := range entries {
		t.entries[ruleKey{e.Category, e.Tier}] = e
	}
	for _, s := range scales {
		t.scales[s.Scale] = s
	}
	for _, s := range speeds {
		t.speeds[s.Speed] = s
	}
	for _, a := range addOns {
		t.addOns[a.Key] = a
		t.addOnOrder = append(t.addOnOrder, a.Key)
	}
	for tier, list := range features {
		t.features[tier] = append([]string(nil), list...)
	}
	return t
}

// Currency returns the price book currency
func (t *Table) Currency() types.Currency {
	return t.currency
}

// Entry returns the rule entry for a (category, tier) pair
func (t *Table) Entry(category types.ProjectCategory, tier types.ServiceTier) (RuleEntry, bool) {
	e, ok := t.entries[ruleKey{category, tier}]
	return e, ok
}

// Scale returns the factor for a scale level
func (t *Table) Scale(scale types.ProjectScale) (ScaleFactor, bool) {
	s, ok := t.scales[scale]
	return s, ok
}

// Speed returns the factor for a delivery speed
func (t *Table) Speed(speed types.DeliverySpeed) (SpeedFactor, bool) {
	s, ok := t.speeds[speed]
	return s, ok
}

// AddOn returns a catalog entry by key
func (t *Table) AddOn(key types.AddOnKey) (AddOn, bool) {
	a, ok := t.addOns[key]
	return a, ok
}

// AddOns returns the catalog in its fixed emission order
func (t *Table) AddOns() []AddOn {
	out := make([]AddOn, 0, len(t.addOnOrder))
	for _, key := range t.addOnOrder {
		out = append(out, t.addOns[key])
	}
	return out
}

// Entries returns all rule entries in category, then tier order
func (t *Table) Entries() []RuleEntry {
	out := make([]RuleEntry, 0, len(t.entries))
	for _, category := range types.Categories() {
		for _, tier := range types.PricedTiers() {
			if e, ok := t.entries[ruleKey{category, tier}]; ok {
				out = append(out, e)
			}
		}
	}
	return out
}

// Features returns the fixed, ordered feature manifest for a tier.
// The manifest is keyed by tier only; no other input changes it.
func (t *Table) Features(tier types.ServiceTier) []string {
	return append([]string(nil), t.features[tier]...)
}
