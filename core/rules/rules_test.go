// Package rules - Price book validation tests
// These tests prove the completeness contract is real by violating it.
package rules

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"quotecalc/core/types"
)

func TestDefaultBookValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default price book failed validation: %v", err)
	}
}

func TestMissingEntryFailsCompleteness(t *testing.T) {
	base := Default()

	var entries []RuleEntry
	for _, e := range base.Entries() {
		if e.Category == types.CategoryWeb3 && e.Tier == types.TierPro {
			continue // drop one pair
		}
		entries = append(entries, e)
	}
	table := rebuild(base, entries)

	err := table.Validate()
	if err == nil {
		t.Fatal("expected completeness failure for missing web3/pro entry")
	}
	if !strings.Contains(err.Error(), "web3/pro") {
		t.Errorf("error does not name the missing pair: %v", err)
	}
}

func TestEnterpriseEntryRejected(t *testing.T) {
	base := Default()

	entries := append(base.Entries(), RuleEntry{
		Category:  types.CategoryLanding,
		Tier:      types.TierEnterprise,
		BasePrice: decimal.NewFromInt(99999),
		BaseWeeks: 20,
	})
	table := rebuild(base, entries)

	if err := table.Validate(); err == nil {
		t.Fatal("expected rejection of an enterprise rule entry")
	}
}

func TestZeroBasePriceRejected(t *testing.T) {
	base := Default()

	entries := base.Entries()
	entries[0].BasePrice = decimal.Zero

	if err := rebuild(base, entries).Validate(); err == nil {
		t.Fatal("expected rejection of a zero base price")
	}
}

func TestNonUnitStandardSpeedRejected(t *testing.T) {
	base := Default()

	speeds := []SpeedFactor{
		{types.SpeedRelaxed, decimal.RequireFromString("0.9")},
		{types.SpeedStandard, decimal.RequireFromString("1.05")},
		{types.SpeedUrgent, decimal.RequireFromString("1.35")},
	}
	table := NewTable(base.Currency(), base.Entries(), allScales(base), speeds, base.AddOns(), allFeatures(base))

	if err := table.Validate(); err == nil {
		t.Fatal("expected rejection of a standard multiplier != 1.0")
	}
}

func TestScaleMonotonicityRejected(t *testing.T) {
	base := Default()

	scales := []ScaleFactor{
		{types.ScaleSmall, decimal.RequireFromString("1.0"), 0},
		{types.ScaleMedium, decimal.RequireFromString("1.5"), 1},
		{types.ScaleLarge, decimal.RequireFromString("1.2"), 3},
	}
	table := NewTable(base.Currency(), base.Entries(), scales, allSpeeds(base), base.AddOns(), allFeatures(base))

	if err := table.Validate(); err == nil {
		t.Fatal("expected rejection of non-monotone scale multipliers")
	}
}

func TestMustValidatePanicsOnDefect(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic from MustValidate on a defective table")
		}
	}()

	base := Default()
	table := rebuild(base, base.Entries()[:5])
	table.MustValidate()
}

func TestBillableUnits(t *testing.T) {
	languages := AddOn{Key: types.AddOnLanguages, Cost: decimal.NewFromInt(250), PerUnit: true, FirstUnitIncluded: true}
	integrations := AddOn{Key: types.AddOnIntegrations, Cost: decimal.NewFromInt(300), PerUnit: true}
	flat := AddOn{Key: types.AddOnPayments, Cost: decimal.NewFromInt(450)}

	if got := languages.BillableUnits(1); got != 0 {
		t.Errorf("languages(1) = %d, want 0 (first included)", got)
	}
	if got := languages.BillableUnits(3); got != 2 {
		t.Errorf("languages(3) = %d, want 2", got)
	}
	if got := integrations.BillableUnits(3); got != 3 {
		t.Errorf("integrations(3) = %d, want 3 (no free unit)", got)
	}
	if got := integrations.BillableUnits(0); got != 0 {
		t.Errorf("integrations(0) = %d, want 0", got)
	}
	if got := flat.BillableUnits(5); got != 0 {
		t.Errorf("flat add-on billable units = %d, want 0", got)
	}
}

func rebuild(base *Table, entries []RuleEntry) *Table {
	return NewTable(base.Currency(), entries, allScales(base), allSpeeds(base), base.AddOns(), allFeatures(base))
}

func allScales(t *Table) []ScaleFactor {
	var out []ScaleFactor
	for _, level := range types.Scales() {
		s, _ := t.Scale(level)
		out = append(out, s)
	}
	return out
}

func allSpeeds(t *Table) []SpeedFactor {
	var out []SpeedFactor
	for _, level := range types.Speeds() {
		s, _ := t.Speed(level)
		out = append(out, s)
	}
	return out
}

func allFeatures(t *Table) map[types.ServiceTier][]string {
	out := make(map[types.ServiceTier][]string)
	for _, tier := range types.Tiers() {
		out[tier] = t.Features(tier)
	}
	return out
}
