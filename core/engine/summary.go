// Package engine - Summary serialization
// The summary is part of the handoff contract: byte-identical for
// identical selections, with a fixed line order that never depends on
// map iteration.
package engine

import (
	"fmt"
	"strings"

	"quotecalc/core/types"
)

const disclaimerLine = "Prices are preliminary estimates; the final quote follows a scoping call."

// renderSummary produces the deterministic multi-line summary. Add-ons
// are emitted in catalog order; the add-ons line is omitted entirely
// when nothing is selected.
func renderSummary(sel types.Selection, quote *types.Quote, lines []addOnLine) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s, %s package (%s scale)\n",
		sel.Category.Label(), sel.Tier.Label(), sel.Scale.Label())
	fmt.Fprintf(&b, "Timeline: about %s, %s delivery\n",
		weeksPhrase(quote.EstimatedWeeks), sel.Speed.Label())

	b.WriteString("Includes:\n")
	for _, feature := range quote.IncludedFeatures {
		fmt.Fprintf(&b, "  - %s\n", feature)
	}

	if len(lines) > 0 {
		parts := make([]string, 0, len(lines))
		for _, line := range lines {
			if line.addOn.PerUnit {
				parts = append(parts, fmt.Sprintf("%d %s", line.units, line.addOn.Label))
			} else {
				parts = append(parts, line.addOn.Label)
			}
		}
		fmt.Fprintf(&b, "Add-ons: %s\n", strings.Join(parts, ", "))
	}

	fmt.Fprintf(&b, "Estimated budget: %s - %s %s\n",
		quote.PriceRangeLow.StringFixed(0), quote.PriceRangeHigh.StringFixed(0), quote.Currency)
	b.WriteString(disclaimerLine)

	return b.String()
}

func weeksPhrase(weeks int) string {
	if weeks == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", weeks)
}
