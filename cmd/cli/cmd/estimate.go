// Package cmd - estimate command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quotecalc/core/engine"
	"quotecalc/core/rules"
	"quotecalc/core/types"
	"quotecalc/internal/config"
)

var (
	estCategory     string
	estTier         string
	estScale        string
	estSpeed        string
	estLanguages    int
	estIntegrations int
	estAddOns       []string
	estFormat       string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate a quote for a project selection",
	Long: `Compute a price range, duration estimate and summary for a selection.

Examples:
  quotecalc estimate --category landing --tier business --scale medium
  quotecalc estimate --category ecommerce --tier pro --addons payments,content
  quotecalc estimate --category crm --tier enterprise
  quotecalc estimate --category bot --tier starter --format json`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&estCategory, "category", "c", "", "project category (required)")
	estimateCmd.Flags().StringVarP(&estTier, "tier", "t", "", "service tier (required)")
	estimateCmd.Flags().StringVar(&estScale, "scale", string(types.ScaleSmall), "project scale")
	estimateCmd.Flags().StringVar(&estSpeed, "speed", string(types.SpeedStandard), "delivery speed")
	estimateCmd.Flags().IntVar(&estLanguages, "languages", 1, "number of site languages")
	estimateCmd.Flags().IntVar(&estIntegrations, "integrations", 0, "number of integrations")
	estimateCmd.Flags().StringSliceVar(&estAddOns, "addons", nil, "flat add-ons (payments, content, data_import, support)")
	estimateCmd.Flags().StringVarP(&estFormat, "format", "f", "text", "output format (text, json)")
	_ = estimateCmd.MarkFlagRequired("category")
	_ = estimateCmd.MarkFlagRequired("tier")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}

	sel := types.Selection{
		Category:         types.ProjectCategory(estCategory),
		Tier:             types.ServiceTier(estTier),
		Scale:            types.ProjectScale(estScale),
		Speed:            types.DeliverySpeed(estSpeed),
		LanguageCount:    estLanguages,
		IntegrationCount: estIntegrations,
	}
	for _, raw := range estAddOns {
		sel.AddOns = append(sel.AddOns, types.AddOnKey(raw))
	}

	// The engine panics on invalid enum members; the CLI is an external
	// boundary, so screen the flags first.
	if err := screenSelection(sel); err != nil {
		return err
	}

	outcome := eng.Estimate(sel)

	if estFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	}

	if outcome.Enterprise {
		fmt.Println("Enterprise tier is priced individually.")
		fmt.Println("Contact us for a custom quote.")
		return nil
	}

	quote := outcome.Quote
	fmt.Println(quote.SummaryText)
	fmt.Println()
	fmt.Printf("Point price: %s %s\n", quote.PricePoint.StringFixed(0), quote.Currency)
	return nil
}

func buildEngine() (*engine.Engine, error) {
	cfg := config.Get()
	table := rules.Default()
	if cfg.Pricing.RulesFile != "" {
		loaded, err := rules.Load(cfg.Pricing.RulesFile)
		if err != nil {
			return nil, err
		}
		table = loaded
	}
	return engine.New(table)
}

func screenSelection(sel types.Selection) error {
	if !sel.Category.Valid() {
		return fmt.Errorf("unknown category %q", sel.Category)
	}
	if !sel.Tier.Valid() {
		return fmt.Errorf("unknown tier %q", sel.Tier)
	}
	if !sel.Scale.Valid() {
		return fmt.Errorf("unknown scale %q", sel.Scale)
	}
	if !sel.Speed.Valid() {
		return fmt.Errorf("unknown speed %q", sel.Speed)
	}
	if sel.LanguageCount < 1 {
		return fmt.Errorf("languages must be >= 1")
	}
	if sel.IntegrationCount < 0 {
		return fmt.Errorf("integrations must be >= 0")
	}
	for _, key := range sel.AddOns {
		if !key.Valid() {
			return fmt.Errorf("unknown add-on %q", key)
		}
	}
	return nil
}
