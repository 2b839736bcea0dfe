// Package cmd - rules and validate commands
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"quotecalc/core/rules"
	"quotecalc/core/types"
	"quotecalc/internal/config"
)

// rulesCmd prints the active price book
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active price book",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		table := rules.Default()
		if cfg.Pricing.RulesFile != "" {
			loaded, err := rules.Load(cfg.Pricing.RulesFile)
			if err != nil {
				return err
			}
			table = loaded
		}
		printTable(table)
		return nil
	},
}

// validateCmd checks an HCL price book override file
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an HCL price book override file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := rules.Load(args[0]); err != nil {
			return err
		}
		fmt.Printf("%s: price book is valid\n", args[0])
		return nil
	},
}

func printTable(table *rules.Table) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "CATEGORY\tTIER\tBASE PRICE\tBASE WEEKS\n")
	for _, e := range table.Entries() {
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%d\n",
			e.Category, e.Tier, e.BasePrice.StringFixed(0), table.Currency(), e.BaseWeeks)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "SCALE\tMULTIPLIER\tWEEKS DELTA\n")
	for _, level := range types.Scales() {
		s, _ := table.Scale(level)
		fmt.Fprintf(w, "%s\t%s\t+%d\n", s.Scale, s.PriceMultiplier, s.WeeksDelta)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "SPEED\tMULTIPLIER\n")
	for _, level := range types.Speeds() {
		s, _ := table.Speed(level)
		fmt.Fprintf(w, "%s\t%s\n", s.Speed, s.PriceMultiplier)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "ADD-ON\tCOST\tBILLING\n")
	for _, a := range table.AddOns() {
		billing := "flat"
		if a.PerUnit {
			billing = "per unit"
			if a.FirstUnitIncluded {
				billing = "per unit, first included"
			}
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s\n", a.Key, a.Cost.StringFixed(0), table.Currency(), billing)
	}

	_ = w.Flush()
}
