// Package cmd provides the CLI commands for quotecalc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quotecalc/internal/config"
	"quotecalc/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quotecalc",
	Short: "Estimate project quotes from the price book",
	Long: `quotecalc is the quote estimation engine behind the pricing calculator.

It maps a project selection (category, tier, scale, speed, add-ons) to a
price range, a duration estimate, and a summary ready for the contact flow.

Examples:
  quotecalc estimate --category landing --tier business --scale medium
  quotecalc estimate --category mobile --tier pro --speed urgent --languages 3
  quotecalc rules
  quotecalc validate pricing.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("quotecalc version 1.0.0")
	},
}
