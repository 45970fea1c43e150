// Package cmd - hvac command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldquote/core/hvac"
	"fieldquote/core/types"
	"fieldquote/internal/config"
	"fieldquote/internal/logging"
)

var (
	hvacFormat   string
	hvacValidate bool
)

// hvacCmd prices a file of HVAC system measurements
var hvacCmd = &cobra.Command{
	Use:   "hvac <systems.json>",
	Short: "Price HVAC systems into a job summary",
	Long: `Price a JSON file of HVAC system measurements and summarize the job.

Examples:
  fieldquote hvac systems.json
  fieldquote hvac systems.json --validate
  fieldquote hvac systems.json --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runHvac,
}

func init() {
	hvacCmd.Flags().StringVarP(&hvacFormat, "format", "f", "cli", "output format (cli, json)")
	hvacCmd.Flags().BoolVar(&hvacValidate, "validate", false, "run specification checks on each system")
}

// newHvacService builds a service from the configured rate file, or
// the built-in defaults when none is set
func newHvacService() (*hvac.Service, error) {
	path := config.Get().Rates.HvacFile
	if path == "" {
		return hvac.NewService(), nil
	}
	cfg, err := hvac.LoadHCL(path)
	if err != nil {
		return nil, err
	}
	return hvac.NewServiceWithConfig(cfg), nil
}

func runHvac(cmd *cobra.Command, args []string) error {
	var systems []types.HvacSystemMeasurement
	if err := readJSONFile(args[0], &systems); err != nil {
		return fmt.Errorf("failed to read systems: %w", err)
	}

	svc, err := newHvacService()
	if err != nil {
		return err
	}

	logging.Info("pricing hvac job")

	summary, err := svc.SummarizeJob(systems)
	if err != nil {
		return err
	}

	if hvacFormat == "json" {
		return printJSON(summary)
	}

	for _, b := range summary.Systems {
		fmt.Printf("%s  %.1f ton\n", b.SystemType, b.Tonnage)
		fmt.Printf("  Base:                %12s\n", money(b.BaseSystemCost))
		fmt.Printf("  Tonnage:             %12s\n", money(b.TonnageCost))
		if !b.DuctworkCost.IsZero() {
			fmt.Printf("  Ductwork:            %12s\n", money(b.DuctworkCost))
		}
		if !b.SupplyVentsCost.IsZero() || !b.ReturnVentsCost.IsZero() {
			fmt.Printf("  Vents:               %12s\n", money(b.SupplyVentsCost.Add(b.ReturnVentsCost)))
		}
		if !b.AdditionalServicesCost.IsZero() {
			fmt.Printf("  Additional services: %12s\n", money(b.AdditionalServicesCost))
		}
		fmt.Printf("  Labor (%.1f h):       %12s\n", b.LaborHours, money(b.LaborCost))
		if b.PriceOverride != nil {
			fmt.Printf("  Calculated:          %12s\n", money(b.TotalBeforeOverride))
			fmt.Printf("  Override:            %12s  (%s)\n", money(*b.PriceOverride), b.OverrideReason)
		}
		fmt.Printf("  Total:               %12s\n\n", money(b.FinalTotal))
	}

	fmt.Printf("Systems: %d   Tonnage: %.1f   Ductwork: %.0f ft   Vents: %d\n",
		summary.SystemCount, summary.TotalTonnage, summary.TotalDuctworkFeet, summary.TotalVents)
	fmt.Printf("Materials: %s   Services: %s   Labor: %s\n",
		money(summary.TotalMaterials), money(summary.TotalAdditionalServices), money(summary.TotalLabor))
	fmt.Printf("Grand total: %s   Est. %.0f labor hours over %d install day(s)\n",
		money(summary.GrandTotal), summary.TotalLaborHours, summary.EstimatedInstallDays)

	if hvacValidate {
		fmt.Println()
		for i, m := range systems {
			result := svc.Validate(m)
			if result.IsValid && len(result.Recommendations) == 0 {
				continue
			}
			fmt.Printf("System %d (%s):\n", i+1, m.SystemType)
			for _, w := range result.Warnings {
				fmt.Printf("  warning: %s\n", w)
			}
			for _, r := range result.Recommendations {
				fmt.Printf("  recommend: %s\n", r)
			}
		}
	}
	return nil
}
