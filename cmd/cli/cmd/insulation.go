// Package cmd - insulation command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldquote/core/estimate"
	"fieldquote/core/types"
	"fieldquote/internal/logging"
)

var (
	insulationFormat     string
	insulationComplexity float64
	insulationDiscount   float64
	insulationPrep       bool
	insulationFire       bool
	insulationArea       float64
)

// insulationCmd prices a file of insulation measurements
var insulationCmd = &cobra.Command{
	Use:   "insulation <measurements.json>",
	Short: "Price insulation measurements into an itemized estimate",
	Long: `Price a JSON file of measurement line items against the rate catalog.

Each line item is {"square_feet": n, "insulation_family": "...",
"r_value": n, "area_type": "..."}. Unpriceable items come back at $0.00
("to be determined") rather than failing the whole file.

With --complexity, --prep, --fire-retardant, or --discount, a general
estimate is layered on top of the insulation subtotal.

Examples:
  fieldquote insulation measurements.json
  fieldquote insulation measurements.json --complexity 1.2 --discount 10
  fieldquote insulation measurements.json --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runInsulation,
}

func init() {
	insulationCmd.Flags().StringVarP(&insulationFormat, "format", "f", "cli", "output format (cli, json)")
	insulationCmd.Flags().Float64Var(&insulationComplexity, "complexity", 1.0, "complexity multiplier (1.0-2.0)")
	insulationCmd.Flags().Float64Var(&insulationDiscount, "discount", 0, "discount percent (0-50)")
	insulationCmd.Flags().BoolVar(&insulationPrep, "prep", false, "include surface preparation")
	insulationCmd.Flags().BoolVar(&insulationFire, "fire-retardant", false, "include fire-retardant coating")
	insulationCmd.Flags().Float64Var(&insulationArea, "area", 0, "total area for prep/fire-retardant (default: sum of line items)")
}

func runInsulation(cmd *cobra.Command, args []string) error {
	var items []types.MeasurementLineItem
	if err := readJSONFile(args[0], &items); err != nil {
		return fmt.Errorf("failed to read measurements: %w", err)
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	logging.Info("pricing insulation measurements")

	calc := estimate.NewCalculator(cat)
	result := calc.Estimate(items)

	area := insulationArea
	if area == 0 {
		for _, item := range items {
			area += item.SquareFeet
		}
	}

	general := estimate.BuildGeneral(result.Subtotal, area, types.GeneralEstimateOptions{
		PrepWork:             insulationPrep,
		FireRetardant:        insulationFire,
		ComplexityMultiplier: insulationComplexity,
		DiscountPercent:      insulationDiscount,
	})

	if insulationFormat == "json" {
		return printJSON(struct {
			Estimate types.InsulationEstimate `json:"estimate"`
			General  types.GeneralEstimate    `json:"general"`
		}{result, general})
	}

	for i, item := range items {
		priced := result.ItemizedPrices[i]
		label := string(item.Family)
		if label == "" {
			label = "(family not set)"
		}
		fmt.Printf("  %-22s %7.0f sqft  R%-5.4g %9s/sqft %12s\n",
			label, item.SquareFeet, item.RValue, money(priced.PricePerSqFt), money(priced.TotalPrice))
	}
	fmt.Printf("\nSubtotal:              %12s\n", money(result.Subtotal))
	if !general.ComplexityAdjustment.IsZero() {
		fmt.Printf("Complexity adjustment: %12s\n", money(general.ComplexityAdjustment))
	}
	if !general.PrepWorkCost.IsZero() {
		fmt.Printf("Surface preparation:   %12s\n", money(general.PrepWorkCost))
	}
	if !general.FireRetardantCost.IsZero() {
		fmt.Printf("Fire retardant:        %12s\n", money(general.FireRetardantCost))
	}
	if !general.DiscountAmount.IsZero() {
		fmt.Printf("Discount:             -%12s\n", money(general.DiscountAmount))
	}
	fmt.Printf("Total:                 %12s\n", money(general.Total))
	if general.RequiresApproval {
		fmt.Println("\nNOTE: total exceeds the approval threshold; manager sign-off required.")
	}
	return nil
}
