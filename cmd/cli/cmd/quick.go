// Package cmd - quick command
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fieldquote/core/types"
)

var (
	quickDuctwork   float64
	quickComplexity string
)

// quickCmd produces a pre-measurement ballpark estimate
var quickCmd = &cobra.Command{
	Use:   "quick <system-type> <tonnage>",
	Short: "Ballpark an HVAC install before measurement",
	Long: `Produce a simplified point estimate and price range for an HVAC
install before the site has been measured. No vents, additional
services, or overrides - those need a real measurement.

Examples:
  fieldquote quick central_air 3
  fieldquote quick heat_pump 2.5 --ductwork 350 --complexity moderate`,
	Args: cobra.ExactArgs(2),
	RunE: runQuick,
}

func init() {
	quickCmd.Flags().Float64Var(&quickDuctwork, "ductwork", 0, "estimated ductwork feet")
	quickCmd.Flags().StringVar(&quickComplexity, "complexity", "standard", "complexity tier (standard, moderate, complex)")
}

func runQuick(cmd *cobra.Command, args []string) error {
	tonnage, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("bad tonnage %q: %w", args[1], err)
	}

	svc, err := newHvacService()
	if err != nil {
		return err
	}

	qe, err := svc.QuickEstimate(types.SystemType(args[0]), tonnage, quickDuctwork, types.ComplexityTier(quickComplexity))
	if err != nil {
		return err
	}

	fmt.Printf("Estimated price: %s\n", money(qe.EstimatedPrice))
	fmt.Printf("Expected range:  %s - %s\n", money(qe.Range.Low), money(qe.Range.High))
	return nil
}
