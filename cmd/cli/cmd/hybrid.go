// Package cmd - hybrid command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldquote/core/foam"
	"fieldquote/core/types"
)

var (
	hybridClosed       float64
	hybridOpen         float64
	hybridFraming      string
	hybridArea         string
	hybridConstruction string
	hybridTarget       float64
)

// hybridCmd calculates a hybrid spray-foam assembly
var hybridCmd = &cobra.Command{
	Use:   "hybrid",
	Short: "Calculate a hybrid closed-cell + open-cell assembly",
	Long: `Calculate the R-value breakdown and per-square-foot price of a hybrid
spray-foam assembly. Certified code-compliance assemblies report their
tested R-values, which may differ from the per-inch formula.

With --target, layer thicknesses are derived from a target R-value
instead of given explicitly.

Examples:
  fieldquote hybrid --closed 2.5 --open 3 --area exterior_walls
  fieldquote hybrid --closed 3 --open 9.5 --area roof --framing 2x10 --construction new
  fieldquote hybrid --target 38`,
	RunE: runHybrid,
}

func init() {
	hybridCmd.Flags().Float64Var(&hybridClosed, "closed", 0, "closed-cell inches")
	hybridCmd.Flags().Float64Var(&hybridOpen, "open", 0, "open-cell inches")
	hybridCmd.Flags().StringVar(&hybridFraming, "framing", "", "framing size (e.g. 2x10)")
	hybridCmd.Flags().StringVar(&hybridArea, "area", "", "area type (e.g. exterior_walls, roof)")
	hybridCmd.Flags().StringVar(&hybridConstruction, "construction", "", "construction type (new, remodel)")
	hybridCmd.Flags().Float64Var(&hybridTarget, "target", 0, "derive layers from a target R-value")
}

func runHybrid(cmd *cobra.Command, args []string) error {
	closed, open := hybridClosed, hybridOpen
	if hybridTarget > 0 {
		layers := foam.LayersForTarget(hybridTarget)
		closed, open = layers.ClosedCellInches, layers.OpenCellInches
		fmt.Printf("Layers for R%g: %.1f\" closed-cell + %.1f\" open-cell\n\n", hybridTarget, closed, open)
	}

	calc := foam.Calculate(types.HybridInput{
		ClosedCellInches: closed,
		OpenCellInches:   open,
		FramingSize:      hybridFraming,
		AreaType:         hybridArea,
		ConstructionType: types.ConstructionType(hybridConstruction),
	})

	fmt.Printf("Closed-cell: %.1f\" = R%g\n", calc.ClosedCellInches, calc.ClosedCellRValue)
	fmt.Printf("Open-cell:   %.1f\" = R%g\n", calc.OpenCellInches, calc.OpenCellRValue)
	fmt.Printf("Assembly:    %.1f\" = R%g\n", calc.TotalInches, calc.TotalRValue)
	fmt.Printf("Price:       %s/sqft\n", money(foam.UnitPrice(closed, open)))
	return nil
}
