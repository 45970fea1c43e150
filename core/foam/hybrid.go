// Package foam - Hybrid spray-foam assembly calculation
// Certified assemblies carry code-tested R-values that differ from the
// per-inch formula; the business requires the certified number on
// quotes, so those are checked before the generic path.
package foam

import (
	"math"

	"github.com/shopspring/decimal"

	"fieldquote/core/catalog"
	"fieldquote/core/types"
)

// AreaExteriorWalls is the area type carrying the mandated
// cost-effective wall assembly
const AreaExteriorWalls = "exterior_walls"

// AreaRoof is the area type carrying the R60/R49 roof assemblies
const AreaRoof = "roof"

// certifiedAssembly pairs a match predicate's fields with the fixed,
// code-tested result substituted for the generic formula
type certifiedAssembly struct {
	// areaType must match exactly
	areaType string

	// construction must match when non-empty
	construction types.ConstructionType

	// framing must match when non-empty
	framing string

	// closedInches and openInches must match exactly
	closedInches float64
	openInches   float64

	// closedR, openR, totalR are the certified values. totalR is
	// authoritative even when it is not the sum of the layers.
	closedR float64
	openR   float64
	totalR  float64
}

func (a certifiedAssembly) matches(in types.HybridInput) bool {
	if in.AreaType != a.areaType {
		return false
	}
	if a.construction != "" && in.ConstructionType != a.construction {
		return false
	}
	if a.framing != "" && in.FramingSize != a.framing {
		return false
	}
	return inchesEqual(in.ClosedCellInches, a.closedInches) &&
		inchesEqual(in.OpenCellInches, a.openInches)
}

// certifiedAssemblies is checked in order before the generic formula.
// New code exceptions get appended here; the generic path never changes.
var certifiedAssemblies = []certifiedAssembly{
	// Locally-mandated cost-effective exterior wall assembly
	{areaType: AreaExteriorWalls, closedInches: 2.5, openInches: 3, closedR: 19, openR: 11, totalR: 30},

	// New-construction roof assemblies certified at R60
	{areaType: AreaRoof, construction: types.ConstructionNew, framing: "2x10", closedInches: 3, openInches: 9.5, closedR: 21, openR: 39, totalR: 60},
	{areaType: AreaRoof, construction: types.ConstructionNew, framing: "2x12", closedInches: 2, openInches: 11.5, closedR: 14, openR: 46, totalR: 60},

	// Remodel roof assemblies certified at R49
	{areaType: AreaRoof, construction: types.ConstructionRemodel, framing: "2x8", closedInches: 3, openInches: 6.5, closedR: 21, openR: 28, totalR: 49},
	{areaType: AreaRoof, construction: types.ConstructionRemodel, framing: "2x10", closedInches: 2, openInches: 9, closedR: 14, openR: 35, totalR: 49},
	{areaType: AreaRoof, construction: types.ConstructionRemodel, framing: "2x12", closedInches: 1.5, openInches: 11, closedR: 10.5, openR: 38.5, totalR: 49},
}

// Calculate resolves a hybrid assembly's R-value breakdown. Certified
// assemblies win over the generic per-inch formula, in list order.
func Calculate(in types.HybridInput) types.HybridSystemCalculation {
	for _, a := range certifiedAssemblies {
		if a.matches(in) {
			return types.HybridSystemCalculation{
				ClosedCellInches: in.ClosedCellInches,
				OpenCellInches:   in.OpenCellInches,
				ClosedCellRValue: a.closedR,
				OpenCellRValue:   a.openR,
				TotalRValue:      a.totalR,
				TotalInches:      in.ClosedCellInches + in.OpenCellInches,
			}
		}
	}

	closedR := round1(in.ClosedCellInches * ClosedCellRPerInch)
	openR := round1(in.OpenCellInches * OpenCellRPerInch)
	return types.HybridSystemCalculation{
		ClosedCellInches: in.ClosedCellInches,
		OpenCellInches:   in.OpenCellInches,
		ClosedCellRValue: closedR,
		OpenCellRValue:   openR,
		TotalRValue:      round1(closedR + openR),
		TotalInches:      in.ClosedCellInches + in.OpenCellInches,
	}
}

// Static per-inch rates for hybrid pricing: the catalog's reference
// price for each chemistry spread over its reference thickness.
var (
	closedCellRatePerInch = decimal.RequireFromString("8.70").Div(decimal.NewFromInt(7))
	openCellRatePerInch   = decimal.RequireFromString("1.65").Div(decimal.RequireFromString("3.5"))
)

// UnitPrice returns the per-square-foot price of a hybrid assembly
// from the static per-inch rates, rounded to the cent.
func UnitPrice(closedInches, openInches float64) decimal.Decimal {
	closed := decimal.NewFromFloat(closedInches).Mul(closedCellRatePerInch)
	open := decimal.NewFromFloat(openInches).Mul(openCellRatePerInch)
	return closed.Add(open).Round(2)
}

// UnitPriceFromCatalog prices a hybrid assembly from the catalog's
// nearest-R-value entries for each chemistry, falling back to the
// static per-inch rates when either lookup misses.
func UnitPriceFromCatalog(c *catalog.Catalog, closedInches, openInches float64) decimal.Decimal {
	closedR := round1(closedInches * ClosedCellRPerInch)
	openR := OpenCellRValue(openInches)

	closed := c.Resolve(types.FamilyClosedCellFoam, closedR, "")
	open := c.Resolve(types.FamilyOpenCellFoam, openR, "")
	if closed.IsZero() || open.IsZero() {
		return UnitPrice(closedInches, openInches)
	}
	return closed.Add(open).Round(2)
}

func inchesEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
