// Package estimate - Insulation estimate calculation
// Turns measured line items into an itemized, summed estimate using the
// rate catalog; hybrid assemblies are priced per-layer through the foam
// calculator.
package estimate

import (
	"github.com/shopspring/decimal"

	"fieldquote/core/catalog"
	"fieldquote/core/foam"
	"fieldquote/core/types"
)

// Calculator prices measurement line items against a rate catalog
type Calculator struct {
	catalog *catalog.Catalog

	// TaxRate is carried into estimates for downstream layers.
	// The calculator itself never applies it.
	TaxRate decimal.Decimal
}

// NewCalculator creates a calculator over the given catalog
func NewCalculator(c *catalog.Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// Estimate prices each line item and sums the results. Unpriceable
// items (no family chosen yet, R-value outside every tier) contribute
// zero and stay itemized, so a half-entered job still quotes.
func (c *Calculator) Estimate(items []types.MeasurementLineItem) types.InsulationEstimate {
	out := types.InsulationEstimate{
		Subtotal:       decimal.Zero,
		TaxRate:        c.TaxRate,
		ItemizedPrices: make([]types.ItemizedPrice, 0, len(items)),
	}

	for _, item := range items {
		unit := c.unitPrice(item)
		total := unit.Mul(decimal.NewFromFloat(item.SquareFeet)).Round(2)

		out.ItemizedPrices = append(out.ItemizedPrices, types.ItemizedPrice{
			PricePerSqFt: unit,
			TotalPrice:   total,
		})
		out.Subtotal = out.Subtotal.Add(total)
	}

	// No tax applied here; total mirrors subtotal
	out.Total = out.Subtotal
	return out
}

func (c *Calculator) unitPrice(item types.MeasurementLineItem) decimal.Decimal {
	if item.Family == types.FamilyHybrid {
		if item.RValue == 0 {
			return decimal.Zero
		}
		layers := foam.LayersForTarget(item.RValue)
		return foam.UnitPrice(layers.ClosedCellInches, layers.OpenCellInches)
	}
	return c.catalog.Resolve(item.Family, item.RValue, item.AreaType)
}
