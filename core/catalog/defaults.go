// Package catalog - Built-in rate tables
// These are the shop's standing rates; a contractor-specific HCL file
// replaces them wholesale (see LoadHCL).
package catalog

import (
	"github.com/shopspring/decimal"

	"fieldquote/core/types"
)

func rate(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// RegisterDefaults populates the catalog with the built-in tables
func RegisterDefaults(c *Catalog) {
	// Open-cell spray foam
	c.Register(types.FamilyOpenCellFoam, types.PricingRule{MinRValue: 1, MaxRValue: 13, PricePerSqFt: rate(165), ThicknessLabel: `3.5"`})
	c.Register(types.FamilyOpenCellFoam, types.PricingRule{MinRValue: 14, MaxRValue: 21, PricePerSqFt: rate(245), ThicknessLabel: `5.5"`})
	c.Register(types.FamilyOpenCellFoam, types.PricingRule{MinRValue: 22, MaxRValue: 27, PricePerSqFt: rate(310), ThicknessLabel: `7"`})
	c.Register(types.FamilyOpenCellFoam, types.PricingRule{MinRValue: 28, MaxRValue: 30, PricePerSqFt: rate(345), ThicknessLabel: `8"`})
	c.Register(types.FamilyOpenCellFoam, types.PricingRule{MinRValue: 31, MaxRValue: 38, PricePerSqFt: rate(430), ThicknessLabel: `10"`})

	// Closed-cell spray foam
	c.Register(types.FamilyClosedCellFoam, types.PricingRule{MinRValue: 1, MaxRValue: 7, PricePerSqFt: rate(190), ThicknessLabel: `1"`})
	c.Register(types.FamilyClosedCellFoam, types.PricingRule{MinRValue: 8, MaxRValue: 14, PricePerSqFt: rate(360), ThicknessLabel: `2"`})
	c.Register(types.FamilyClosedCellFoam, types.PricingRule{MinRValue: 15, MaxRValue: 21, PricePerSqFt: rate(525), ThicknessLabel: `3"`})
	c.Register(types.FamilyClosedCellFoam, types.PricingRule{MinRValue: 22, MaxRValue: 28, PricePerSqFt: rate(690), ThicknessLabel: `4"`})
	c.Register(types.FamilyClosedCellFoam, types.PricingRule{MinRValue: 29, MaxRValue: 35, PricePerSqFt: rate(850), ThicknessLabel: `5"`})

	// Batt fiberglass
	c.Register(types.FamilyBattFiberglass, types.PricingRule{MinRValue: 1, MaxRValue: 13, PricePerSqFt: rate(85), ThicknessLabel: `3.5"`})
	c.Register(types.FamilyBattFiberglass, types.PricingRule{MinRValue: 14, MaxRValue: 15, PricePerSqFt: rate(95), ThicknessLabel: `3.5"`})
	c.Register(types.FamilyBattFiberglass, types.PricingRule{MinRValue: 16, MaxRValue: 19, PricePerSqFt: rate(110), ThicknessLabel: `6.25"`})
	c.Register(types.FamilyBattFiberglass, types.PricingRule{MinRValue: 20, MaxRValue: 21, PricePerSqFt: rate(125), ThicknessLabel: `5.5"`})
	c.Register(types.FamilyBattFiberglass, types.PricingRule{MinRValue: 22, MaxRValue: 30, PricePerSqFt: rate(165), ThicknessLabel: `10"`})
	c.Register(types.FamilyBattFiberglass, types.PricingRule{MinRValue: 31, MaxRValue: 38, PricePerSqFt: rate(205), ThicknessLabel: `12"`})

	// Blown fiberglass
	c.Register(types.FamilyBlownFiberglass, types.PricingRule{MinRValue: 1, MaxRValue: 19, PricePerSqFt: rate(95), ThicknessLabel: `8"`})
	c.Register(types.FamilyBlownFiberglass, types.PricingRule{MinRValue: 20, MaxRValue: 30, PricePerSqFt: rate(140), ThicknessLabel: `11"`})
	c.Register(types.FamilyBlownFiberglass, types.PricingRule{MinRValue: 31, MaxRValue: 38, PricePerSqFt: rate(175), ThicknessLabel: `14"`})
	c.Register(types.FamilyBlownFiberglass, types.PricingRule{MinRValue: 39, MaxRValue: 49, PricePerSqFt: rate(220), ThicknessLabel: `18"`})

	// Mineral wool, split wall/ceiling
	c.Register(types.FamilyMineralWool, types.PricingRule{MinRValue: 1, MaxRValue: 15, PricePerSqFt: rate(160), ThicknessLabel: `3.5"`, SideNote: types.SideWall})
	c.Register(types.FamilyMineralWool, types.PricingRule{MinRValue: 16, MaxRValue: 23, PricePerSqFt: rate(230), ThicknessLabel: `5.5"`, SideNote: types.SideWall})
	c.Register(types.FamilyMineralWool, types.PricingRule{MinRValue: 16, MaxRValue: 25, PricePerSqFt: rate(250), ThicknessLabel: `6"`, SideNote: types.SideCeiling})
	c.Register(types.FamilyMineralWool, types.PricingRule{MinRValue: 26, MaxRValue: 30, PricePerSqFt: rate(295), ThicknessLabel: `7.25"`, SideNote: types.SideCeiling})
}
