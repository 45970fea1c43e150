// Package types - Insulation domain types
package types

import "github.com/shopspring/decimal"

// InsulationFamily identifies a material family with its own rate table
type InsulationFamily string

const (
	FamilyOpenCellFoam    InsulationFamily = "open_cell_foam"
	FamilyClosedCellFoam  InsulationFamily = "closed_cell_foam"
	FamilyBattFiberglass  InsulationFamily = "batt_fiberglass"
	FamilyBlownFiberglass InsulationFamily = "blown_fiberglass"
	FamilyMineralWool     InsulationFamily = "mineral_wool"
	FamilyHybrid          InsulationFamily = "hybrid"
)

// String returns the string representation
func (f InsulationFamily) String() string {
	return string(f)
}

// Families lists every family that carries its own rate table.
// Hybrid is priced per-layer and deliberately excluded.
func Families() []InsulationFamily {
	return []InsulationFamily{
		FamilyOpenCellFoam,
		FamilyClosedCellFoam,
		FamilyBattFiberglass,
		FamilyBlownFiberglass,
		FamilyMineralWool,
	}
}

// SurfaceSide distinguishes wall and ceiling rate sub-tables
// for families priced differently by installation surface.
type SurfaceSide string

const (
	SideWall    SurfaceSide = "wall"
	SideCeiling SurfaceSide = "ceiling"
)

// PricingRule is one tier of a family's rate table.
// A rule matches when MinRValue <= r <= MaxRValue.
type PricingRule struct {
	// MinRValue is the inclusive lower bound of the tier
	MinRValue float64 `json:"min_r_value"`

	// MaxRValue is the inclusive upper bound of the tier
	MaxRValue float64 `json:"max_r_value"`

	// PricePerSqFt is the catalog price per square foot
	PricePerSqFt decimal.Decimal `json:"price_per_sq_ft"`

	// ThicknessLabel is the installed-thickness label shown on quotes
	ThicknessLabel string `json:"thickness_label"`

	// SideNote marks wall/ceiling sub-tables where a family needs them
	SideNote SurfaceSide `json:"side_note,omitempty"`
}

// Matches reports whether the rule covers the given R-value
func (r PricingRule) Matches(rValue float64) bool {
	return rValue >= r.MinRValue && rValue <= r.MaxRValue
}

// MeasurementLineItem is one field measurement to be priced.
// Produced by the measurement-capture layer; read-only here.
type MeasurementLineItem struct {
	// SquareFeet is the measured area
	SquareFeet float64 `json:"square_feet"`

	// Family selects the rate table; empty means not yet chosen
	Family InsulationFamily `json:"insulation_family,omitempty"`

	// RValue is the target thermal resistance
	RValue float64 `json:"r_value"`

	// AreaType is a free-form surface hint (e.g. "exterior_walls", "ceiling")
	AreaType string `json:"area_type,omitempty"`
}

// ItemizedPrice is the priced form of one measurement line item
type ItemizedPrice struct {
	// PricePerSqFt is the resolved unit rate; zero means "to be determined"
	PricePerSqFt decimal.Decimal `json:"price_per_sq_ft"`

	// TotalPrice is PricePerSqFt * SquareFeet, rounded to the cent
	TotalPrice decimal.Decimal `json:"total_price"`
}

// InsulationEstimate is the output of the insulation estimate calculator
type InsulationEstimate struct {
	// Subtotal is the sum of all itemized totals
	Subtotal decimal.Decimal `json:"subtotal"`

	// Total equals Subtotal; tax is a collaborator concern
	Total decimal.Decimal `json:"total"`

	// TaxRate is carried through for downstream layers, never applied here
	TaxRate decimal.Decimal `json:"tax_rate"`

	// ItemizedPrices holds one entry per input line item, in input order
	ItemizedPrices []ItemizedPrice `json:"itemized_prices"`
}

// HybridSystemCalculation is the derived R-value breakdown of a
// closed-cell + open-cell assembly. Never persisted; recomputed on demand.
type HybridSystemCalculation struct {
	// ClosedCellInches is the closed-cell layer thickness
	ClosedCellInches float64 `json:"closed_cell_inches"`

	// OpenCellInches is the open-cell layer thickness
	OpenCellInches float64 `json:"open_cell_inches"`

	// ClosedCellRValue is the closed-cell layer's effective R-value
	ClosedCellRValue float64 `json:"closed_cell_r_value"`

	// OpenCellRValue is the open-cell layer's effective R-value
	OpenCellRValue float64 `json:"open_cell_r_value"`

	// TotalRValue is the assembly R-value. For certified assemblies this
	// is the tested value, which may not equal the sum of the layers.
	TotalRValue float64 `json:"total_r_value"`

	// TotalInches is the combined layer thickness
	TotalInches float64 `json:"total_inches"`
}

// ConstructionType distinguishes new construction from remodel work
type ConstructionType string

const (
	ConstructionNew     ConstructionType = "new"
	ConstructionRemodel ConstructionType = "remodel"
)

// HybridInput describes one hybrid assembly to calculate
type HybridInput struct {
	// ClosedCellInches is the closed-cell layer thickness
	ClosedCellInches float64 `json:"closed_cell_inches"`

	// OpenCellInches is the open-cell layer thickness
	OpenCellInches float64 `json:"open_cell_inches"`

	// FramingSize is the cavity framing (e.g. "2x10"), when known
	FramingSize string `json:"framing_size,omitempty"`

	// AreaType is the surface being insulated (e.g. "roof")
	AreaType string `json:"area_type,omitempty"`

	// ConstructionType is new or remodel, when known
	ConstructionType ConstructionType `json:"construction_type,omitempty"`
}

// GeneralEstimateOptions are the knobs layered on top of an
// insulation subtotal by the general estimate builder.
type GeneralEstimateOptions struct {
	// PrepWork adds surface preparation at a flat per-sqft rate
	PrepWork bool `json:"prep_work"`

	// FireRetardant adds a fire-retardant coating at a flat per-sqft rate
	FireRetardant bool `json:"fire_retardant"`

	// ComplexityMultiplier scales the base subtotal; valid range 1.0-2.0
	ComplexityMultiplier float64 `json:"complexity_multiplier"`

	// DiscountPercent is taken off the running subtotal; valid range 0-50
	DiscountPercent float64 `json:"discount_percent"`
}

// GeneralEstimate is the output of the general estimate builder
type GeneralEstimate struct {
	// BaseSubtotal is the insulation subtotal the estimate was built on
	BaseSubtotal decimal.Decimal `json:"base_subtotal"`

	// ComplexityAdjustment is the amount added by the complexity multiplier
	ComplexityAdjustment decimal.Decimal `json:"complexity_adjustment"`

	// PrepWorkCost is the surface-prep charge, zero when not selected
	PrepWorkCost decimal.Decimal `json:"prep_work_cost"`

	// FireRetardantCost is the coating charge, zero when not selected
	FireRetardantCost decimal.Decimal `json:"fire_retardant_cost"`

	// DiscountAmount is the amount subtracted by the discount
	DiscountAmount decimal.Decimal `json:"discount_amount"`

	// Total is the post-discount amount
	Total decimal.Decimal `json:"total"`

	// RequiresApproval flags totals above the approval threshold.
	// Advisory only; nothing in the engine gates on it.
	RequiresApproval bool `json:"requires_approval"`
}
