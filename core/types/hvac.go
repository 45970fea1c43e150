// Package types - HVAC pricing types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// SystemType identifies an HVAC system category
type SystemType string

const (
	SystemCentralAir  SystemType = "central_air"
	SystemHeatPump    SystemType = "heat_pump"
	SystemFurnace     SystemType = "furnace"
	SystemMiniSplit   SystemType = "mini_split"
	SystemPackageUnit SystemType = "package_unit"
)

// String returns the string representation
func (s SystemType) String() string {
	return string(s)
}

// ComplexityTier identifies an installation difficulty tier
type ComplexityTier string

const (
	ComplexityStandard ComplexityTier = "standard"
	ComplexityModerate ComplexityTier = "moderate"
	ComplexityComplex  ComplexityTier = "complex"
)

// DuctworkConfig prices duct runs by the foot with a minimum charge
type DuctworkConfig struct {
	// RatePerFoot is the per-foot installation rate
	RatePerFoot decimal.Decimal `json:"rate_per_foot"`

	// MinimumCharge applies whenever any ductwork is installed
	MinimumCharge decimal.Decimal `json:"minimum_charge"`
}

// VentConfig prices supply and return vents per unit
type VentConfig struct {
	// SupplyRate is the per-vent price for supply vents
	SupplyRate decimal.Decimal `json:"supply_rate"`

	// ReturnRate is the per-vent price for return vents
	ReturnRate decimal.Decimal `json:"return_rate"`
}

// AdditionalServicesConfig holds the flat fees for flag-gated services
type AdditionalServicesConfig struct {
	// OldSystemRemoval covers tear-out and haul-away of the old unit
	OldSystemRemoval decimal.Decimal `json:"old_system_removal"`

	// ElectricalUpgrade covers panel/circuit work for the new unit
	ElectricalUpgrade decimal.Decimal `json:"electrical_upgrade"`

	// Permit covers municipal permit filing
	Permit decimal.Decimal `json:"permit"`

	// StartupTesting covers commissioning and test of the installed system
	StartupTesting decimal.Decimal `json:"startup_testing"`
}

// LaborConfig is the labor model for installation time and cost
type LaborConfig struct {
	// HourlyRate is the labor billing rate
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	// BaseHours is the fixed time any installation takes
	BaseHours float64 `json:"base_hours"`

	// HoursPerTon is the additional time per ton of capacity
	HoursPerTon float64 `json:"hours_per_ton"`
}

// HvacPricingConfig is the versioned rate bundle the pricing service
// calculates from. It is a value object: never mutated mid-calculation,
// replaced wholesale on update.
type HvacPricingConfig struct {
	// Version identifies the rate bundle revision
	Version string `json:"version"`

	// BasePrices is the flat equipment+install base price per system type
	BasePrices map[SystemType]decimal.Decimal `json:"base_prices"`

	// TonnageMultipliers is the per-ton price per system type
	TonnageMultipliers map[SystemType]decimal.Decimal `json:"tonnage_multipliers"`

	// Ductwork prices duct runs
	Ductwork DuctworkConfig `json:"ductwork"`

	// Vents prices supply/return vents
	Vents VentConfig `json:"vents"`

	// AdditionalServices holds the flag-gated flat fees
	AdditionalServices AdditionalServicesConfig `json:"additional_services"`

	// Complexity maps each tier to its multiplier
	Complexity map[ComplexityTier]float64 `json:"complexity"`

	// Labor is the installation labor model
	Labor LaborConfig `json:"labor"`
}

// Clone returns a deep copy so callers can derive a new config
// without touching one an in-flight calculation may hold.
func (c HvacPricingConfig) Clone() HvacPricingConfig {
	out := c
	out.BasePrices = make(map[SystemType]decimal.Decimal, len(c.BasePrices))
	for k, v := range c.BasePrices {
		out.BasePrices[k] = v
	}
	out.TonnageMultipliers = make(map[SystemType]decimal.Decimal, len(c.TonnageMultipliers))
	for k, v := range c.TonnageMultipliers {
		out.TonnageMultipliers[k] = v
	}
	out.Complexity = make(map[ComplexityTier]float64, len(c.Complexity))
	for k, v := range c.Complexity {
		out.Complexity[k] = v
	}
	return out
}

// HvacSystemMeasurement is one HVAC unit's field specification.
// Consumed read-only by the pricing service; CalculatedPrice is a cache
// of the service's output, never ground truth.
type HvacSystemMeasurement struct {
	// ID is the caller's identifier for the system, if any
	ID string `json:"id,omitempty"`

	// SystemType selects base price and tonnage multiplier
	SystemType SystemType `json:"system_type"`

	// Tonnage is cooling capacity in tons; expected range 0.5-20
	Tonnage float64 `json:"tonnage"`

	// SEER2 is the cooling efficiency rating, zero when unknown
	SEER2 float64 `json:"seer2,omitempty"`

	// HSPF2 is the heating efficiency rating, zero when unknown
	HSPF2 float64 `json:"hspf2,omitempty"`

	// DuctworkFeet is new duct footage to install
	DuctworkFeet float64 `json:"ductwork_feet"`

	// SupplyVents is the number of supply vents
	SupplyVents int `json:"supply_vents"`

	// ReturnVents is the number of return vents
	ReturnVents int `json:"return_vents"`

	// Complexity is the installation difficulty tier
	Complexity ComplexityTier `json:"complexity"`

	// OldSystemRemoval adds the removal flat fee
	OldSystemRemoval bool `json:"old_system_removal"`

	// ElectricalUpgrade adds the electrical flat fee
	ElectricalUpgrade bool `json:"electrical_upgrade"`

	// Permit adds the permit flat fee
	Permit bool `json:"permit"`

	// StartupTesting adds the startup/testing flat fee
	StartupTesting bool `json:"startup_testing"`

	// PriceOverride is a manager-entered final price, nil when unset
	PriceOverride *decimal.Decimal `json:"price_override,omitempty"`

	// OverrideReason is the manager's justification. The UI requires it;
	// the engine accepts an override without one.
	OverrideReason string `json:"override_reason,omitempty"`

	// CalculatedPrice caches the last pricing output. Derived data.
	CalculatedPrice decimal.Decimal `json:"calculated_price,omitempty"`
}

// HvacPricingBreakdown is the full decomposition of one system's price.
// Recomputed on every call; never cached across configuration changes.
type HvacPricingBreakdown struct {
	// SystemID echoes the measurement's ID
	SystemID string `json:"system_id,omitempty"`

	// SystemType snapshots the priced system type
	SystemType SystemType `json:"system_type"`

	// Tonnage snapshots the priced tonnage
	Tonnage float64 `json:"tonnage"`

	// BaseSystemCost is the flat base price for the system type
	BaseSystemCost decimal.Decimal `json:"base_system_cost"`

	// TonnageCost is tonnage times the per-ton multiplier
	TonnageCost decimal.Decimal `json:"tonnage_cost"`

	// DuctworkCost is footage times rate, floored at the minimum charge
	DuctworkCost decimal.Decimal `json:"ductwork_cost"`

	// SupplyVentsCost is supply vent count times the supply rate
	SupplyVentsCost decimal.Decimal `json:"supply_vents_cost"`

	// ReturnVentsCost is return vent count times the return rate
	ReturnVentsCost decimal.Decimal `json:"return_vents_cost"`

	// OldSystemRemovalCost is the removal fee when selected
	OldSystemRemovalCost decimal.Decimal `json:"old_system_removal_cost"`

	// ElectricalUpgradeCost is the electrical fee when selected
	ElectricalUpgradeCost decimal.Decimal `json:"electrical_upgrade_cost"`

	// PermitCost is the permit fee when selected
	PermitCost decimal.Decimal `json:"permit_cost"`

	// StartupTestingCost is the startup/testing fee when selected
	StartupTestingCost decimal.Decimal `json:"startup_testing_cost"`

	// AdditionalServicesCost is the sum of the four service fees
	AdditionalServicesCost decimal.Decimal `json:"additional_services_cost"`

	// Subtotal is base + tonnage + ductwork + vents + additional services
	Subtotal decimal.Decimal `json:"subtotal"`

	// ComplexityMultiplier is the tier multiplier applied to materials
	ComplexityMultiplier float64 `json:"complexity_multiplier"`

	// LaborHours is (base + tonnage*perTon) * complexity
	LaborHours float64 `json:"labor_hours"`

	// LaborCost is LaborHours times the hourly rate
	LaborCost decimal.Decimal `json:"labor_cost"`

	// TotalBeforeOverride is the calculated total, retained for audit
	// display even when an override applies
	TotalBeforeOverride decimal.Decimal `json:"total_before_override"`

	// PriceOverride echoes the manager override, nil when unset
	PriceOverride *decimal.Decimal `json:"price_override,omitempty"`

	// OverrideReason echoes the manager's justification
	OverrideReason string `json:"override_reason,omitempty"`

	// FinalTotal is the override when present, else TotalBeforeOverride
	FinalTotal decimal.Decimal `json:"final_total"`

	// CalculatedAt is when the breakdown was computed. Metadata only;
	// identical inputs still count as identical results.
	CalculatedAt time.Time `json:"calculated_at"`
}

// HvacJobSummary aggregates the breakdowns of a multi-system job
type HvacJobSummary struct {
	// Systems holds one breakdown per input measurement, in input order
	Systems []HvacPricingBreakdown `json:"systems"`

	// SystemCount is the number of systems priced
	SystemCount int `json:"system_count"`

	// TotalTonnage sums tonnage across systems
	TotalTonnage float64 `json:"total_tonnage"`

	// TotalDuctworkFeet sums duct footage across systems
	TotalDuctworkFeet float64 `json:"total_ductwork_feet"`

	// TotalVents sums supply and return vents across systems
	TotalVents int `json:"total_vents"`

	// TotalMaterials sums each system's subtotal net of additional services
	TotalMaterials decimal.Decimal `json:"total_materials"`

	// TotalAdditionalServices sums the flag-gated service fees
	TotalAdditionalServices decimal.Decimal `json:"total_additional_services"`

	// TotalLabor sums labor cost across systems
	TotalLabor decimal.Decimal `json:"total_labor"`

	// GrandTotal sums each system's final total
	GrandTotal decimal.Decimal `json:"grand_total"`

	// TotalLaborHours sums labor hours across systems
	TotalLaborHours float64 `json:"total_labor_hours"`

	// EstimatedInstallDays is ceil(TotalLaborHours / 8)
	EstimatedInstallDays int `json:"estimated_install_days"`
}

// PriceRange is a low/high band around a point estimate
type PriceRange struct {
	// Low is the bottom of the band
	Low decimal.Decimal `json:"low"`

	// High is the top of the band
	High decimal.Decimal `json:"high"`
}

// QuickEstimate is a pre-measurement ballpark figure
type QuickEstimate struct {
	// EstimatedPrice is the simplified point estimate
	EstimatedPrice decimal.Decimal `json:"estimated_price"`

	// Range is a +/-15% band around the point estimate
	Range PriceRange `json:"price_range"`
}

// ValidationResult is the advisory output of the specification checks.
// It never blocks pricing.
type ValidationResult struct {
	// IsValid is true when no warnings were raised
	IsValid bool `json:"is_valid"`

	// Warnings flag values that look wrong
	Warnings []string `json:"warnings"`

	// Recommendations suggest review; they never affect validity
	Recommendations []string `json:"recommendations"`
}
