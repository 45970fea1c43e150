// Package hvac - HVAC pricing configuration
// The rate bundle is a value object: loaded or built once, validated,
// and replaced wholesale on update so in-flight calculations never see
// a half-changed config.
package hvac

import (
	"github.com/shopspring/decimal"

	errs "fieldquote/internal/errors"

	"fieldquote/core/types"
)

func dollars(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// DefaultConfig returns the shop's standing HVAC rates
func DefaultConfig() types.HvacPricingConfig {
	return types.HvacPricingConfig{
		Version: "2025.1",
		BasePrices: map[types.SystemType]decimal.Decimal{
			types.SystemCentralAir:  dollars(450000),
			types.SystemHeatPump:    dollars(550000),
			types.SystemFurnace:     dollars(380000),
			types.SystemMiniSplit:   dollars(320000),
			types.SystemPackageUnit: dollars(500000),
		},
		TonnageMultipliers: map[types.SystemType]decimal.Decimal{
			types.SystemCentralAir:  dollars(80000),
			types.SystemHeatPump:    dollars(95000),
			types.SystemFurnace:     dollars(60000),
			types.SystemMiniSplit:   dollars(70000),
			types.SystemPackageUnit: dollars(85000),
		},
		Ductwork: types.DuctworkConfig{
			RatePerFoot:   dollars(1250),
			MinimumCharge: dollars(45000),
		},
		Vents: types.VentConfig{
			SupplyRate: dollars(15000),
			ReturnRate: dollars(20000),
		},
		AdditionalServices: types.AdditionalServicesConfig{
			OldSystemRemoval:  dollars(50000),
			ElectricalUpgrade: dollars(80000),
			Permit:            dollars(35000),
			StartupTesting:    dollars(25000),
		},
		Complexity: map[types.ComplexityTier]float64{
			types.ComplexityStandard: 1.0,
			types.ComplexityModerate: 1.25,
			types.ComplexityComplex:  1.5,
		},
		Labor: types.LaborConfig{
			HourlyRate:  dollars(8500),
			BaseHours:   8,
			HoursPerTon: 3,
		},
	}
}

// ratesFor pulls the per-system-type rates a measurement references.
// A referenced type or tier with no configured rate is a configuration
// bug and fails loudly; it is never silently defaulted.
func ratesFor(cfg types.HvacPricingConfig, systemType types.SystemType, tier types.ComplexityTier) (base, perTon decimal.Decimal, multiplier float64, err error) {
	base, ok := cfg.BasePrices[systemType]
	if !ok {
		return base, perTon, 0, errs.Configf("no base price configured for system type %q", systemType)
	}
	perTon, ok = cfg.TonnageMultipliers[systemType]
	if !ok {
		return base, perTon, 0, errs.Configf("no tonnage multiplier configured for system type %q", systemType)
	}
	multiplier, ok = cfg.Complexity[tier]
	if !ok {
		return base, perTon, 0, errs.Configf("no multiplier configured for complexity tier %q", tier)
	}
	return base, perTon, multiplier, nil
}
