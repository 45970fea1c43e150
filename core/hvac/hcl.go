// Package hvac - HCL rate file loading
package hvac

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	errs "fieldquote/internal/errors"

	"fieldquote/core/types"
)

// hvacRateFile is the HCL schema:
//
//	version = "2025.2"
//
//	system "central_air" {
//	  base    = "4500"
//	  per_ton = "800"
//	}
//
//	ductwork {
//	  rate_per_foot = "12.50"
//	  minimum       = "450"
//	}
//
// Omitted blocks keep the built-in defaults; systems replace their
// default entry individually.
type hvacRateFile struct {
	Version    string           `hcl:"version,optional"`
	Systems    []systemBlock    `hcl:"system,block"`
	Ductwork   *ductworkBlock   `hcl:"ductwork,block"`
	Vents      *ventsBlock      `hcl:"vents,block"`
	Services   *servicesBlock   `hcl:"services,block"`
	Complexity *complexityBlock `hcl:"complexity,block"`
	Labor      *laborBlock      `hcl:"labor,block"`
}

type systemBlock struct {
	Name   string `hcl:"name,label"`
	Base   string `hcl:"base"`
	PerTon string `hcl:"per_ton"`
}

type ductworkBlock struct {
	RatePerFoot string `hcl:"rate_per_foot"`
	Minimum     string `hcl:"minimum"`
}

type ventsBlock struct {
	Supply string `hcl:"supply"`
	Return string `hcl:"return"`
}

type servicesBlock struct {
	Removal    string `hcl:"removal"`
	Electrical string `hcl:"electrical"`
	Permit     string `hcl:"permit"`
	Startup    string `hcl:"startup"`
}

type complexityBlock struct {
	Standard float64 `hcl:"standard"`
	Moderate float64 `hcl:"moderate"`
	Complex  float64 `hcl:"complex"`
}

type laborBlock struct {
	HourlyRate  string  `hcl:"hourly_rate"`
	BaseHours   float64 `hcl:"base_hours"`
	HoursPerTon float64 `hcl:"hours_per_ton"`
}

// LoadHCL reads a contractor HVAC rate file and overlays it on the
// built-in defaults, returning a full config ready for a Service.
func LoadHCL(path string) (types.HvacPricingConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return types.HvacPricingConfig{}, errs.Wrap(errs.TypeConfig, "failed to parse HVAC rate file", diags)
	}

	var rf hvacRateFile
	if diags := gohcl.DecodeBody(file.Body, nil, &rf); diags.HasErrors() {
		return types.HvacPricingConfig{}, errs.Wrap(errs.TypeConfig, "failed to decode HVAC rate file", diags)
	}

	cfg := DefaultConfig().Clone()
	if rf.Version != "" {
		cfg.Version = rf.Version
	}

	for _, sb := range rf.Systems {
		base, err := parseAmount(sb.Base, "base", sb.Name)
		if err != nil {
			return types.HvacPricingConfig{}, err
		}
		perTon, err := parseAmount(sb.PerTon, "per_ton", sb.Name)
		if err != nil {
			return types.HvacPricingConfig{}, err
		}
		st := types.SystemType(sb.Name)
		cfg.BasePrices[st] = base
		cfg.TonnageMultipliers[st] = perTon
	}

	if rf.Ductwork != nil {
		rate, err := parseAmount(rf.Ductwork.RatePerFoot, "rate_per_foot", "ductwork")
		if err != nil {
			return types.HvacPricingConfig{}, err
		}
		minimum, err := parseAmount(rf.Ductwork.Minimum, "minimum", "ductwork")
		if err != nil {
			return types.HvacPricingConfig{}, err
		}
		cfg.Ductwork = types.DuctworkConfig{RatePerFoot: rate, MinimumCharge: minimum}
	}

	if rf.Vents != nil {
		supply, err := parseAmount(rf.Vents.Supply, "supply", "vents")
		if err != nil {
			return types.HvacPricingConfig{}, err
		}
		ret, err := parseAmount(rf.Vents.Return, "return", "vents")
		if err != nil {
			return types.HvacPricingConfig{}, err
		}
		cfg.Vents = types.VentConfig{SupplyRate: supply, ReturnRate: ret}
	}

	if rf.Services != nil {
		removal, err := parseAmount(rf.Services.Removal, "removal", "services")
		if err != nil {
			return types.HvacPricingConfig{}, err
		}
		electrical, err := parseAmount(rf.Services.Electrical, "electrical", "services")
		if err != nil {
			return types.HvacPricingConfig{}, err
		}
		permit, err := parseAmount(rf.Services.Permit, "permit", "services")
		if err != nil {
			return types.HvacPricingConfig{}, err
		}
		startup, err := parseAmount(rf.Services.Startup, "startup", "services")
		if err != nil {
			return types.HvacPricingConfig{}, err
		}
		cfg.AdditionalServices = types.AdditionalServicesConfig{
			OldSystemRemoval:  removal,
			ElectricalUpgrade: electrical,
			Permit:            permit,
			StartupTesting:    startup,
		}
	}

	if rf.Complexity != nil {
		cfg.Complexity = map[types.ComplexityTier]float64{
			types.ComplexityStandard: rf.Complexity.Standard,
			types.ComplexityModerate: rf.Complexity.Moderate,
			types.ComplexityComplex:  rf.Complexity.Complex,
		}
	}

	if rf.Labor != nil {
		rate, err := parseAmount(rf.Labor.HourlyRate, "hourly_rate", "labor")
		if err != nil {
			return types.HvacPricingConfig{}, err
		}
		cfg.Labor = types.LaborConfig{
			HourlyRate:  rate,
			BaseHours:   rf.Labor.BaseHours,
			HoursPerTon: rf.Labor.HoursPerTon,
		}
	}

	return cfg, nil
}

func parseAmount(raw, attr, block string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errs.Wrapf(errs.TypeConfig, err, "%s: bad %s %q", block, attr, raw)
	}
	return d, nil
}
