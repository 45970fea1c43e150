// Package hvac - Per-system pricing
package hvac

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fieldquote/core/types"
	"fieldquote/internal/logging"
)

// Service prices HVAC systems from an immutable rate config.
// UpdateConfig replaces the config wholesale; nothing ever mutates it
// in place, so concurrent calculations are safe by construction.
type Service struct {
	cfg types.HvacPricingConfig
	log *zap.Logger
}

// NewService creates a service over the default rates
func NewService() *Service {
	return NewServiceWithConfig(DefaultConfig())
}

// NewServiceWithConfig creates a service over an explicit rate config
func NewServiceWithConfig(cfg types.HvacPricingConfig) *Service {
	return &Service{
		cfg: cfg,
		log: logging.Named("hvac"),
	}
}

// Config returns the current rate config
func (s *Service) Config() types.HvacPricingConfig {
	return s.cfg
}

// UpdateConfig replaces the rate config wholesale
func (s *Service) UpdateConfig(cfg types.HvacPricingConfig) {
	s.log.Debug("replacing pricing config",
		zap.String("old_version", s.cfg.Version),
		zap.String("new_version", cfg.Version))
	s.cfg = cfg
}

// ConfigPatch carries sections to overlay onto the default rates.
// Nil sections keep the default.
type ConfigPatch struct {
	Version            string
	BasePrices         map[types.SystemType]decimal.Decimal
	TonnageMultipliers map[types.SystemType]decimal.Decimal
	Ductwork           *types.DuctworkConfig
	Vents              *types.VentConfig
	AdditionalServices *types.AdditionalServicesConfig
	Complexity         map[types.ComplexityTier]float64
	Labor              *types.LaborConfig
}

// PatchConfig shallow-merges a patch into a copy of the default rates
// and installs the result. A convenience for callers that only adjust a
// section or two; the pricing math itself always sees a full config.
func (s *Service) PatchConfig(patch ConfigPatch) {
	cfg := DefaultConfig().Clone()
	if patch.Version != "" {
		cfg.Version = patch.Version
	}
	for k, v := range patch.BasePrices {
		cfg.BasePrices[k] = v
	}
	for k, v := range patch.TonnageMultipliers {
		cfg.TonnageMultipliers[k] = v
	}
	if patch.Ductwork != nil {
		cfg.Ductwork = *patch.Ductwork
	}
	if patch.Vents != nil {
		cfg.Vents = *patch.Vents
	}
	if patch.AdditionalServices != nil {
		cfg.AdditionalServices = *patch.AdditionalServices
	}
	for k, v := range patch.Complexity {
		cfg.Complexity[k] = v
	}
	if patch.Labor != nil {
		cfg.Labor = *patch.Labor
	}
	s.UpdateConfig(cfg)
}

// PriceSystem decomposes one system's price. Composition order:
// base + tonnage + ductwork + vents + additional services form the
// materials subtotal; the complexity multiplier scales materials only,
// since labor's own multiplier is already baked into the hours; a
// manager override, when present, supersedes the calculated total but
// the calculated number is retained for audit display.
//
// The override reason is metadata: the engine accepts an override
// without one.
func (s *Service) PriceSystem(m types.HvacSystemMeasurement) (types.HvacPricingBreakdown, error) {
	tier := m.Complexity
	if tier == "" {
		tier = types.ComplexityStandard
	}

	base, perTon, multiplier, err := ratesFor(s.cfg, m.SystemType, tier)
	if err != nil {
		return types.HvacPricingBreakdown{}, err
	}

	b := types.HvacPricingBreakdown{
		SystemID:             m.ID,
		SystemType:           m.SystemType,
		Tonnage:              m.Tonnage,
		BaseSystemCost:       base,
		ComplexityMultiplier: multiplier,
		CalculatedAt:         time.Now().UTC(),
	}

	b.TonnageCost = perTon.Mul(decimal.NewFromFloat(m.Tonnage)).Round(2)

	b.DuctworkCost = decimal.Zero
	if m.DuctworkFeet > 0 {
		footage := s.cfg.Ductwork.RatePerFoot.Mul(decimal.NewFromFloat(m.DuctworkFeet)).Round(2)
		b.DuctworkCost = decimal.Max(footage, s.cfg.Ductwork.MinimumCharge)
	}

	b.SupplyVentsCost = s.cfg.Vents.SupplyRate.Mul(decimal.NewFromInt(int64(m.SupplyVents)))
	b.ReturnVentsCost = s.cfg.Vents.ReturnRate.Mul(decimal.NewFromInt(int64(m.ReturnVents)))

	b.OldSystemRemovalCost = serviceFee(m.OldSystemRemoval, s.cfg.AdditionalServices.OldSystemRemoval)
	b.ElectricalUpgradeCost = serviceFee(m.ElectricalUpgrade, s.cfg.AdditionalServices.ElectricalUpgrade)
	b.PermitCost = serviceFee(m.Permit, s.cfg.AdditionalServices.Permit)
	b.StartupTestingCost = serviceFee(m.StartupTesting, s.cfg.AdditionalServices.StartupTesting)
	b.AdditionalServicesCost = b.OldSystemRemovalCost.
		Add(b.ElectricalUpgradeCost).
		Add(b.PermitCost).
		Add(b.StartupTestingCost)

	b.Subtotal = b.BaseSystemCost.
		Add(b.TonnageCost).
		Add(b.DuctworkCost).
		Add(b.SupplyVentsCost).
		Add(b.ReturnVentsCost).
		Add(b.AdditionalServicesCost)

	b.LaborHours = roundHours((s.cfg.Labor.BaseHours + m.Tonnage*s.cfg.Labor.HoursPerTon) * multiplier)
	b.LaborCost = s.cfg.Labor.HourlyRate.Mul(decimal.NewFromFloat(b.LaborHours)).Round(2)

	b.TotalBeforeOverride = b.Subtotal.
		Mul(decimal.NewFromFloat(multiplier)).
		Round(2).
		Add(b.LaborCost)

	b.FinalTotal = b.TotalBeforeOverride
	if m.PriceOverride != nil {
		override := *m.PriceOverride
		b.PriceOverride = &override
		b.OverrideReason = m.OverrideReason
		b.FinalTotal = override
	}

	return b, nil
}

// QuickEstimate is the simplified pre-measurement figure: base,
// tonnage, ductwork, and labor only, with a +/-15% band. No vents,
// additional services, or override.
func (s *Service) QuickEstimate(systemType types.SystemType, tonnage, ductworkFeet float64, tier types.ComplexityTier) (types.QuickEstimate, error) {
	if tier == "" {
		tier = types.ComplexityStandard
	}

	base, perTon, multiplier, err := ratesFor(s.cfg, systemType, tier)
	if err != nil {
		return types.QuickEstimate{}, err
	}

	materials := base.Add(perTon.Mul(decimal.NewFromFloat(tonnage)).Round(2))
	if ductworkFeet > 0 {
		footage := s.cfg.Ductwork.RatePerFoot.Mul(decimal.NewFromFloat(ductworkFeet)).Round(2)
		materials = materials.Add(decimal.Max(footage, s.cfg.Ductwork.MinimumCharge))
	}

	hours := roundHours((s.cfg.Labor.BaseHours + tonnage*s.cfg.Labor.HoursPerTon) * multiplier)
	labor := s.cfg.Labor.HourlyRate.Mul(decimal.NewFromFloat(hours)).Round(2)

	point := materials.Mul(decimal.NewFromFloat(multiplier)).Round(2).Add(labor)

	band := decimal.RequireFromString("0.15")
	spread := point.Mul(band).Round(2)
	return types.QuickEstimate{
		EstimatedPrice: point,
		Range: types.PriceRange{
			Low:  point.Sub(spread),
			High: point.Add(spread),
		},
	}, nil
}

func serviceFee(selected bool, fee decimal.Decimal) decimal.Decimal {
	if !selected {
		return decimal.Zero
	}
	return fee
}

// roundHours pins labor hours to two decimals so totals stay
// reproducible across runs
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
