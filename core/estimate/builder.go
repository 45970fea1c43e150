// Package estimate - General estimate building
package estimate

import (
	"github.com/shopspring/decimal"

	"fieldquote/core/types"
)

var (
	// prepWorkRatePerSqFt is the flat surface-preparation rate
	prepWorkRatePerSqFt = decimal.RequireFromString("0.50")

	// fireRetardantRatePerSqFt is the flat fire-retardant coating rate
	fireRetardantRatePerSqFt = decimal.RequireFromString("0.75")

	// approvalThreshold flags totals that need a manager's sign-off
	approvalThreshold = decimal.NewFromInt(10000)
)

// BuildGeneral layers optional services, a complexity multiplier, and a
// discount on top of an insulation subtotal. Applied in order:
// complexity on the base subtotal only, then prep and fire-retardant
// area charges, then the discount off the running subtotal.
//
// RequiresApproval is advisory metadata for the workflow layer; nothing
// here gates on it.
func BuildGeneral(baseSubtotal decimal.Decimal, areaSqFt float64, opts types.GeneralEstimateOptions) types.GeneralEstimate {
	multiplier := clamp(opts.ComplexityMultiplier, 1.0, 2.0)
	adjusted := baseSubtotal.Mul(decimal.NewFromFloat(multiplier)).Round(2)

	out := types.GeneralEstimate{
		BaseSubtotal:         baseSubtotal,
		ComplexityAdjustment: adjusted.Sub(baseSubtotal),
		PrepWorkCost:         decimal.Zero,
		FireRetardantCost:    decimal.Zero,
		DiscountAmount:       decimal.Zero,
	}

	area := decimal.NewFromFloat(areaSqFt)
	running := adjusted
	if opts.PrepWork {
		out.PrepWorkCost = prepWorkRatePerSqFt.Mul(area).Round(2)
		running = running.Add(out.PrepWorkCost)
	}
	if opts.FireRetardant {
		out.FireRetardantCost = fireRetardantRatePerSqFt.Mul(area).Round(2)
		running = running.Add(out.FireRetardantCost)
	}

	discountPercent := clamp(opts.DiscountPercent, 0, 50)
	if discountPercent > 0 {
		out.DiscountAmount = running.
			Mul(decimal.NewFromFloat(discountPercent)).
			Div(decimal.NewFromInt(100)).
			Round(2)
	}

	out.Total = running.Sub(out.DiscountAmount)
	out.RequiresApproval = out.Total.GreaterThan(approvalThreshold)
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
