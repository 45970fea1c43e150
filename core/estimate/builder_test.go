package estimate

import (
	"testing"

	"github.com/shopspring/decimal"

	"fieldquote/core/types"
)

func TestBuildGeneralComposition(t *testing.T) {
	// 1000 * 1.2 + 50 prep = 1250; 10% discount = 125; total 1125
	result := BuildGeneral(decimal.NewFromInt(1000), 100, types.GeneralEstimateOptions{
		PrepWork:             true,
		ComplexityMultiplier: 1.2,
		DiscountPercent:      10,
	})

	wantMoney(t, "complexity adjustment", result.ComplexityAdjustment, "200")
	wantMoney(t, "prep work", result.PrepWorkCost, "50")
	wantMoney(t, "discount", result.DiscountAmount, "125")
	wantMoney(t, "total", result.Total, "1125")
	if result.RequiresApproval {
		t.Error("RequiresApproval = true below the threshold")
	}
}

func TestBuildGeneralFireRetardant(t *testing.T) {
	result := BuildGeneral(decimal.NewFromInt(1000), 200, types.GeneralEstimateOptions{
		FireRetardant:        true,
		ComplexityMultiplier: 1.0,
	})

	wantMoney(t, "fire retardant", result.FireRetardantCost, "150")
	wantMoney(t, "total", result.Total, "1150")
}

func TestBuildGeneralApprovalThreshold(t *testing.T) {
	over := BuildGeneral(decimal.NewFromInt(11000), 0, types.GeneralEstimateOptions{ComplexityMultiplier: 1.0})
	if !over.RequiresApproval {
		t.Error("RequiresApproval = false above the threshold")
	}

	// The threshold itself does not require approval
	at := BuildGeneral(decimal.NewFromInt(10000), 0, types.GeneralEstimateOptions{ComplexityMultiplier: 1.0})
	if at.RequiresApproval {
		t.Error("RequiresApproval = true at exactly the threshold")
	}
}

func TestBuildGeneralClamping(t *testing.T) {
	// Multiplier below 1.0 clamps up, discount above 50 clamps down
	result := BuildGeneral(decimal.NewFromInt(1000), 0, types.GeneralEstimateOptions{
		ComplexityMultiplier: 0.5,
		DiscountPercent:      90,
	})

	wantMoney(t, "complexity adjustment", result.ComplexityAdjustment, "0")
	wantMoney(t, "discount", result.DiscountAmount, "500")
	wantMoney(t, "total", result.Total, "500")
}
