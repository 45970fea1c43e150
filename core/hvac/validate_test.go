package hvac

import (
	"testing"

	"fieldquote/core/types"
)

func validMeasurement() types.HvacSystemMeasurement {
	return types.HvacSystemMeasurement{
		SystemType:   types.SystemCentralAir,
		Tonnage:      3,
		SEER2:        15,
		DuctworkFeet: 450,
		SupplyVents:  6,
		ReturnVents:  2,
		Complexity:   types.ComplexityStandard,
	}
}

func TestValidateCleanMeasurement(t *testing.T) {
	result := NewService().Validate(validMeasurement())

	if !result.IsValid {
		t.Fatalf("clean measurement invalid: %v", result.Warnings)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("unexpected recommendations: %v", result.Recommendations)
	}
}

func TestValidateTonnageRange(t *testing.T) {
	m := validMeasurement()
	m.Tonnage = 12
	m.DuctworkFeet = 0
	m.SupplyVents = 0

	result := NewService().Validate(m)
	if result.IsValid {
		t.Fatal("12-ton system passed validation")
	}
	if len(result.Warnings) != 1 {
		t.Errorf("warnings = %v, want exactly the tonnage warning", result.Warnings)
	}
}

func TestValidateLowSEER2(t *testing.T) {
	m := validMeasurement()
	m.SEER2 = 13

	result := NewService().Validate(m)
	if result.IsValid {
		t.Fatal("sub-minimum SEER2 passed validation")
	}
	if len(result.Recommendations) == 0 {
		t.Error("low SEER2 produced no recommendation")
	}
}

func TestValidateUnratedSEER2Skipped(t *testing.T) {
	// Zero means not yet entered, not sub-minimum
	m := validMeasurement()
	m.SEER2 = 0

	result := NewService().Validate(m)
	if !result.IsValid {
		t.Fatalf("unrated SEER2 warned: %v", result.Warnings)
	}
}

func TestValidateHeatPumpNeedsHSPF2(t *testing.T) {
	m := validMeasurement()
	m.SystemType = types.SystemHeatPump
	m.HSPF2 = 0

	result := NewService().Validate(m)
	if result.IsValid {
		t.Fatal("heat pump without HSPF2 passed validation")
	}

	m.HSPF2 = 8.1
	result = NewService().Validate(m)
	if !result.IsValid {
		t.Fatalf("rated heat pump warned: %v", result.Warnings)
	}
}

func TestValidateDuctworkRuleOfThumb(t *testing.T) {
	m := validMeasurement()
	m.DuctworkFeet = 900 // 3 tons suggests ~450 ft

	result := NewService().Validate(m)
	if !result.IsValid {
		t.Fatalf("ductwork deviation raised a warning: %v", result.Warnings)
	}
	if len(result.Recommendations) == 0 {
		t.Error("oversized ductwork produced no recommendation")
	}
}

func TestValidateSupplyVentRuleOfThumb(t *testing.T) {
	m := validMeasurement()
	m.SupplyVents = 12 // 3 tons suggests ~6

	result := NewService().Validate(m)
	if !result.IsValid {
		t.Fatalf("vent deviation raised a warning: %v", result.Warnings)
	}
	if len(result.Recommendations) == 0 {
		t.Error("excess supply vents produced no recommendation")
	}
}

func TestValidateNeverBlocksPricing(t *testing.T) {
	m := validMeasurement()
	m.Tonnage = 15 // invalid, but still priceable

	svc := NewService()
	result := svc.Validate(m)
	if result.IsValid {
		t.Fatal("expected warnings for 15-ton system")
	}

	if _, err := svc.PriceSystem(m); err != nil {
		t.Fatalf("pricing blocked by validation state: %v", err)
	}
}
