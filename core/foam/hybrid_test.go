package foam

import (
	"testing"

	"github.com/shopspring/decimal"

	"fieldquote/core/catalog"
	"fieldquote/core/types"
)

func TestExteriorWallCertifiedAssembly(t *testing.T) {
	// The mandated wall assembly reports the tested values, not the
	// formula's 17.5 + 11.4 = 28.9
	calc := Calculate(types.HybridInput{
		ClosedCellInches: 2.5,
		OpenCellInches:   3,
		AreaType:         AreaExteriorWalls,
	})

	if calc.ClosedCellRValue != 19 || calc.OpenCellRValue != 11 || calc.TotalRValue != 30 {
		t.Fatalf("certified wall assembly = {%g, %g, %g}, want {19, 11, 30}",
			calc.ClosedCellRValue, calc.OpenCellRValue, calc.TotalRValue)
	}
	if calc.TotalInches != 5.5 {
		t.Errorf("total inches = %g, want 5.5", calc.TotalInches)
	}
}

func TestGenericFormulaWithoutAreaType(t *testing.T) {
	// Same inches, no area type: the generic formula applies
	calc := Calculate(types.HybridInput{
		ClosedCellInches: 2.5,
		OpenCellInches:   3,
	})

	if calc.ClosedCellRValue != 17.5 {
		t.Errorf("closed-cell R = %g, want 17.5", calc.ClosedCellRValue)
	}
	if calc.OpenCellRValue != 11.4 {
		t.Errorf("open-cell R = %g, want 11.4", calc.OpenCellRValue)
	}
	if calc.TotalRValue != 28.9 {
		t.Errorf("total R = %g, want 28.9", calc.TotalRValue)
	}
}

func TestRoofCertifiedAssemblies(t *testing.T) {
	cases := []struct {
		name         string
		construction types.ConstructionType
		framing      string
		closed, open float64
		wantTotal    float64
	}{
		{"new 2x10", types.ConstructionNew, "2x10", 3, 9.5, 60},
		{"new 2x12", types.ConstructionNew, "2x12", 2, 11.5, 60},
		{"remodel 2x8", types.ConstructionRemodel, "2x8", 3, 6.5, 49},
		{"remodel 2x10", types.ConstructionRemodel, "2x10", 2, 9, 49},
		{"remodel 2x12", types.ConstructionRemodel, "2x12", 1.5, 11, 49},
	}

	for _, tc := range cases {
		calc := Calculate(types.HybridInput{
			ClosedCellInches: tc.closed,
			OpenCellInches:   tc.open,
			FramingSize:      tc.framing,
			AreaType:         AreaRoof,
			ConstructionType: tc.construction,
		})
		if calc.TotalRValue != tc.wantTotal {
			t.Errorf("%s: total R = %g, want %g", tc.name, calc.TotalRValue, tc.wantTotal)
		}
		if calc.ClosedCellRValue+calc.OpenCellRValue != calc.TotalRValue {
			t.Errorf("%s: certified layers %g+%g do not sum to stated total %g",
				tc.name, calc.ClosedCellRValue, calc.OpenCellRValue, calc.TotalRValue)
		}
	}
}

func TestRoofFallsThroughOnMismatch(t *testing.T) {
	// A roof triple that matches no certified assembly uses the formula
	calc := Calculate(types.HybridInput{
		ClosedCellInches: 3,
		OpenCellInches:   9.5,
		FramingSize:      "2x10",
		AreaType:         AreaRoof,
		ConstructionType: types.ConstructionRemodel, // certified combo is new
	})

	if calc.TotalRValue != 57.1 {
		t.Errorf("total R = %g, want generic 57.1", calc.TotalRValue)
	}
}

func TestCalculateIdempotent(t *testing.T) {
	in := types.HybridInput{ClosedCellInches: 2, OpenCellInches: 8}
	first := Calculate(in)
	second := Calculate(in)
	if first != second {
		t.Fatalf("identical inputs gave different results: %+v vs %+v", first, second)
	}
}

func TestUnitPrice(t *testing.T) {
	// 2.5 * (8.70/7) + 3 * (1.65/3.5) = 3.1071 + 1.4143 = 4.52
	got := UnitPrice(2.5, 3)
	if !got.Equal(decimal.RequireFromString("4.52")) {
		t.Fatalf("UnitPrice(2.5, 3) = %s, want 4.52", got)
	}
}

func TestUnitPriceFromCatalog(t *testing.T) {
	c := catalog.NewCatalog()
	catalog.RegisterDefaults(c)

	// 2" closed-cell is R14 (catalog 3.60), 3" open-cell clamps to R13
	// (catalog 1.65)
	got := UnitPriceFromCatalog(c, 2, 3)
	if !got.Equal(decimal.RequireFromString("5.25")) {
		t.Fatalf("UnitPriceFromCatalog(2, 3) = %s, want 5.25", got)
	}

	// A miss in either table falls back to the static rates
	empty := catalog.NewCatalog()
	fallback := UnitPriceFromCatalog(empty, 2, 3)
	if !fallback.Equal(UnitPrice(2, 3)) {
		t.Fatalf("fallback price = %s, want %s", fallback, UnitPrice(2, 3))
	}
}
