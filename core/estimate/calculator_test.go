package estimate

import (
	"testing"

	"github.com/shopspring/decimal"

	"fieldquote/core/catalog"
	"fieldquote/core/foam"
	"fieldquote/core/types"
)

func testCalculator() *Calculator {
	c := catalog.NewCatalog()
	catalog.RegisterDefaults(c)
	return NewCalculator(c)
}

func wantMoney(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s = %s, want %s", name, got, want)
	}
}

func TestEstimateEmptyList(t *testing.T) {
	result := testCalculator().Estimate(nil)

	wantMoney(t, "subtotal", result.Subtotal, "0")
	wantMoney(t, "total", result.Total, "0")
	if len(result.ItemizedPrices) != 0 {
		t.Errorf("itemized prices = %d entries, want 0", len(result.ItemizedPrices))
	}
}

func TestEstimateItemized(t *testing.T) {
	items := []types.MeasurementLineItem{
		{SquareFeet: 1000, Family: types.FamilyOpenCellFoam, RValue: 21},  // 2.45/sqft
		{SquareFeet: 500, Family: types.FamilyBattFiberglass, RValue: 19}, // 1.10/sqft
	}

	result := testCalculator().Estimate(items)

	if len(result.ItemizedPrices) != 2 {
		t.Fatalf("itemized prices = %d entries, want 2", len(result.ItemizedPrices))
	}
	wantMoney(t, "item 0 total", result.ItemizedPrices[0].TotalPrice, "2450")
	wantMoney(t, "item 1 total", result.ItemizedPrices[1].TotalPrice, "550")
	wantMoney(t, "subtotal", result.Subtotal, "3000")
	wantMoney(t, "total", result.Total, "3000")
}

func TestEstimateUnpricedItemsContributeZero(t *testing.T) {
	items := []types.MeasurementLineItem{
		{SquareFeet: 800, Family: "", RValue: 19},                          // family not chosen yet
		{SquareFeet: 400, Family: types.FamilyBlownFiberglass, RValue: 99}, // outside every tier
		{SquareFeet: 500, Family: types.FamilyBattFiberglass, RValue: 19},
	}

	result := testCalculator().Estimate(items)

	wantMoney(t, "unset family", result.ItemizedPrices[0].TotalPrice, "0")
	wantMoney(t, "out of range", result.ItemizedPrices[1].TotalPrice, "0")
	wantMoney(t, "subtotal", result.Subtotal, "550")
}

func TestEstimateHybridRouting(t *testing.T) {
	items := []types.MeasurementLineItem{
		{SquareFeet: 100, Family: types.FamilyHybrid, RValue: 38},
	}

	result := testCalculator().Estimate(items)

	layers := foam.LayersForTarget(38)
	want := foam.UnitPrice(layers.ClosedCellInches, layers.OpenCellInches)
	if !result.ItemizedPrices[0].PricePerSqFt.Equal(want) {
		t.Fatalf("hybrid unit price = %s, want %s", result.ItemizedPrices[0].PricePerSqFt, want)
	}
}

func TestEstimateIdempotent(t *testing.T) {
	items := []types.MeasurementLineItem{
		{SquareFeet: 1000, Family: types.FamilyOpenCellFoam, RValue: 21},
	}
	calc := testCalculator()

	first := calc.Estimate(items)
	second := calc.Estimate(items)
	if !first.Subtotal.Equal(second.Subtotal) || !first.Total.Equal(second.Total) {
		t.Fatalf("identical inputs gave different totals: %s vs %s", first.Total, second.Total)
	}
}
