package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"fieldquote/core/types"
)

func defaultCatalog() *Catalog {
	c := NewCatalog()
	RegisterDefaults(c)
	return c
}

func wantRate(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("rate = %s, want %s", got, want)
	}
}

func TestResolveSameRateWithinTier(t *testing.T) {
	c := defaultCatalog()

	r1 := c.Resolve(types.FamilyOpenCellFoam, 22, "")
	r2 := c.Resolve(types.FamilyOpenCellFoam, 27, "")
	if !r1.Equal(r2) {
		t.Fatalf("rates within one tier differ: %s vs %s", r1, r2)
	}
	wantRate(t, r1, "3.10")
}

func TestResolveZeroSignals(t *testing.T) {
	c := defaultCatalog()

	if got := c.Resolve("", 19, ""); !got.IsZero() {
		t.Errorf("unset family resolved to %s, want 0", got)
	}
	if got := c.Resolve(types.FamilyBattFiberglass, 0, ""); !got.IsZero() {
		t.Errorf("zero R-value resolved to %s, want 0", got)
	}
	// Out of every tier's range is a silent miss, not an error
	if got := c.Resolve(types.FamilyBattFiberglass, 60, ""); !got.IsZero() {
		t.Errorf("out-of-range R-value resolved to %s, want 0", got)
	}
	if got := c.Resolve("spray_paint", 19, ""); !got.IsZero() {
		t.Errorf("unknown family resolved to %s, want 0", got)
	}
}

func TestResolveFractionalBetweenTiers(t *testing.T) {
	c := defaultCatalog()

	// Batt tiers run [1,13] then [14,15]; a field reading of R-13.5
	// sits between them and prices at the lower tier.
	wantRate(t, c.Resolve(types.FamilyBattFiberglass, 13.5, ""), "0.85")
	wantRate(t, c.Resolve(types.FamilyOpenCellFoam, 21.5, ""), "2.45")
	wantRate(t, c.Resolve(types.FamilyMineralWool, 25.5, "ceiling"), "2.50")

	// Below the table's floor there is no lower tier to fall back to
	if got := c.Resolve(types.FamilyBattFiberglass, 0.5, ""); !got.IsZero() {
		t.Errorf("below-floor R-value resolved to %s, want 0", got)
	}
}

func TestResolveMineralWoolSideHints(t *testing.T) {
	c := defaultCatalog()

	wantRate(t, c.Resolve(types.FamilyMineralWool, 20, "garage wall"), "2.30")
	wantRate(t, c.Resolve(types.FamilyMineralWool, 20, "ceiling"), "2.50")

	// Legacy no-hint convention: R-15 implies wall, R-25 implies ceiling
	wantRate(t, c.Resolve(types.FamilyMineralWool, 15, ""), "1.60")
	wantRate(t, c.Resolve(types.FamilyMineralWool, 25, ""), "2.50")
}

func TestDefaultCatalogValidates(t *testing.T) {
	if err := defaultCatalog().Validate(); err != nil {
		t.Fatalf("default catalog failed validation: %v", err)
	}
}

func TestValidateMissingTable(t *testing.T) {
	c := NewCatalog()
	c.Register(types.FamilyOpenCellFoam, types.PricingRule{MinRValue: 1, MaxRValue: 38, PricePerSqFt: decimal.RequireFromString("2.00")})

	err := c.Validate()
	if err == nil {
		t.Fatal("expected validation error for missing tables, got nil")
	}
	t.Logf("validation correctly failed: %v", err)
}

func TestValidateOverlappingTiers(t *testing.T) {
	c := defaultCatalog()
	c.Register(types.FamilyBattFiberglass, types.PricingRule{MinRValue: 10, MaxRValue: 20, PricePerSqFt: decimal.RequireFromString("1.00")})

	if err := c.Validate(); err == nil {
		t.Fatal("expected validation error for overlapping tiers, got nil")
	}
}

func TestLoadHCL(t *testing.T) {
	src := `
family "open_cell_foam" {
  tier {
    min_r = 1
    max_r = 21
    price = "2.10"
  }
  tier {
    min_r     = 22
    max_r     = 38
    price     = "3.40"
    thickness = "8in"
  }
}

family "closed_cell_foam" {
  tier {
    min_r = 1
    max_r = 35
    price = "4.00"
  }
}

family "batt_fiberglass" {
  tier {
    min_r = 1
    max_r = 38
    price = "1.10"
  }
}

family "blown_fiberglass" {
  tier {
    min_r = 1
    max_r = 49
    price = "1.30"
  }
}

family "mineral_wool" {
  tier {
    min_r = 1
    max_r = 23
    price = "1.80"
    side  = "wall"
  }
  tier {
    min_r = 1
    max_r = 30
    price = "2.60"
    side  = "ceiling"
  }
}
`
	path := filepath.Join(t.TempDir(), "shop.rates.hcl")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadHCL(path)
	if err != nil {
		t.Fatalf("LoadHCL failed: %v", err)
	}

	wantRate(t, c.Resolve(types.FamilyOpenCellFoam, 30, ""), "3.40")
	wantRate(t, c.Resolve(types.FamilyMineralWool, 20, "wall"), "1.80")
}

func TestLoadHCLBadPrice(t *testing.T) {
	src := `
family "open_cell_foam" {
  tier {
    min_r = 1
    max_r = 38
    price = "lots"
  }
}
`
	path := filepath.Join(t.TempDir(), "bad.rates.hcl")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadHCL(path); err == nil {
		t.Fatal("expected error for unparseable price, got nil")
	}
}
