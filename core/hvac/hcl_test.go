package hvac

import (
	"os"
	"path/filepath"
	"testing"

	"fieldquote/core/types"
)

func TestLoadHCLOverlay(t *testing.T) {
	src := `
version = "2025.2"

system "central_air" {
  base    = "4800"
  per_ton = "825"
}

labor {
  hourly_rate   = "95"
  base_hours    = 8
  hours_per_ton = 3
}
`
	path := filepath.Join(t.TempDir(), "shop.hvac.hcl")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHCL(path)
	if err != nil {
		t.Fatalf("LoadHCL failed: %v", err)
	}

	if cfg.Version != "2025.2" {
		t.Errorf("version = %s, want 2025.2", cfg.Version)
	}
	wantMoney(t, "central air base", cfg.BasePrices[types.SystemCentralAir], "4800")
	wantMoney(t, "labor rate", cfg.Labor.HourlyRate, "95")

	// Unmentioned sections keep their defaults
	wantMoney(t, "heat pump base", cfg.BasePrices[types.SystemHeatPump], "5500")
	wantMoney(t, "ductwork rate", cfg.Ductwork.RatePerFoot, "12.50")
}

func TestLoadHCLBadAmount(t *testing.T) {
	src := `
system "central_air" {
  base    = "a lot"
  per_ton = "825"
}
`
	path := filepath.Join(t.TempDir(), "bad.hvac.hcl")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadHCL(path); err == nil {
		t.Fatal("expected error for unparseable amount, got nil")
	}
}
