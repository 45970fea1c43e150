// Package catalog - HCL rate file loading
// Contractors keep their rate tables in a .rates.hcl file; this loader
// turns one into a validated Catalog.
package catalog

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	errs "fieldquote/internal/errors"

	"fieldquote/core/types"
)

// rateFile is the HCL schema:
//
//	family "open_cell_foam" {
//	  tier {
//	    min_r     = 1
//	    max_r     = 13
//	    price     = "1.65"
//	    thickness = "3.5in"
//	  }
//	}
type rateFile struct {
	Families []familyBlock `hcl:"family,block"`
}

type familyBlock struct {
	Name  string      `hcl:"name,label"`
	Tiers []tierBlock `hcl:"tier,block"`
}

type tierBlock struct {
	MinR      float64 `hcl:"min_r"`
	MaxR      float64 `hcl:"max_r"`
	Price     string  `hcl:"price"`
	Thickness string  `hcl:"thickness,optional"`
	Side      string  `hcl:"side,optional"`
}

// LoadHCL parses and validates a rate file, returning a ready catalog.
// The loaded catalog replaces the built-in tables wholesale; there is
// no per-family merging.
func LoadHCL(path string) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errs.Catalog("failed to parse rate file", diags)
	}

	var rf rateFile
	if diags := gohcl.DecodeBody(file.Body, nil, &rf); diags.HasErrors() {
		return nil, errs.Catalog("failed to decode rate file", diags)
	}

	c := NewCatalog()
	for _, fb := range rf.Families {
		family := types.InsulationFamily(fb.Name)
		for _, tb := range fb.Tiers {
			price, err := decimal.NewFromString(tb.Price)
			if err != nil {
				return nil, errs.Wrapf(errs.TypeCatalog, err, "%s: bad price %q", fb.Name, tb.Price)
			}
			c.Register(family, types.PricingRule{
				MinRValue:      tb.MinR,
				MaxRValue:      tb.MaxR,
				PricePerSqFt:   price,
				ThicknessLabel: tb.Thickness,
				SideNote:       types.SurfaceSide(tb.Side),
			})
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
