// Package catalog - Authoritative insulation rate catalog
// Defines the tiered price-per-square-foot tables per insulation family.
// This is the source of truth for quote pricing.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"fieldquote/core/types"
)

// Catalog holds the ordered rate table for each insulation family.
// Seeded once at load time and treated as immutable during calculation;
// swap the whole catalog to change rates.
type Catalog struct {
	rules map[types.InsulationFamily][]types.PricingRule
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		rules: make(map[types.InsulationFamily][]types.PricingRule),
	}
}

// Register appends a rule to a family's table. Registration order is
// lookup order.
func (c *Catalog) Register(family types.InsulationFamily, rule types.PricingRule) {
	c.rules[family] = append(c.rules[family], rule)
}

// Rules returns a family's table in registration order
func (c *Catalog) Rules(family types.InsulationFamily) []types.PricingRule {
	return c.rules[family]
}

// Resolve returns the catalog price per square foot for a family and
// R-value. A zero result means "to be determined", never an error:
// unset family, zero R-value, and an R-value outside the table's span
// all resolve to zero so partially-entered measurements stay quotable.
//
// Tiers are written on whole-R boundaries; a fractional reading that
// falls between two tiers prices at the tier below it.
//
// For mineral wool the sideHint selects the wall or ceiling sub-table.
// Without a hint, R-15 implies wall and R-25 implies ceiling - a legacy
// convention quotes depend on.
func (c *Catalog) Resolve(family types.InsulationFamily, rValue float64, sideHint string) decimal.Decimal {
	if family == "" || rValue == 0 {
		return decimal.Zero
	}

	rules, ok := c.rules[family]
	if !ok {
		return decimal.Zero
	}

	side := sideFromHint(sideHint, rValue)

	var below *types.PricingRule
	aboveExists := false
	for i := range rules {
		rule := &rules[i]
		if rule.SideNote != "" && side != "" && rule.SideNote != side {
			continue
		}
		if rule.Matches(rValue) {
			return rule.PricePerSqFt
		}
		if rule.MaxRValue < rValue && (below == nil || rule.MaxRValue > below.MaxRValue) {
			below = rule
		}
		if rule.MinRValue > rValue {
			aboveExists = true
		}
	}

	// Between tiers: price at the tier below. Past either end of the
	// table there is no defensible rate, so stay at zero.
	if below != nil && aboveExists {
		return below.PricePerSqFt
	}

	return decimal.Zero
}

// sideFromHint maps a free-form area hint to a surface side.
// The bare R-value fallback (15=wall, 25=ceiling) is a legacy
// convention, kept as-is.
func sideFromHint(hint string, rValue float64) types.SurfaceSide {
	h := strings.ToLower(hint)
	switch {
	case strings.Contains(h, "wall"):
		return types.SideWall
	case strings.Contains(h, "ceiling"):
		return types.SideCeiling
	case rValue == 15:
		return types.SideWall
	case rValue == 25:
		return types.SideCeiling
	}
	return ""
}

// GlobalCatalog is the default global catalog
var GlobalCatalog = NewCatalog()

// Init seeds the global catalog with the built-in rate tables
func Init() {
	RegisterDefaults(GlobalCatalog)
	GlobalCatalog.MustValidate()
}
