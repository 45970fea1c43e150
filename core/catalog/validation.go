// Package catalog - Catalog validation
// Ensures rate-table integrity and enforces invariants. A family with a
// missing or inconsistent table is a configuration bug and fails hard;
// it is not the same thing as a quotable "price to be determined".
package catalog

import (
	"fmt"

	"go.uber.org/multierr"

	errs "fieldquote/internal/errors"

	"fieldquote/core/types"
)

// Validate checks every family's table. All problems are reported at
// once so a bad rate file can be fixed in one pass.
func (c *Catalog) Validate() error {
	var err error

	for _, family := range types.Families() {
		rules := c.rules[family]
		if len(rules) == 0 {
			err = multierr.Append(err, fmt.Errorf("%s: no rate table registered", family))
			continue
		}

		for i, rule := range rules {
			if rule.MinRValue > rule.MaxRValue {
				err = multierr.Append(err, fmt.Errorf("%s: tier %d inverted range [%g,%g]", family, i, rule.MinRValue, rule.MaxRValue))
			}
			if rule.PricePerSqFt.IsNegative() {
				err = multierr.Append(err, fmt.Errorf("%s: tier %d negative rate %s", family, i, rule.PricePerSqFt))
			}
		}

		err = multierr.Append(err, validateNoOverlap(family, rules))
	}

	if err != nil {
		return errs.Catalog("rate table validation failed", err)
	}
	return nil
}

// validateNoOverlap ensures exactly one tier matches any R-value within
// a (family, side) sub-table
func validateNoOverlap(family types.InsulationFamily, rules []types.PricingRule) error {
	var err error

	bySide := make(map[types.SurfaceSide][]types.PricingRule)
	for _, rule := range rules {
		bySide[rule.SideNote] = append(bySide[rule.SideNote], rule)
	}

	for side, subTable := range bySide {
		for i := 0; i < len(subTable); i++ {
			for j := i + 1; j < len(subTable); j++ {
				if subTable[i].MinRValue <= subTable[j].MaxRValue && subTable[j].MinRValue <= subTable[i].MaxRValue {
					err = multierr.Append(err, fmt.Errorf(
						"%s%s: tiers [%g,%g] and [%g,%g] overlap",
						family, sideSuffix(side),
						subTable[i].MinRValue, subTable[i].MaxRValue,
						subTable[j].MinRValue, subTable[j].MaxRValue))
				}
			}
		}
	}

	return err
}

func sideSuffix(side types.SurfaceSide) string {
	if side == "" {
		return ""
	}
	return "/" + string(side)
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("catalog validation failed: %v", err))
	}
}
