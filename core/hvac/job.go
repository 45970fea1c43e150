// Package hvac - Per-job aggregation
package hvac

import (
	"math"

	"github.com/shopspring/decimal"

	"fieldquote/core/types"
)

// installDayHours is the crew-day length used for timeline estimates
const installDayHours = 8.0

// SummarizeJob prices every system and rolls the results up into a job
// summary. Each system is priced independently; the grand total is the
// sum of final totals, override included where one applies. An empty
// measurement list returns a zeroed summary, not an error.
func (s *Service) SummarizeJob(measurements []types.HvacSystemMeasurement) (types.HvacJobSummary, error) {
	summary := types.HvacJobSummary{
		Systems:                 make([]types.HvacPricingBreakdown, 0, len(measurements)),
		TotalMaterials:          decimal.Zero,
		TotalAdditionalServices: decimal.Zero,
		TotalLabor:              decimal.Zero,
		GrandTotal:              decimal.Zero,
	}

	for _, m := range measurements {
		b, err := s.PriceSystem(m)
		if err != nil {
			return types.HvacJobSummary{}, err
		}

		summary.Systems = append(summary.Systems, b)
		summary.SystemCount++
		summary.TotalTonnage += m.Tonnage
		summary.TotalDuctworkFeet += m.DuctworkFeet
		summary.TotalVents += m.SupplyVents + m.ReturnVents

		summary.TotalMaterials = summary.TotalMaterials.Add(b.Subtotal.Sub(b.AdditionalServicesCost))
		summary.TotalAdditionalServices = summary.TotalAdditionalServices.Add(b.AdditionalServicesCost)
		summary.TotalLabor = summary.TotalLabor.Add(b.LaborCost)
		summary.GrandTotal = summary.GrandTotal.Add(b.FinalTotal)
		summary.TotalLaborHours += b.LaborHours
	}

	if summary.TotalLaborHours > 0 {
		summary.EstimatedInstallDays = int(math.Ceil(summary.TotalLaborHours / installDayHours))
	}

	return summary, nil
}
