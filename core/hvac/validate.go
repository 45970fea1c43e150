// Package hvac - Specification validation heuristics
// Advisory only: warnings and recommendations flag systems for human
// review. Validation never blocks pricing.
package hvac

import (
	"fmt"
	"math"

	"fieldquote/core/types"
)

const (
	// minSEER2 is the federal minimum cooling efficiency for new installs
	minSEER2 = 14.0

	// ductworkFeetPerTon is the sizing rule of thumb for duct runs
	ductworkFeetPerTon = 150.0

	// supplyVentsPerTon is the sizing rule of thumb for supply vents
	supplyVentsPerTon = 2.0

	// deviationTolerance is how far from a rule of thumb a value may
	// sit before it draws a recommendation
	deviationTolerance = 0.25
)

// Validate runs non-fatal sanity heuristics over one measurement.
// A result is valid when no warnings were raised; recommendations
// never affect validity.
func (s *Service) Validate(m types.HvacSystemMeasurement) types.ValidationResult {
	result := types.ValidationResult{
		Warnings:        []string{},
		Recommendations: []string{},
	}

	if m.Tonnage < 1 || m.Tonnage > 10 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("tonnage %.1f is outside the typical residential range of 1-10 tons", m.Tonnage))
	}

	// SEER2 of zero means not yet entered; only a stated rating below
	// the federal minimum draws a warning
	if m.SEER2 > 0 && m.SEER2 < minSEER2 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("SEER2 %.1f is below the federal minimum of %.0f", m.SEER2, minSEER2))
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("select equipment rated SEER2 %.0f or higher", minSEER2))
	}

	if m.SystemType == types.SystemHeatPump && m.HSPF2 == 0 {
		result.Warnings = append(result.Warnings,
			"heat pump specified without an HSPF2 rating")
	}

	if m.DuctworkFeet > 0 {
		expected := m.Tonnage * ductworkFeetPerTon
		if farFrom(m.DuctworkFeet, expected) {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("ductwork of %.0f ft is unusual for %.1f tons; roughly %.0f ft is typical", m.DuctworkFeet, m.Tonnage, expected))
		}
	}

	if m.SupplyVents > 0 {
		expected := math.Ceil(m.Tonnage * supplyVentsPerTon)
		if farFrom(float64(m.SupplyVents), expected) {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("%d supply vents is unusual for %.1f tons; roughly %.0f is typical", m.SupplyVents, m.Tonnage, expected))
		}
	}

	result.IsValid = len(result.Warnings) == 0
	return result
}

// farFrom reports whether a value sits outside the tolerance band
// around a rule-of-thumb expectation
func farFrom(actual, expected float64) bool {
	if expected == 0 {
		return actual != 0
	}
	return math.Abs(actual-expected) > deviationTolerance*expected
}
