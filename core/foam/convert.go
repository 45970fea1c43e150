// Package foam - Spray-foam thickness and R-value conversion
// Closed-cell converts at a constant rate; open-cell interpolates over
// the manufacturer's tested anchor points.
package foam

import "math"

const (
	// ClosedCellRPerInch is the constant closed-cell conversion rate
	ClosedCellRPerInch = 7.0

	// OpenCellRPerInch is the nominal open-cell rate used by the
	// generic hybrid formula
	OpenCellRPerInch = 3.8

	// MaxClosedCellVaporInches caps the closed-cell layer when building
	// layers for a target R-value; past two inches the vapor barrier is
	// established and open-cell fills cheaper
	MaxClosedCellVaporInches = 2.0
)

// anchor is one tested (inches, R-value) point on the open-cell curve
type anchor struct {
	inches float64
	rValue float64
}

// openCellAnchors are manufacturer-tested values, sorted by inches
var openCellAnchors = []anchor{
	{3.5, 13},
	{5.5, 21},
	{7, 27},
	{8, 30},
	{9, 34},
	{10, 38},
	{12, 45},
	{13, 49},
}

// ClosedCellRValue converts closed-cell thickness to R-value
func ClosedCellRValue(inches float64) float64 {
	return inches * ClosedCellRPerInch
}

// OpenCellRValue converts open-cell thickness to R-value by piecewise
// linear interpolation over the anchor table, clamped at both ends and
// rounded to the nearest whole R-value. Exact anchor inputs return the
// anchor's R-value, not an interpolated approximation.
func OpenCellRValue(inches float64) float64 {
	first := openCellAnchors[0]
	last := openCellAnchors[len(openCellAnchors)-1]

	if inches <= first.inches {
		return first.rValue
	}
	if inches >= last.inches {
		return last.rValue
	}

	for i := 1; i < len(openCellAnchors); i++ {
		lo, hi := openCellAnchors[i-1], openCellAnchors[i]
		if inches <= hi.inches {
			fraction := (inches - lo.inches) / (hi.inches - lo.inches)
			return math.Round(lo.rValue + fraction*(hi.rValue-lo.rValue))
		}
	}

	return last.rValue
}

// Layers is a closed-cell + open-cell thickness pair
type Layers struct {
	// ClosedCellInches is the vapor-barrier layer thickness
	ClosedCellInches float64 `json:"closed_cell_inches"`

	// OpenCellInches is the fill layer thickness
	OpenCellInches float64 `json:"open_cell_inches"`
}

// LayersForTarget computes the layer thicknesses needed to hit a target
// R-value: closed-cell first up to the vapor-barrier cap, the remainder
// filled with open-cell. Both layers snap to the nearest half inch,
// matching how crews actually spray.
func LayersForTarget(targetR float64) Layers {
	if targetR <= 0 {
		return Layers{}
	}

	closedInches := targetR / ClosedCellRPerInch
	if closedInches > MaxClosedCellVaporInches {
		closedInches = MaxClosedCellVaporInches
	}
	closedInches = snapHalfInch(closedInches)

	remaining := targetR - closedInches*ClosedCellRPerInch
	openInches := 0.0
	if remaining > 0 {
		openInches = snapHalfInch(remaining / OpenCellRPerInch)
	}

	return Layers{
		ClosedCellInches: closedInches,
		OpenCellInches:   openInches,
	}
}

func snapHalfInch(inches float64) float64 {
	return math.Round(inches*2) / 2
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
