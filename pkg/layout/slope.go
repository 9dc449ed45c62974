package layout

import (
	"math"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/geometry"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

// slopeRun returns the distance from the slope's high side to
// wall-local x, per the slope direction.
func slopeRun(s plan.CeilingSlope, x, wallLength float64) float64 {
	if s.Direction == plan.SlopeRightToLeft {
		return wallLength - x
	}
	return x
}

// ceilingHeightRaw evaluates the unclamped ceiling height at x:
// start_height minus tan(angle) per unit of run from the high side.
func ceilingHeightRaw(s plan.CeilingSlope, x, wallLength float64) float64 {
	return s.StartHeight - math.Tan(geometry.Radians(s.Angle))*slopeRun(s, x, wallLength)
}

// CeilingHeightAt returns the usable ceiling height at wall-local x,
// clamped so it never falls below the slope's minimum height.
func CeilingHeightAt(s plan.CeilingSlope, x, wallLength float64) float64 {
	return math.Max(s.MinHeight, ceilingHeightRaw(s, x, wallLength))
}

// SectionHeights evaluates the clamped ceiling height at each section's
// horizontal midpoint, in section order. For a left-to-right slope the
// result decreases monotonically; for a zero angle it is constant.
func SectionHeights(s plan.CeilingSlope, sections []plan.PlacedSection, wallLength float64) []float64 {
	heights := make([]float64, len(sections))
	for i, sec := range sections {
		heights[i] = CeilingHeightAt(s, sec.X+sec.Width/2, wallLength)
	}
	return heights
}

// GenerateTaperSpec returns the taper for a section whose top edge
// follows the sloped ceiling, or nil when the clamped heights at the
// section's left and right edges are equal (a flat top needs no taper).
// Start is always the taller edge.
func GenerateTaperSpec(s plan.CeilingSlope, x, width, wallLength float64) *plan.TaperSpec {
	left := CeilingHeightAt(s, x, wallLength)
	right := CeilingHeightAt(s, x+width, wallLength)
	if math.Abs(left-right) < geometry.Epsilon {
		return nil
	}

	direction := plan.SlopeLeftToRight
	if right > left {
		direction = plan.SlopeRightToLeft
	}
	return &plan.TaperSpec{
		StartHeight: math.Max(left, right),
		EndHeight:   math.Min(left, right),
		Direction:   direction,
	}
}

// MinHeightViolation reports a section whose unclamped ceiling height
// falls below the slope's minimum. Purely informational: emitted
// sections always use the clamped height.
type MinHeightViolation struct {
	SectionIndex int     `json:"section_index"`
	Height       float64 `json:"height"` // unclamped height at the section midpoint
	MinHeight    float64 `json:"min_height"`
}

// CheckMinHeightViolations evaluates the unclamped ceiling height at
// each section midpoint and reports those below the minimum.
func CheckMinHeightViolations(s plan.CeilingSlope, sections []plan.PlacedSection, wallLength float64) []MinHeightViolation {
	var violations []MinHeightViolation
	for _, sec := range sections {
		h := ceilingHeightRaw(s, sec.X+sec.Width/2, wallLength)
		if h < s.MinHeight {
			violations = append(violations, MinHeightViolation{
				SectionIndex: sec.SectionIndex,
				Height:       h,
				MinHeight:    s.MinHeight,
			})
		}
	}
	return violations
}
