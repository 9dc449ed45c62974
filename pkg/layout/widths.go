package layout

import (
	"fmt"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

// DefaultDividerThickness is the material thickness assumed between
// adjacent sections when the plan does not specify one (3/4" sheet
// stock).
const DefaultDividerThickness = 0.75

// ResolveSectionWidths resolves the widths of the specs assigned to one
// wall, in spec order. Fixed widths resolve first; every "fill" spec
// then receives an equal share of what remains after fixed widths and
// dividers are subtracted:
//
//	remaining = wall_length - Σfixed - thickness*(n-1)
//	fill      = remaining / fill_count
//
// A wall with no fill specs leaves the remainder unused. When fixed
// widths alone over-commit the wall the fill share is clamped to zero;
// ValidateSectionSpecs reports that condition.
func ResolveSectionWidths(specs []plan.SectionSpec, wallLength, dividerThickness float64) []float64 {
	fixed := plan.TotalFixedWidth(specs)
	dividers := plan.DividerTotal(len(specs), dividerThickness)

	fillCount := 0
	for _, s := range specs {
		if s.Width.Fill {
			fillCount++
		}
	}

	fill := 0.0
	if fillCount > 0 {
		if remaining := wallLength - fixed - dividers; remaining > 0 {
			fill = remaining / float64(fillCount)
		}
	}

	widths := make([]float64, len(specs))
	for i, s := range specs {
		if s.Width.Fill {
			widths[i] = fill
		} else {
			widths[i] = s.Width.Value
		}
	}
	return widths
}

// ValidateSectionSpecs checks the specs assigned to one wall against
// the wall's length and returns every problem found as a human-readable
// message. An empty result means the specs fit.
//
// Checks, in order per spec then for the wall as a whole:
//   - fixed widths must be positive
//   - resolved widths must satisfy the spec's own min/max bounds
//   - fixed widths plus dividers must not exceed the wall length
func ValidateSectionSpecs(specs []plan.SectionSpec, wallLength, materialThickness float64) []string {
	var msgs []string

	widths := ResolveSectionWidths(specs, wallLength, materialThickness)
	for i, s := range specs {
		if !s.Width.Fill && s.Width.Value <= 0 {
			msgs = append(msgs, fmt.Sprintf("section %d: width must be positive (got %g)", i, s.Width.Value))
			continue
		}
		if !s.WidthInBounds(widths[i]) {
			msgs = append(msgs, fmt.Sprintf("section %d: resolved width %.3f violates bounds [min %g, max %g]",
				i, widths[i], s.MinWidth, s.MaxWidth))
		}
	}

	fixed := plan.TotalFixedWidth(specs)
	dividers := plan.DividerTotal(len(specs), materialThickness)
	if total := fixed + dividers; total > wallLength {
		msgs = append(msgs, fmt.Sprintf(
			"fixed section widths (%.3f) plus dividers (%.3f) exceed wall length %.3f",
			fixed, dividers, wallLength))
	}

	return msgs
}
