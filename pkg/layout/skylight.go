package layout

import (
	"math"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/geometry"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

// voidSpan returns the skylight void's span in wall-local coordinates.
// A vertical shaft (projection angle 90) keeps the skylight's own
// width; a tilted shaft widens the footprint by tan(90° - angle) per
// unit of wall depth, extending toward the far end of the wall.
func voidSpan(sk plan.Skylight, wallDepth float64) geometry.Interval1D {
	span := geometry.Interval1D{Start: sk.XPosition, End: sk.XPosition + sk.Width}
	if math.Abs(sk.ProjectionAngle-90) > geometry.Epsilon {
		span.End += math.Tan(geometry.Radians(90-sk.ProjectionAngle)) * wallDepth
	}
	return span
}

// VoidIntersection intersects the skylight void with one section's
// horizontal span and returns the resulting notch in section-local
// coordinates, or nil when the spans are disjoint. The notch is always
// clipped to [0, section width], so a skylight spanning several
// sections yields one clipped notch per affected section. Notch depth
// is the skylight's projection depth.
func VoidIntersection(sk plan.Skylight, sectionX, sectionWidth, wallDepth float64) *plan.NotchSpec {
	section := geometry.Interval1D{Start: sectionX, End: sectionX + sectionWidth}
	overlap, ok := voidSpan(sk, wallDepth).Overlap(section)
	if !ok {
		return nil
	}

	offset := math.Max(0, overlap.Start-sectionX)
	width := math.Min(overlap.End, section.End) - (sectionX + offset)
	if width > sectionWidth-offset {
		width = sectionWidth - offset
	}
	return &plan.NotchSpec{
		XOffset: offset,
		Width:   width,
		Depth:   sk.ProjectionDepth,
	}
}

// VoidExceedsSection reports whether the skylight void fully contains
// the section's span, i.e. the notch would consume the section's entire
// width. Advisory: the notch is still emitted, clipped to the section.
func VoidExceedsSection(sk plan.Skylight, sectionX, sectionWidth, wallDepth float64) bool {
	section := geometry.Interval1D{Start: sectionX, End: sectionX + sectionWidth}
	return voidSpan(sk, wallDepth).Contains(section)
}
