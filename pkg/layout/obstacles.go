package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/geometry"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

// Zone is an obstacle's exclusion footprint: its rectangle expanded by
// its resolved clearance on all four sides.
type Zone struct {
	Obstacle plan.Obstacle `json:"obstacle"`
	Rect     geometry.Rect `json:"rect"`
}

// ObstacleZones filters obstacles to one wall and expands each into its
// exclusion zone. Instance clearance overrides win over the per-type
// defaults. Output order follows input order.
func ObstacleZones(obstacles []plan.Obstacle, wallIndex int) []Zone {
	var zones []Zone
	for _, o := range obstacles {
		if o.WallIndex != wallIndex {
			continue
		}
		c := o.ResolvedClearance()
		zones = append(zones, Zone{
			Obstacle: o,
			Rect:     o.Rect().Expand(c.Top, c.Bottom, c.Left, c.Right),
		})
	}
	return zones
}

// CheckCollision returns every zone that overlaps rect, using the
// standard open-interval AABB test. Touching edges do not collide.
func CheckCollision(rect geometry.Rect, zones []Zone) []Zone {
	var hits []Zone
	for _, z := range zones {
		if rect.Overlaps(z.Rect) {
			hits = append(hits, z)
		}
	}
	return hits
}

// LayoutSections places the specs assigned to one wall left to right,
// resolving each section's horizontal footprint from the width resolver
// and its vertical extent from the spec's height mode:
//
//	full:  [0, wall_height]
//	lower: top = min(wall_height, lowest intersecting zone bottom)
//	upper: bottom = max(0, highest intersecting zone top)
//	auto:  lower when the primary intersecting zone's vertical midpoint
//	       is in the wall's upper half, upper when in the lower half,
//	       full when nothing intersects
//
// A residual collision left after height-mode resolution never aborts
// the run: the section is still emitted, carrying a warning naming the
// offending obstacles. SectionIndex on the results is the index within
// specs; callers assigning from a larger list re-map it.
func LayoutSections(wallLength, wallHeight float64, wallIndex int, obstacles []plan.Obstacle, specs []plan.SectionSpec, dividerThickness float64) []plan.PlacedSection {
	widths := ResolveSectionWidths(specs, wallLength, dividerThickness)
	zones := ObstacleZones(obstacles, wallIndex)

	placed := make([]plan.PlacedSection, 0, len(specs))
	x := 0.0
	for i, spec := range specs {
		w := widths[i]
		footprint := geometry.Rect{Left: x, Bottom: 0, Right: x + w, Top: wallHeight}
		hits := CheckCollision(footprint, zones)

		mode := spec.EffectiveHeightMode()
		if mode == plan.HeightAuto {
			mode = resolveAutoMode(footprint, hits, wallHeight)
		}

		bottom, top := 0.0, wallHeight
		switch mode {
		case plan.HeightLower:
			top = math.Min(wallHeight, lowestZoneBottom(hits, wallHeight))
			if top < 0 {
				top = 0
			}
		case plan.HeightUpper:
			bottom = math.Max(0, highestZoneTop(hits))
			if bottom > wallHeight {
				bottom = wallHeight
			}
		}

		section := plan.PlacedSection{
			SectionIndex: i,
			WallIndex:    wallIndex,
			X:            x,
			Width:        w,
			Bottom:       bottom,
			Top:          math.Max(bottom, top),
			HeightMode:   mode,
			Shelves:      spec.Shelves,
		}

		if section.Height() <= geometry.Epsilon {
			section.Warnings = append(section.Warnings,
				fmt.Sprintf("section %d has no usable height on wall %d after obstacle resolution", i, wallIndex))
		}
		if residual := CheckCollision(section.Bounds(), zones); len(residual) > 0 {
			section.Warnings = append(section.Warnings,
				fmt.Sprintf("section %d still overlaps %s after %s height resolution",
					i, zoneLabels(residual), mode))
		}

		placed = append(placed, section)
		x += w + dividerThickness
	}

	return placed
}

// resolveAutoMode is the auto height-mode decision table: no
// intersecting zone means full height; otherwise the primary zone (the
// one with the greatest horizontal overlap with the section) decides by
// its vertical midpoint, with midpoints in the upper half of the wall
// pushing the section below the zone and vice versa.
func resolveAutoMode(footprint geometry.Rect, hits []Zone, wallHeight float64) plan.HeightMode {
	if len(hits) == 0 {
		return plan.HeightFull
	}
	primary := hits[0]
	best := -1.0
	for _, z := range hits {
		overlap := math.Min(footprint.Right, z.Rect.Right) - math.Max(footprint.Left, z.Rect.Left)
		if overlap > best {
			best = overlap
			primary = z
		}
	}
	if primary.Rect.MidY() >= wallHeight/2 {
		return plan.HeightLower
	}
	return plan.HeightUpper
}

// lowestZoneBottom returns the smallest zone bottom among hits, or
// fallback when there are none.
func lowestZoneBottom(hits []Zone, fallback float64) float64 {
	v := fallback
	for _, z := range hits {
		if z.Rect.Bottom < v {
			v = z.Rect.Bottom
		}
	}
	return v
}

// highestZoneTop returns the largest zone top among hits, or 0 when
// there are none.
func highestZoneTop(hits []Zone) float64 {
	v := 0.0
	for _, z := range hits {
		if z.Rect.Top > v {
			v = z.Rect.Top
		}
	}
	return v
}

// zoneLabels renders the obstacle labels of zones for warnings.
func zoneLabels(zones []Zone) string {
	labels := make([]string, len(zones))
	for i, z := range zones {
		labels[i] = z.Obstacle.Label()
	}
	return strings.Join(labels, ", ")
}
