package layout

import (
	"fmt"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/geometry"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

// ClosureTolerance is the maximum gap, in plan units, between the last
// wall's end and the first wall's start before a closed room is
// reported as unclosed. A quarter inch absorbs rounding in measured
// room dimensions.
const ClosureTolerance = 0.25

// ResolveWallPath walks the wall chain and returns one WallPosition per
// wall, in input order. Wall 0 starts at the origin with heading 0 (the
// config adapter guarantees its turn angle is 0); each subsequent wall
// starts where the previous one ended, with the turn angle added to the
// running heading. Headings are wrapped into [0, 360), so a chain of
// clockwise turns accumulating to -270 reports heading 90.
func ResolveWallPath(room plan.Room) []plan.WallPosition {
	positions := make([]plan.WallPosition, 0, len(room.Walls))

	cursor := geometry.Point{}
	heading := 0.0
	for i, w := range room.Walls {
		heading = geometry.NormalizeDegrees(heading + w.Angle)
		end := cursor.Heading(heading, w.Length)
		positions = append(positions, plan.WallPosition{
			WallIndex: i,
			Start:     cursor,
			End:       end,
			Heading:   heading,
		})
		cursor = end
	}

	return positions
}

// DiagnosticKind classifies a geometry diagnostic.
type DiagnosticKind string

// Diagnostic kinds.
const (
	DiagSelfIntersection DiagnosticKind = "self_intersection"
	DiagClosureGap       DiagnosticKind = "closure_gap"
)

// Diagnostic is an advisory geometry finding. Diagnostics never abort
// the run; the caller decides whether to treat them as fatal.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Message string         `json:"message"`
	Walls   []int          `json:"walls,omitempty"` // offending wall indices
	Gap     float64        `json:"gap,omitempty"`   // measured closure gap
}

// ValidateGeometry runs the advisory geometry checks over resolved wall
// positions: pairwise self-intersection between non-adjacent segments,
// and the closure gap for closed rooms. Both checks are O(n²) over the
// wall count, which stays in the low double digits for real rooms.
func ValidateGeometry(room plan.Room, positions []plan.WallPosition) []Diagnostic {
	var diags []Diagnostic

	for i := 0; i < len(positions); i++ {
		for j := i + 2; j < len(positions); j++ {
			a, b := positions[i].Segment(), positions[j].Segment()
			// Walls that meet at a corner (including the closing
			// corner of a closed room) are adjacent, not crossing.
			if a.SharesEndpoint(b) {
				continue
			}
			if a.Intersects(b) {
				diags = append(diags, Diagnostic{
					Kind: DiagSelfIntersection,
					Message: fmt.Sprintf("wall %d (%s) intersects wall %d (%s)",
						i, wallLabel(room, i), j, wallLabel(room, j)),
					Walls: []int{i, j},
				})
			}
		}
	}

	if room.Closed && len(positions) > 0 {
		first := positions[0]
		last := positions[len(positions)-1]
		gap := last.End.Distance(first.Start)
		if gap > ClosureTolerance {
			diags = append(diags, Diagnostic{
				Kind: DiagClosureGap,
				Message: fmt.Sprintf("room %q is marked closed but the wall chain ends %.3f from its start",
					room.Name, gap),
				Walls: []int{len(positions) - 1, 0},
				Gap:   gap,
			})
		}
	}

	return diags
}

// wallLabel returns the wall's name or its index for messages.
func wallLabel(room plan.Room, i int) string {
	if w, ok := room.Wall(i); ok && w.Name != "" {
		return w.Name
	}
	return fmt.Sprintf("#%d", i)
}
