package layout

import (
	"math"
	"testing"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-3 }

// rectRoom builds a closed 120x80 rectangle with named walls.
func rectRoom() plan.Room {
	return plan.Room{
		Name:   "test-room",
		Closed: true,
		Walls: []plan.WallSegment{
			{Name: "south", Length: 120, Height: 96, Depth: 12, Angle: 0},
			{Name: "east", Length: 80, Height: 96, Depth: 12, Angle: 90},
			{Name: "north", Length: 120, Height: 96, Depth: 12, Angle: 90},
			{Name: "west", Length: 80, Height: 96, Depth: 12, Angle: 90},
		},
	}
}

func TestResolveWallPathStartsAtOrigin(t *testing.T) {
	positions := ResolveWallPath(rectRoom())
	if len(positions) != 4 {
		t.Fatalf("got %d positions", len(positions))
	}

	first := positions[0]
	if first.Start.X != 0 || first.Start.Y != 0 {
		t.Errorf("first wall starts at %+v, want origin", first.Start)
	}
	if first.Heading != 0 {
		t.Errorf("first wall heading = %v, want 0", first.Heading)
	}
}

func TestResolveWallPathChains(t *testing.T) {
	positions := ResolveWallPath(rectRoom())

	wantHeadings := []float64{0, 90, 180, 270}
	for i, p := range positions {
		if !approx(p.Heading, wantHeadings[i]) {
			t.Errorf("wall %d heading = %v, want %v", i, p.Heading, wantHeadings[i])
		}
	}

	// Each wall starts where the previous ended.
	for i := 1; i < len(positions); i++ {
		if positions[i].Start != positions[i-1].End {
			t.Errorf("wall %d start %+v != wall %d end %+v",
				i, positions[i].Start, i-1, positions[i-1].End)
		}
	}

	// The rectangle closes back at the origin.
	last := positions[3]
	if !approx(last.End.X, 0) || !approx(last.End.Y, 0) {
		t.Errorf("last wall ends at %+v, want origin", last.End)
	}
}

func TestResolveWallPathNegativeTurns(t *testing.T) {
	room := plan.Room{
		Walls: []plan.WallSegment{
			{Length: 50, Height: 96, Angle: 0},
			{Length: 50, Height: 96, Angle: -90},
			{Length: 50, Height: 96, Angle: -90},
			{Length: 50, Height: 96, Angle: -90},
		},
	}
	positions := ResolveWallPath(room)

	// Clockwise turns wrap upward: -90 -> 270, -180 -> 180, -270 -> 90.
	wantHeadings := []float64{0, 270, 180, 90}
	for i, p := range positions {
		if !approx(p.Heading, wantHeadings[i]) {
			t.Errorf("wall %d heading = %v, want %v", i, p.Heading, wantHeadings[i])
		}
	}
}

func TestValidateGeometryClosedRoom(t *testing.T) {
	room := rectRoom()
	positions := ResolveWallPath(room)
	diags := ValidateGeometry(room, positions)
	if len(diags) != 0 {
		t.Errorf("clean closed room produced diagnostics: %+v", diags)
	}
}

func TestValidateGeometryClosureGap(t *testing.T) {
	room := rectRoom()
	room.Walls[3].Length = 60 // west wall too short to close

	positions := ResolveWallPath(room)
	diags := ValidateGeometry(room, positions)

	var gap *Diagnostic
	for i := range diags {
		if diags[i].Kind == DiagClosureGap {
			gap = &diags[i]
		}
	}
	if gap == nil {
		t.Fatalf("expected closure gap diagnostic, got %+v", diags)
	}
	if !approx(gap.Gap, 20) {
		t.Errorf("gap = %v, want 20", gap.Gap)
	}
}

func TestValidateGeometryOpenRoomSkipsClosure(t *testing.T) {
	room := rectRoom()
	room.Closed = false
	room.Walls = room.Walls[:2] // an L of two walls

	diags := ValidateGeometry(room, ResolveWallPath(room))
	if len(diags) != 0 {
		t.Errorf("open room produced diagnostics: %+v", diags)
	}
}

func TestValidateGeometrySelfIntersection(t *testing.T) {
	// A zigzag whose last wall crosses back over the first.
	room := plan.Room{
		Walls: []plan.WallSegment{
			{Length: 100, Height: 96, Angle: 0},
			{Length: 40, Height: 96, Angle: 120},
			{Length: 100, Height: 96, Angle: 120},
		},
	}
	diags := ValidateGeometry(room, ResolveWallPath(room))

	found := false
	for _, d := range diags {
		if d.Kind == DiagSelfIntersection {
			found = true
			if len(d.Walls) != 2 || d.Walls[0] != 0 || d.Walls[1] != 2 {
				t.Errorf("intersection walls = %v, want [0 2]", d.Walls)
			}
		}
	}
	if !found {
		t.Errorf("expected self-intersection diagnostic, got %+v", diags)
	}
}
