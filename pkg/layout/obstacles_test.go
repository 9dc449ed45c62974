package layout

import (
	"strings"
	"testing"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/geometry"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

func TestObstacleZonesFiltersAndExpands(t *testing.T) {
	obstacles := []plan.Obstacle{
		{Type: plan.ObstacleWindow, WallIndex: 0, Offset: 30, Bottom: 36, Width: 24, Height: 36},
		{Type: plan.ObstacleOutlet, WallIndex: 1, Offset: 10, Bottom: 12, Width: 4, Height: 4},
	}

	zones := ObstacleZones(obstacles, 0)
	if len(zones) != 1 {
		t.Fatalf("got %d zones for wall 0", len(zones))
	}

	// Window default clearance is 2 on every side.
	z := zones[0].Rect
	want := geometry.Rect{Left: 28, Bottom: 34, Right: 56, Top: 74}
	if z != want {
		t.Errorf("zone rect = %+v, want %+v", z, want)
	}

	if got := ObstacleZones(obstacles, 2); len(got) != 0 {
		t.Errorf("wall 2 should have no zones, got %d", len(got))
	}
}

func TestObstacleZonesInstanceOverride(t *testing.T) {
	override := plan.Clearance{Top: 10, Bottom: 0, Left: 5, Right: 5}
	obstacles := []plan.Obstacle{
		{Type: plan.ObstacleWindow, WallIndex: 0, Offset: 30, Bottom: 36, Width: 24, Height: 36, Clearance: &override},
	}

	z := ObstacleZones(obstacles, 0)[0].Rect
	want := geometry.Rect{Left: 25, Bottom: 36, Right: 59, Top: 82}
	if z != want {
		t.Errorf("zone rect = %+v, want %+v", z, want)
	}
}

func TestCheckCollision(t *testing.T) {
	zones := ObstacleZones([]plan.Obstacle{
		{Type: plan.ObstacleWindow, WallIndex: 0, Offset: 30, Bottom: 36, Width: 24, Height: 36},
	}, 0)

	// Disjoint rectangle: no hits.
	clear := geometry.NewRect(60, 0, 20, 30)
	if hits := CheckCollision(clear, zones); len(hits) != 0 {
		t.Errorf("disjoint rect collided: %+v", hits)
	}

	// Overlapping rectangle: one hit.
	overlapping := geometry.NewRect(20, 0, 20, 96)
	if hits := CheckCollision(overlapping, zones); len(hits) != 1 {
		t.Errorf("overlapping rect hits = %d, want 1", len(hits))
	}
}

func windowOnWall0() []plan.Obstacle {
	// Window at x [30,54], y [36,72]; zone [28,56] x [34,74].
	return []plan.Obstacle{
		{Type: plan.ObstacleWindow, WallIndex: 0, Offset: 30, Bottom: 36, Width: 24, Height: 36},
	}
}

func TestLayoutSectionsLowerMode(t *testing.T) {
	specs := []plan.SectionSpec{
		{Width: plan.FillWidth(), HeightMode: plan.HeightLower},
	}
	placed := LayoutSections(120, 96, 0, windowOnWall0(), specs, 0.75)
	if len(placed) != 1 {
		t.Fatalf("placed %d sections", len(placed))
	}

	s := placed[0]
	if s.Bottom != 0 {
		t.Errorf("lower section bottom = %v", s.Bottom)
	}
	// Top stops at the zone bottom: obstacle bottom minus clearance.
	if !approx(s.Top, 34) {
		t.Errorf("lower section top = %v, want 34", s.Top)
	}
	if s.HasWarnings() {
		t.Errorf("unexpected warnings: %v", s.Warnings)
	}
}

func TestLayoutSectionsUpperMode(t *testing.T) {
	specs := []plan.SectionSpec{
		{Width: plan.FillWidth(), HeightMode: plan.HeightUpper},
	}
	placed := LayoutSections(120, 96, 0, windowOnWall0(), specs, 0.75)

	s := placed[0]
	if !approx(s.Bottom, 74) {
		t.Errorf("upper section bottom = %v, want 74", s.Bottom)
	}
	if s.Top != 96 {
		t.Errorf("upper section top = %v", s.Top)
	}
}

func TestLayoutSectionsAutoMode(t *testing.T) {
	// Zone midpoint is at 54, upper half of a 96 wall: auto goes lower.
	specs := []plan.SectionSpec{
		{Width: plan.FillWidth(), HeightMode: plan.HeightAuto},
	}
	placed := LayoutSections(120, 96, 0, windowOnWall0(), specs, 0.75)
	if placed[0].HeightMode != plan.HeightLower {
		t.Errorf("auto resolved to %s, want lower", placed[0].HeightMode)
	}

	// A low obstacle pushes auto upward instead.
	low := []plan.Obstacle{
		{Type: plan.ObstacleOutlet, WallIndex: 0, Offset: 40, Bottom: 12, Width: 4, Height: 4},
	}
	placed = LayoutSections(120, 96, 0, low, specs, 0.75)
	if placed[0].HeightMode != plan.HeightUpper {
		t.Errorf("auto resolved to %s, want upper", placed[0].HeightMode)
	}

	// Nothing intersecting: full.
	placed = LayoutSections(120, 96, 0, nil, specs, 0.75)
	if placed[0].HeightMode != plan.HeightFull {
		t.Errorf("auto resolved to %s, want full", placed[0].HeightMode)
	}
}

func TestLayoutSectionsCursorAdvances(t *testing.T) {
	specs := []plan.SectionSpec{
		{Width: plan.FixedWidth(24)},
		{Width: plan.FixedWidth(36)},
		{Width: plan.FillWidth()},
	}
	placed := LayoutSections(120, 96, 0, nil, specs, 0.75)

	if placed[0].X != 0 {
		t.Errorf("section 0 x = %v", placed[0].X)
	}
	if !approx(placed[1].X, 24.75) {
		t.Errorf("section 1 x = %v, want 24.75", placed[1].X)
	}
	if !approx(placed[2].X, 61.5) {
		t.Errorf("section 2 x = %v, want 61.5", placed[2].X)
	}
	// Last section fills to the end of the wall.
	if !approx(placed[2].X+placed[2].Width, 120) {
		t.Errorf("wall not filled: ends at %v", placed[2].X+placed[2].Width)
	}
}

func TestLayoutSectionsResidualCollision(t *testing.T) {
	// A door spanning the wall's full height cannot be cleared by any
	// height mode; the section is still emitted, flagged.
	door := []plan.Obstacle{
		{Type: plan.ObstacleDoor, WallIndex: 0, Offset: 40, Bottom: 0, Width: 32, Height: 96, Egress: true},
	}
	specs := []plan.SectionSpec{
		{Width: plan.FillWidth(), HeightMode: plan.HeightFull},
	}
	placed := LayoutSections(120, 96, 0, door, specs, 0.75)
	if len(placed) != 1 {
		t.Fatalf("placed %d sections, want 1 (run must not abort)", len(placed))
	}
	if !placed[0].HasWarnings() {
		t.Fatal("residual collision should carry a warning")
	}
	if !strings.Contains(placed[0].Warnings[len(placed[0].Warnings)-1], "door") {
		t.Errorf("warning should name the obstacle: %v", placed[0].Warnings)
	}
}
