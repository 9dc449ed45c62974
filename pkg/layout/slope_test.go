package layout

import (
	"math"
	"testing"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

func testSlope() plan.CeilingSlope {
	return plan.CeilingSlope{
		Angle:       30,
		StartHeight: 96,
		Direction:   plan.SlopeLeftToRight,
		MinHeight:   24,
	}
}

// evenSections places n equal sections across a wall for height sampling.
func evenSections(n int, wallLength float64) []plan.PlacedSection {
	w := wallLength / float64(n)
	sections := make([]plan.PlacedSection, n)
	for i := range sections {
		sections[i] = plan.PlacedSection{SectionIndex: i, X: float64(i) * w, Width: w}
	}
	return sections
}

func TestSectionHeightsMonotonic(t *testing.T) {
	const wallLength = 100.0
	heights := SectionHeights(testSlope(), evenSections(5, wallLength), wallLength)

	for i := 1; i < len(heights); i++ {
		if heights[i] > heights[i-1] {
			t.Errorf("heights not decreasing left to right: %v", heights)
		}
	}
	for i, h := range heights {
		if h < 24 {
			t.Errorf("height %d = %v below min height", i, h)
		}
	}
}

func TestSectionHeightsFlatCeiling(t *testing.T) {
	flat := testSlope()
	flat.Angle = 0

	const wallLength = 100.0
	heights := SectionHeights(flat, evenSections(4, wallLength), wallLength)
	for i, h := range heights {
		if !approx(h, 96) {
			t.Errorf("height %d = %v, want 96", i, h)
		}
	}
}

func TestSectionHeightsRightToLeft(t *testing.T) {
	slope := testSlope()
	slope.Direction = plan.SlopeRightToLeft

	const wallLength = 100.0
	heights := SectionHeights(slope, evenSections(5, wallLength), wallLength)
	for i := 1; i < len(heights); i++ {
		if heights[i] < heights[i-1] {
			t.Errorf("heights not increasing left to right: %v", heights)
		}
	}
}

func TestCeilingHeightClamp(t *testing.T) {
	// tan(30) ~ 0.577; at x=200 the raw height is far below min.
	s := testSlope()
	if got := CeilingHeightAt(s, 200, 300); got != 24 {
		t.Errorf("clamped height = %v, want min height 24", got)
	}
}

func TestGenerateTaperSpec(t *testing.T) {
	s := testSlope()
	const wallLength = 100.0

	taper := GenerateTaperSpec(s, 10, 30, wallLength)
	if taper == nil {
		t.Fatal("sloped section should taper")
	}
	wantStart := 96 - math.Tan(math.Pi/6)*10
	wantEnd := 96 - math.Tan(math.Pi/6)*40
	if !approx(taper.StartHeight, wantStart) || !approx(taper.EndHeight, wantEnd) {
		t.Errorf("taper = %+v, want start %v end %v", taper, wantStart, wantEnd)
	}
	if taper.StartHeight < taper.EndHeight {
		t.Error("taper start must be the taller edge")
	}
	if taper.Direction != plan.SlopeLeftToRight {
		t.Errorf("taper direction = %s", taper.Direction)
	}
}

func TestGenerateTaperSpecFlatAfterClamp(t *testing.T) {
	// Both edges clamp to min height: flat top, no taper.
	s := testSlope()
	taper := GenerateTaperSpec(s, 250, 30, 300)
	if taper != nil {
		t.Errorf("fully clamped section should not taper, got %+v", taper)
	}

	// Zero angle: no taper either.
	s.Angle = 0
	if taper := GenerateTaperSpec(s, 10, 30, 100); taper != nil {
		t.Errorf("flat ceiling should not taper, got %+v", taper)
	}
}

func TestCheckMinHeightViolations(t *testing.T) {
	s := testSlope()
	const wallLength = 200.0

	// Four sections of 50; raw heights at midpoints 25/75/125/175 are
	// ~81.6, ~52.7, ~23.8, ~-5.0. The last two fall below 24.
	sections := evenSections(4, wallLength)
	violations := CheckMinHeightViolations(s, sections, wallLength)

	if len(violations) != 2 {
		t.Fatalf("violations = %+v, want 2", violations)
	}
	if violations[0].SectionIndex != 2 || violations[1].SectionIndex != 3 {
		t.Errorf("violation indices = %d, %d", violations[0].SectionIndex, violations[1].SectionIndex)
	}
	// Reported heights are pre-clamp; the last is negative.
	if violations[1].Height >= 0 {
		t.Errorf("pre-clamp height = %v, want negative", violations[1].Height)
	}
}
