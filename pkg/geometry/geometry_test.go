package geometry

import (
	"math"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	base := NewRect(10, 0, 20, 30) // [10,30] x [0,30]

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"identical", NewRect(10, 0, 20, 30), true},
		{"contained", NewRect(15, 5, 5, 5), true},
		{"partial", NewRect(25, 20, 20, 20), true},
		{"disjoint right", NewRect(40, 0, 10, 10), false},
		{"disjoint above", NewRect(10, 35, 10, 10), false},
		{"touching edge", NewRect(30, 0, 10, 30), false},
		{"touching corner", NewRect(30, 30, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.r); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.r, got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.r.Overlaps(base); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	r := NewRect(10, 20, 5, 5).Expand(1, 2, 3, 4)
	if r.Left != 7 || r.Bottom != 18 || r.Right != 19 || r.Top != 26 {
		t.Errorf("Expand produced %+v", r)
	}
}

func TestSegmentIntersects(t *testing.T) {
	tests := []struct {
		name string
		s, o Segment
		want bool
	}{
		{
			"crossing",
			Segment{Point{0, 0}, Point{10, 10}},
			Segment{Point{0, 10}, Point{10, 0}},
			true,
		},
		{
			"parallel",
			Segment{Point{0, 0}, Point{10, 0}},
			Segment{Point{0, 5}, Point{10, 5}},
			false,
		},
		{
			"disjoint",
			Segment{Point{0, 0}, Point{1, 1}},
			Segment{Point{5, 5}, Point{6, 4}},
			false,
		},
		{
			"t-junction",
			Segment{Point{0, 0}, Point{10, 0}},
			Segment{Point{5, -5}, Point{5, 0}},
			true,
		},
		{
			"collinear overlap",
			Segment{Point{0, 0}, Point{10, 0}},
			Segment{Point{5, 0}, Point{15, 0}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Intersects(tt.o); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointHeading(t *testing.T) {
	p := Point{X: 1, Y: 2}

	east := p.Heading(0, 10)
	if math.Abs(east.X-11) > Epsilon || math.Abs(east.Y-2) > Epsilon {
		t.Errorf("heading 0: got %+v", east)
	}

	north := p.Heading(90, 10)
	if math.Abs(north.X-1) > Epsilon || math.Abs(north.Y-12) > Epsilon {
		t.Errorf("heading 90: got %+v", north)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-270, 90},
	}
	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); math.Abs(got-tt.want) > Epsilon {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInterval1DOverlap(t *testing.T) {
	a := Interval1D{Start: 0, End: 10}

	if _, ok := a.Overlap(Interval1D{Start: 20, End: 30}); ok {
		t.Error("disjoint intervals should not overlap")
	}
	if _, ok := a.Overlap(Interval1D{Start: 10, End: 20}); ok {
		t.Error("touching intervals should not overlap")
	}

	got, ok := a.Overlap(Interval1D{Start: 5, End: 15})
	if !ok || got.Start != 5 || got.End != 10 {
		t.Errorf("overlap = %+v ok=%v", got, ok)
	}

	if !a.Contains(Interval1D{Start: 2, End: 8}) {
		t.Error("Contains should hold for inner interval")
	}
	if a.Contains(Interval1D{Start: 2, End: 12}) {
		t.Error("Contains should fail for extending interval")
	}
}
