// Package geometry provides the 2D primitives used by the layout engine.
//
// Coordinates are dimensionless floats; callers supply consistent units
// (the CLI and config layer use inches throughout). Two coordinate frames
// appear in the engine:
//
//   - Plan frame: top-down room coordinates, x/y in the floor plane.
//   - Wall frame: per-wall elevation coordinates, x along the wall run,
//     y vertical from the floor.
//
// Angles cross the package boundary in degrees and are converted to
// radians only at trig call sites.
package geometry

import "math"

// Epsilon is the tolerance used for float comparisons on coordinates.
// Dimensions in this domain are fractions of an inch; anything below a
// thousandth is noise.
const Epsilon = 1e-3

// Point is a 2D point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the componentwise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Heading returns the point reached by moving dist from p along the
// given heading (degrees, counterclockwise from +x).
func (p Point) Heading(headingDeg, dist float64) Point {
	rad := Radians(headingDeg)
	return Point{
		X: p.X + dist*math.Cos(rad),
		Y: p.Y + dist*math.Sin(rad),
	}
}

// Rect is an axis-aligned rectangle. Left/Right bound the x axis and
// Bottom/Top bound the y axis; a valid Rect has Left <= Right and
// Bottom <= Top.
type Rect struct {
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
}

// NewRect builds a Rect from an origin corner and positive extents.
func NewRect(left, bottom, width, height float64) Rect {
	return Rect{Left: left, Bottom: bottom, Right: left + width, Top: bottom + height}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// MidY returns the vertical midpoint.
func (r Rect) MidY() float64 { return (r.Bottom + r.Top) / 2 }

// MidX returns the horizontal midpoint.
func (r Rect) MidX() float64 { return (r.Left + r.Right) / 2 }

// Overlaps reports whether r and o share interior area. Rectangles that
// only touch at an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && r.Right > o.Left && r.Bottom < o.Top && r.Top > o.Bottom
}

// Expand grows the rectangle outward by the given margins. Negative
// margins shrink it; the caller is responsible for keeping it valid.
func (r Rect) Expand(top, bottom, left, right float64) Rect {
	return Rect{
		Left:   r.Left - left,
		Bottom: r.Bottom - bottom,
		Right:  r.Right + right,
		Top:    r.Top + top,
	}
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B Point
}

// Length returns the segment length.
func (s Segment) Length() float64 { return s.A.Distance(s.B) }

// Intersects reports whether s and o cross or touch. Collinear
// overlapping segments count as intersecting.
func (s Segment) Intersects(o Segment) bool {
	d1 := orientation(o.A, o.B, s.A)
	d2 := orientation(o.A, o.B, s.B)
	d3 := orientation(s.A, s.B, o.A)
	d4 := orientation(s.A, s.B, o.B)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear cases: an endpoint lies on the other segment.
	if d1 == 0 && onSegment(o.A, o.B, s.A) {
		return true
	}
	if d2 == 0 && onSegment(o.A, o.B, s.B) {
		return true
	}
	if d3 == 0 && onSegment(s.A, s.B, o.A) {
		return true
	}
	if d4 == 0 && onSegment(s.A, s.B, o.B) {
		return true
	}
	return false
}

// SharesEndpoint reports whether the two segments share an endpoint
// within Epsilon. Adjacent walls in a chain always share one.
func (s Segment) SharesEndpoint(o Segment) bool {
	return s.A.Distance(o.A) < Epsilon || s.A.Distance(o.B) < Epsilon ||
		s.B.Distance(o.A) < Epsilon || s.B.Distance(o.B) < Epsilon
}

// orientation returns the sign of the cross product (b-a) x (c-a):
// positive for counterclockwise, negative for clockwise, zero for
// collinear (within Epsilon).
func orientation(a, b, c Point) float64 {
	v := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if math.Abs(v) < Epsilon {
		return 0
	}
	return v
}

// onSegment reports whether p lies within the bounding box of segment ab.
// Only meaningful when p is already known to be collinear with ab.
func onSegment(a, b, p Point) bool {
	return p.X >= math.Min(a.X, b.X)-Epsilon && p.X <= math.Max(a.X, b.X)+Epsilon &&
		p.Y >= math.Min(a.Y, b.Y)-Epsilon && p.Y <= math.Max(a.Y, b.Y)+Epsilon
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// NormalizeDegrees wraps an angle into [0, 360). Negative inputs wrap
// upward, so a heading accumulated to -270 normalizes to 90.
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Interval1D is a closed interval on one axis, used for span overlap
// tests between skylights and sections.
type Interval1D struct {
	Start, End float64
}

// Overlap returns the intersection of two intervals and whether it is
// non-empty. Intervals that merely touch have no overlap.
func (i Interval1D) Overlap(o Interval1D) (Interval1D, bool) {
	start := math.Max(i.Start, o.Start)
	end := math.Min(i.End, o.End)
	if end-start <= Epsilon {
		return Interval1D{}, false
	}
	return Interval1D{Start: start, End: end}, true
}

// Contains reports whether i fully contains o.
func (i Interval1D) Contains(o Interval1D) bool {
	return i.Start <= o.Start+Epsilon && i.End >= o.End-Epsilon
}
