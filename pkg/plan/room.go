package plan

import "github.com/tyevans/builtin-cabinet-maker-sub005/pkg/geometry"

// WallSegment is one straight wall run. Angle is the turn relative to
// the previous wall in degrees, counterclockwise positive; the first
// wall's angle must be 0 (enforced upstream by the config adapter).
type WallSegment struct {
	Name   string  `json:"name,omitempty"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth,omitempty"`
	Angle  float64 `json:"angle"`
}

// Room is an ordered chain of wall segments. Closed rooms are expected
// to return to their starting corner; the engine reports a closure-gap
// diagnostic when they do not.
type Room struct {
	Name   string        `json:"name"`
	Walls  []WallSegment `json:"walls"`
	Closed bool          `json:"closed,omitempty"`
}

// Wall returns the segment at index i and whether it exists.
func (r Room) Wall(i int) (WallSegment, bool) {
	if i < 0 || i >= len(r.Walls) {
		return WallSegment{}, false
	}
	return r.Walls[i], true
}

// WallIndexByName returns the index of the first wall with the given
// name, or -1 when no wall matches. Names are optional; unnamed walls
// never match.
func (r Room) WallIndexByName(name string) int {
	if name == "" {
		return -1
	}
	for i, w := range r.Walls {
		if w.Name == name {
			return i
		}
	}
	return -1
}

// WallPosition is the derived absolute placement of one wall in the
// plan frame. Positions are computed by the engine from the segment
// chain and are never stored.
type WallPosition struct {
	WallIndex int            `json:"wall_index"`
	Start     geometry.Point `json:"start"`
	End       geometry.Point `json:"end"`
	Heading   float64        `json:"heading"` // degrees, counterclockwise from +x
}

// Segment returns the wall's footprint as a plan-frame line segment.
func (p WallPosition) Segment() geometry.Segment {
	return geometry.Segment{A: p.Start, B: p.End}
}

// CeilingSlope describes a sloped ceiling over one wall. The ceiling
// starts at StartHeight on the slope's high side and drops by
// tan(Angle) per unit of run toward the low side; section heights are
// clamped so they never fall below MinHeight.
type CeilingSlope struct {
	Angle       float64        `json:"angle"` // degrees from horizontal, 0-60
	StartHeight float64        `json:"start_height"`
	Direction   SlopeDirection `json:"direction"`
	MinHeight   float64        `json:"min_height"`
}

// SlopeDirection names the side the ceiling descends toward.
type SlopeDirection string

// Slope directions. LeftToRight places the high side at wall-local
// x = 0; RightToLeft places it at the far end of the wall.
const (
	SlopeLeftToRight SlopeDirection = "left_to_right"
	SlopeRightToLeft SlopeDirection = "right_to_left"
)

// Valid reports whether d is a known direction.
func (d SlopeDirection) Valid() bool {
	return d == SlopeLeftToRight || d == SlopeRightToLeft
}

// Skylight describes a roof window whose void projects into the
// cabinet run on one wall. XPosition and Width span wall-local x;
// ProjectionAngle is measured from horizontal (90 = vertical shaft).
type Skylight struct {
	WallIndex       int     `json:"wall_index"`
	XPosition       float64 `json:"x_position"`
	Width           float64 `json:"width"`
	ProjectionDepth float64 `json:"projection_depth"`
	ProjectionAngle float64 `json:"projection_angle"`
}
