package plan

import "github.com/tyevans/builtin-cabinet-maker-sub005/pkg/geometry"

// =============================================================================
// Engine Output - Downstream Contract
// =============================================================================
//
// The types below are consumed by the panel/hardware generator, the
// cut-list and estimation stages, and the export stages. Their JSON
// shape is the only contract at that boundary.

// SectionTransform places a section in 3D room space. Position is the
// section's wall-local origin mapped through its wall's position;
// RotationZ is the wall heading wrapped into [0, 360) so downstream
// consumers always see a right-handed increment.
type SectionTransform struct {
	Position  [3]float64 `json:"position"` // x, y, z
	RotationZ float64    `json:"rotation_z"`
}

// TaperSpec describes a ceiling-following slanted top edge. Start is
// the taller edge height, End the shorter; Direction names the side
// the taper descends toward.
type TaperSpec struct {
	StartHeight float64        `json:"start_height"`
	EndHeight   float64        `json:"end_height"`
	Direction   SlopeDirection `json:"direction"`
}

// NotchSpec is a rectangular cutout in a section's footprint, produced
// by a skylight projection. XOffset and Width are section-local and
// always clipped to [0, section width]; Depth is how far the void
// projects into the cabinet.
type NotchSpec struct {
	XOffset float64 `json:"x_offset"`
	Width   float64 `json:"width"`
	Depth   float64 `json:"depth"`
}

// AngleCut describes an angled or beveled edge cut on a side panel at
// an outside corner. Angle is the cut angle in degrees; Edge names the
// panel edge it applies to.
type AngleCut struct {
	Angle float64 `json:"angle"`
	Edge  string  `json:"edge"`
	Bevel bool    `json:"bevel"`
}

// PlacedSection is one fully resolved section: its wall assignment,
// wall-local bounds, resolved height mode, 3D transform, and any
// geometric adjustments. Exactly one is produced per input spec per
// run, in input order.
type PlacedSection struct {
	SectionIndex int        `json:"section_index"`
	WallIndex    int        `json:"wall_index"`
	X            float64    `json:"x"` // wall-local left edge
	Width        float64    `json:"width"`
	Bottom       float64    `json:"bottom"`
	Top          float64    `json:"top"`
	HeightMode   HeightMode `json:"height_mode"`
	Depth        float64    `json:"depth,omitempty"`
	Shelves      int        `json:"shelves,omitempty"`

	Transform SectionTransform `json:"transform"`

	// Geometric adjustments, present only when the room geometry
	// demands them.
	Taper   *TaperSpec  `json:"taper,omitempty"`
	Notches []NotchSpec `json:"notches,omitempty"`
	Cuts    []AngleCut  `json:"cuts,omitempty"`

	// Warnings are non-fatal conditions, e.g. a residual obstacle
	// collision that height-mode resolution could not clear.
	Warnings []string `json:"warnings,omitempty"`
}

// Bounds returns the section's wall-local footprint.
func (p PlacedSection) Bounds() geometry.Rect {
	return geometry.Rect{Left: p.X, Bottom: p.Bottom, Right: p.X + p.Width, Top: p.Top}
}

// Height returns the section's vertical extent.
func (p PlacedSection) Height() float64 { return p.Top - p.Bottom }

// HasWarnings reports whether any non-fatal condition was recorded.
func (p PlacedSection) HasWarnings() bool { return len(p.Warnings) > 0 }
