package plan

import (
	"encoding/json"
	"fmt"
	"math"
)

// FillKeyword is the width value that requests remaining-space sizing.
const FillKeyword = "fill"

// Width is a requested section width: either a fixed dimension or the
// "fill" keyword, which resolves to an equal share of the wall space
// left after fixed widths and dividers are subtracted.
type Width struct {
	Fill  bool
	Value float64
}

// FixedWidth returns a fixed width.
func FixedWidth(v float64) Width { return Width{Value: v} }

// FillWidth returns a fill width.
func FillWidth() Width { return Width{Fill: true} }

// String renders the width for messages: "fill" or the numeric value.
func (w Width) String() string {
	if w.Fill {
		return FillKeyword
	}
	return fmt.Sprintf("%g", w.Value)
}

// MarshalJSON encodes a fill width as the string "fill" and a fixed
// width as a bare number.
func (w Width) MarshalJSON() ([]byte, error) {
	if w.Fill {
		return json.Marshal(FillKeyword)
	}
	return json.Marshal(w.Value)
}

// UnmarshalJSON accepts either a number or the string "fill".
func (w *Width) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != FillKeyword {
			return fmt.Errorf("invalid width %q (want a number or %q)", s, FillKeyword)
		}
		*w = FillWidth()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid width: %s", data)
	}
	*w = FixedWidth(v)
	return nil
}

// UnmarshalTOML accepts an integer, float, or the string "fill" from a
// TOML plan file.
func (w *Width) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case int64:
		*w = FixedWidth(float64(t))
	case float64:
		*w = FixedWidth(t)
	case string:
		if t != FillKeyword {
			return fmt.Errorf("invalid width %q (want a number or %q)", t, FillKeyword)
		}
		*w = FillWidth()
	default:
		return fmt.Errorf("invalid width type %T", v)
	}
	return nil
}

// HeightMode is the policy for a section's vertical extent relative to
// obstacles on its wall.
type HeightMode string

// Height modes. Full spans the whole wall; Lower stops under the
// nearest intersecting obstacle zone; Upper starts above it; Auto
// picks lower or upper from the zone's vertical midpoint and falls
// back to full when nothing intersects.
const (
	HeightFull  HeightMode = "full"
	HeightLower HeightMode = "lower"
	HeightUpper HeightMode = "upper"
	HeightAuto  HeightMode = "auto"
)

// Valid reports whether m is a known height mode.
func (m HeightMode) Valid() bool {
	switch m {
	case HeightFull, HeightLower, HeightUpper, HeightAuto:
		return true
	}
	return false
}

// wallRefKind discriminates the WallRef sum type.
type wallRefKind int

const (
	refUnset wallRefKind = iota
	refIndex
	refName
)

// WallRef identifies the wall a section is assigned to: by name, by
// 0-based index, or unset (which resolves to wall 0). References are
// resolved to a concrete index exactly once, during assignment.
type WallRef struct {
	kind  wallRefKind
	name  string
	index int
}

// WallByName references a wall by its configured name.
func WallByName(name string) WallRef { return WallRef{kind: refName, name: name} }

// WallByIndex references a wall by 0-based index.
func WallByIndex(i int) WallRef { return WallRef{kind: refIndex, index: i} }

// IsUnset reports whether the reference was never specified.
func (r WallRef) IsUnset() bool { return r.kind == refUnset }

// String renders the reference for messages.
func (r WallRef) String() string {
	switch r.kind {
	case refName:
		return fmt.Sprintf("%q", r.name)
	case refIndex:
		return fmt.Sprintf("#%d", r.index)
	default:
		return "unset"
	}
}

// Resolve returns the concrete wall index for this reference, or
// (-1, false) when the name or index matches no wall in the room.
// Unset references resolve to wall 0.
func (r WallRef) Resolve(room Room) (int, bool) {
	switch r.kind {
	case refName:
		if i := room.WallIndexByName(r.name); i >= 0 {
			return i, true
		}
		return -1, false
	case refIndex:
		if r.index >= 0 && r.index < len(room.Walls) {
			return r.index, true
		}
		return -1, false
	default:
		if len(room.Walls) == 0 {
			return -1, false
		}
		return 0, true
	}
}

// MarshalJSON encodes names as strings, indices as numbers, and unset
// references as null.
func (r WallRef) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case refName:
		return json.Marshal(r.name)
	case refIndex:
		return json.Marshal(r.index)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a string name, a numeric index, or null.
func (r *WallRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = WallRef{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = WallByName(s)
		return nil
	}
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return fmt.Errorf("invalid wall reference: %s", data)
	}
	*r = WallByIndex(i)
	return nil
}

// UnmarshalTOML accepts a string name or an integer index from a TOML
// plan file.
func (r *WallRef) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case string:
		*r = WallByName(t)
	case int64:
		*r = WallByIndex(int(t))
	default:
		return fmt.Errorf("invalid wall reference type %T", v)
	}
	return nil
}

// SectionSpec is one requested cabinet section. MinWidth and MaxWidth
// bound the resolved width (zero means unbounded); Depth overrides the
// wall's depth when positive.
type SectionSpec struct {
	Width      Width      `json:"width"`
	Shelves    int        `json:"shelves,omitempty"`
	Wall       WallRef    `json:"wall,omitempty"`
	HeightMode HeightMode `json:"height_mode,omitempty"`
	MinWidth   float64    `json:"min_width,omitempty"`
	MaxWidth   float64    `json:"max_width,omitempty"`
	Depth      float64    `json:"depth,omitempty"`
}

// EffectiveHeightMode returns the spec's height mode, defaulting to
// full when unset.
func (s SectionSpec) EffectiveHeightMode() HeightMode {
	if s.HeightMode == "" {
		return HeightFull
	}
	return s.HeightMode
}

// WidthInBounds reports whether a resolved width satisfies the spec's
// own min/max constraints.
func (s SectionSpec) WidthInBounds(w float64) bool {
	if s.MinWidth > 0 && w < s.MinWidth-1e-9 {
		return false
	}
	if s.MaxWidth > 0 && w > s.MaxWidth+1e-9 {
		return false
	}
	return true
}

// EffectiveDepth returns the spec depth when positive, else the wall's.
func (s SectionSpec) EffectiveDepth(wall WallSegment) float64 {
	if s.Depth > 0 {
		return s.Depth
	}
	return wall.Depth
}

// TotalFixedWidth sums the fixed widths among specs. Fill widths
// contribute nothing.
func TotalFixedWidth(specs []SectionSpec) float64 {
	var sum float64
	for _, s := range specs {
		if !s.Width.Fill {
			sum += s.Width.Value
		}
	}
	return sum
}

// DividerTotal returns the material consumed by dividers between n
// sections: thickness * (n - 1), never negative.
func DividerTotal(n int, thickness float64) float64 {
	return thickness * math.Max(0, float64(n-1))
}
