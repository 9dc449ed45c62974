package plan

import "github.com/tyevans/builtin-cabinet-maker-sub005/pkg/geometry"

// ObstacleType is the closed set of obstacle kinds. Each type carries a
// default clearance in DefaultClearances; an instance-level Clearance
// override always wins.
type ObstacleType string

// Obstacle types.
const (
	ObstacleWindow   ObstacleType = "window"
	ObstacleDoor     ObstacleType = "door"
	ObstacleOutlet   ObstacleType = "outlet"
	ObstacleSwitch   ObstacleType = "switch"
	ObstacleVent     ObstacleType = "vent"
	ObstacleSkylight ObstacleType = "skylight"
	ObstacleCustom   ObstacleType = "custom"
)

// ValidObstacleTypes is the set of recognized obstacle types.
var ValidObstacleTypes = map[ObstacleType]bool{
	ObstacleWindow:   true,
	ObstacleDoor:     true,
	ObstacleOutlet:   true,
	ObstacleSwitch:   true,
	ObstacleVent:     true,
	ObstacleSkylight: true,
	ObstacleCustom:   true,
}

// Valid reports whether t is a recognized obstacle type.
func (t ObstacleType) Valid() bool { return ValidObstacleTypes[t] }

// Clearance is the margin kept free around an obstacle, per side.
// All values are non-negative.
type Clearance struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// uniform builds a clearance with the same margin on all sides.
func uniform(v float64) Clearance {
	return Clearance{Top: v, Bottom: v, Left: v, Right: v}
}

// DefaultClearances maps each obstacle type to the margin applied when
// an obstacle carries no instance override. Windows and doors need trim
// and operating room; electrical fixtures need code-driven access;
// vents need airflow.
var DefaultClearances = map[ObstacleType]Clearance{
	ObstacleWindow:   uniform(2),
	ObstacleDoor:     {Top: 2, Bottom: 0, Left: 3, Right: 3},
	ObstacleOutlet:   uniform(1),
	ObstacleSwitch:   uniform(1),
	ObstacleVent:     uniform(3),
	ObstacleSkylight: uniform(2),
	ObstacleCustom:   {},
}

// Obstacle is a fixture on one wall that sections must avoid. Offset
// and Bottom locate its lower-left corner in wall-local coordinates.
// The config adapter guarantees the obstacle lies within its wall's
// bounds before it reaches the engine.
type Obstacle struct {
	Type      ObstacleType `json:"type"`
	WallIndex int          `json:"wall_index"`
	Name      string       `json:"name,omitempty"`
	Offset    float64      `json:"horizontal_offset"`
	Bottom    float64      `json:"bottom"`
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	Clearance *Clearance   `json:"clearance,omitempty"`
	Egress    bool         `json:"is_egress,omitempty"`
}

// Rect returns the obstacle's own footprint in wall-local coordinates,
// without clearance.
func (o Obstacle) Rect() geometry.Rect {
	return geometry.NewRect(o.Offset, o.Bottom, o.Width, o.Height)
}

// ResolvedClearance returns the instance override when present, else
// the per-type default.
func (o Obstacle) ResolvedClearance() Clearance {
	if o.Clearance != nil {
		return *o.Clearance
	}
	return DefaultClearances[o.Type]
}

// Label returns the obstacle's name when set, else its type.
func (o Obstacle) Label() string {
	if o.Name != "" {
		return o.Name
	}
	return string(o.Type)
}
