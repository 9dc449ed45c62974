// Package config decodes TOML plan files into layout inputs.
//
// A plan file describes one room, its obstacles, the requested cabinet
// sections, and optional ceiling features:
//
//	[room]
//	name = "studio"
//
//	[[room.walls]]
//	name = "south"
//	length = 120
//	height = 96
//	depth = 12
//	angle = 0
//
//	[[sections]]
//	width = "fill"
//	wall = "south"
//
// Decoding validates the plan up front so the layout engine only ever
// sees structurally sound input: wall dimensions must be positive,
// obstacles must lie within their wall, and enumerated fields must use
// known values.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/errors"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/layout"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

// document mirrors the TOML plan file layout.
type document struct {
	Room      roomDoc       `toml:"room"`
	Obstacles []obstacleDoc `toml:"obstacles"`
	Sections  []sectionDoc  `toml:"sections"`
	Slopes    []slopeDoc    `toml:"ceiling_slopes"`
	Skylights []skylightDoc `toml:"skylights"`
	Layout    layoutDoc     `toml:"layout"`
}

type roomDoc struct {
	Name   string    `toml:"name"`
	Closed bool      `toml:"closed"`
	Walls  []wallDoc `toml:"walls"`
}

type wallDoc struct {
	Name   string  `toml:"name"`
	Length float64 `toml:"length"`
	Height float64 `toml:"height"`
	Depth  float64 `toml:"depth"`
	Angle  float64 `toml:"angle"`
}

type obstacleDoc struct {
	Type      string        `toml:"type"`
	Wall      plan.WallRef  `toml:"wall"`
	Name      string        `toml:"name"`
	Offset    float64       `toml:"offset"`
	Bottom    float64       `toml:"bottom"`
	Width     float64       `toml:"width"`
	Height    float64       `toml:"height"`
	Egress    bool          `toml:"egress"`
	Clearance *clearanceDoc `toml:"clearance"`
}

type clearanceDoc struct {
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
}

// UnmarshalTOML accepts either a single number, applied uniformly to
// all four sides, or a table with top/bottom/left/right keys.
func (c *clearanceDoc) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case int64:
		*c = uniformClearance(float64(t))
	case float64:
		*c = uniformClearance(t)
	case map[string]any:
		for key, raw := range t {
			n, err := tomlNumber(raw)
			if err != nil {
				return fmt.Errorf("clearance %s: %w", key, err)
			}
			switch key {
			case "top":
				c.Top = n
			case "bottom":
				c.Bottom = n
			case "left":
				c.Left = n
			case "right":
				c.Right = n
			default:
				return fmt.Errorf("unknown clearance key %q", key)
			}
		}
	default:
		return fmt.Errorf("invalid clearance type %T (want a number or a table)", v)
	}
	return nil
}

func uniformClearance(n float64) clearanceDoc {
	return clearanceDoc{Top: n, Bottom: n, Left: n, Right: n}
}

func tomlNumber(v any) (float64, error) {
	switch t := v.(type) {
	case int64:
		return float64(t), nil
	case float64:
		return t, nil
	default:
		return 0, fmt.Errorf("invalid number type %T", v)
	}
}

type sectionDoc struct {
	Width      plan.Width   `toml:"width"`
	Shelves    int          `toml:"shelves"`
	Wall       plan.WallRef `toml:"wall"`
	HeightMode string       `toml:"height_mode"`
	MinWidth   float64      `toml:"min_width"`
	MaxWidth   float64      `toml:"max_width"`
	Depth      float64      `toml:"depth"`
}

type slopeDoc struct {
	Wall        plan.WallRef `toml:"wall"`
	Angle       float64      `toml:"angle"`
	StartHeight float64      `toml:"start_height"`
	Direction   string       `toml:"direction"`
	MinHeight   float64      `toml:"min_height"`
}

type skylightDoc struct {
	Wall            plan.WallRef `toml:"wall"`
	XPosition       float64      `toml:"x_position"`
	Width           float64      `toml:"width"`
	ProjectionDepth float64      `toml:"projection_depth"`
	ProjectionAngle float64      `toml:"projection_angle"`
}

type layoutDoc struct {
	DividerThickness float64 `toml:"divider_thickness"`
	CornerTreatment  string  `toml:"corner_treatment"`
}

// Load reads and decodes a TOML plan file.
func Load(path string) (*layout.Input, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "plan file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read plan file %s", path)
	}
	return Decode(data)
}

// Decode parses a TOML plan document and validates it into a layout
// input. Validation failures carry INVALID_* error codes naming the
// offending element.
func Decode(data []byte) (*layout.Input, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse plan")
	}

	room, err := buildRoom(doc.Room)
	if err != nil {
		return nil, err
	}

	in := &layout.Input{
		Room:             room,
		DividerThickness: doc.Layout.DividerThickness,
		CornerTreatment:  doc.Layout.CornerTreatment,
	}
	if doc.Layout.DividerThickness < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"divider thickness must not be negative, got %g", doc.Layout.DividerThickness)
	}

	for i, o := range doc.Obstacles {
		obstacle, err := buildObstacle(room, i, o)
		if err != nil {
			return nil, err
		}
		in.Obstacles = append(in.Obstacles, obstacle)
	}

	for i, s := range doc.Sections {
		spec, err := buildSection(i, s)
		if err != nil {
			return nil, err
		}
		in.Specs = append(in.Specs, spec)
	}

	for i, s := range doc.Slopes {
		wall, slope, err := buildSlope(room, i, s)
		if err != nil {
			return nil, err
		}
		if in.Slopes == nil {
			in.Slopes = map[int]plan.CeilingSlope{}
		}
		if _, dup := in.Slopes[wall]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"ceiling slope %d duplicates wall %s", i, s.Wall)
		}
		in.Slopes[wall] = slope
	}

	for i, s := range doc.Skylights {
		skylight, err := buildSkylight(room, i, s)
		if err != nil {
			return nil, err
		}
		in.Skylights = append(in.Skylights, skylight)
	}

	return in, nil
}

func buildRoom(doc roomDoc) (plan.Room, error) {
	if err := errors.ValidatePlanName(doc.Name); err != nil {
		return plan.Room{}, err
	}
	if len(doc.Walls) == 0 {
		return plan.Room{}, errors.New(errors.ErrCodeInvalidPlan, "room %q has no walls", doc.Name)
	}

	room := plan.Room{Name: doc.Name, Closed: doc.Closed}
	seen := map[string]bool{}
	for i, w := range doc.Walls {
		if err := errors.ValidateWallName(w.Name); err != nil {
			return plan.Room{}, err
		}
		if w.Name != "" && seen[w.Name] {
			return plan.Room{}, errors.New(errors.ErrCodeInvalidWall,
				"wall %d reuses name %q", i, w.Name)
		}
		seen[w.Name] = true

		if w.Length <= 0 || w.Height <= 0 || w.Depth <= 0 {
			return plan.Room{}, errors.New(errors.ErrCodeInvalidWall,
				"wall %s must have positive length, height, and depth", wallLabel(i, w.Name))
		}
		if i == 0 && w.Angle != 0 {
			return plan.Room{}, errors.New(errors.ErrCodeInvalidWall,
				"first wall must have angle 0, got %g", w.Angle)
		}
		room.Walls = append(room.Walls, plan.WallSegment{
			Name:   w.Name,
			Length: w.Length,
			Height: w.Height,
			Depth:  w.Depth,
			Angle:  w.Angle,
		})
	}
	return room, nil
}

func buildObstacle(room plan.Room, i int, doc obstacleDoc) (plan.Obstacle, error) {
	typ := plan.ObstacleType(doc.Type)
	if !typ.Valid() {
		return plan.Obstacle{}, errors.New(errors.ErrCodeInvalidObstacle,
			"obstacle %d has unknown type %q", i, doc.Type)
	}

	wall, ok := doc.Wall.Resolve(room)
	if !ok {
		return plan.Obstacle{}, errors.New(errors.ErrCodeWallNotFound,
			"obstacle %d references unknown wall %s", i, doc.Wall)
	}

	seg := room.Walls[wall]
	if doc.Width <= 0 || doc.Height <= 0 {
		return plan.Obstacle{}, errors.New(errors.ErrCodeInvalidObstacle,
			"obstacle %d must have positive width and height", i)
	}
	if doc.Offset < 0 || doc.Offset+doc.Width > seg.Length ||
		doc.Bottom < 0 || doc.Bottom+doc.Height > seg.Height {
		return plan.Obstacle{}, errors.New(errors.ErrCodeInvalidObstacle,
			"obstacle %d extends outside wall %s", i, wallLabel(wall, seg.Name))
	}

	obstacle := plan.Obstacle{
		Type:      typ,
		WallIndex: wall,
		Name:      doc.Name,
		Offset:    doc.Offset,
		Bottom:    doc.Bottom,
		Width:     doc.Width,
		Height:    doc.Height,
		Egress:    doc.Egress,
	}
	if doc.Clearance != nil {
		obstacle.Clearance = &plan.Clearance{
			Top:    doc.Clearance.Top,
			Bottom: doc.Clearance.Bottom,
			Left:   doc.Clearance.Left,
			Right:  doc.Clearance.Right,
		}
	}
	return obstacle, nil
}

func buildSection(i int, doc sectionDoc) (plan.SectionSpec, error) {
	if !doc.Width.Fill && doc.Width.Value <= 0 {
		return plan.SectionSpec{}, errors.New(errors.ErrCodeInvalidSection,
			"section %d must have a positive width or %q", i, plan.FillKeyword)
	}

	mode := plan.HeightMode(doc.HeightMode)
	if doc.HeightMode != "" && !mode.Valid() {
		return plan.SectionSpec{}, errors.New(errors.ErrCodeInvalidSection,
			"section %d has unknown height mode %q", i, doc.HeightMode)
	}

	if doc.MinWidth < 0 || doc.MaxWidth < 0 || doc.Shelves < 0 || doc.Depth < 0 {
		return plan.SectionSpec{}, errors.New(errors.ErrCodeInvalidSection,
			"section %d has negative dimensions", i)
	}
	if doc.MinWidth > 0 && doc.MaxWidth > 0 && doc.MinWidth > doc.MaxWidth {
		return plan.SectionSpec{}, errors.New(errors.ErrCodeInvalidSection,
			"section %d min width %g exceeds max width %g", i, doc.MinWidth, doc.MaxWidth)
	}

	return plan.SectionSpec{
		Width:      doc.Width,
		Shelves:    doc.Shelves,
		Wall:       doc.Wall,
		HeightMode: mode,
		MinWidth:   doc.MinWidth,
		MaxWidth:   doc.MaxWidth,
		Depth:      doc.Depth,
	}, nil
}

func buildSlope(room plan.Room, i int, doc slopeDoc) (int, plan.CeilingSlope, error) {
	wall, ok := doc.Wall.Resolve(room)
	if !ok {
		return 0, plan.CeilingSlope{}, errors.New(errors.ErrCodeWallNotFound,
			"ceiling slope %d references unknown wall %s", i, doc.Wall)
	}

	if doc.Angle < 0 || doc.Angle > 60 {
		return 0, plan.CeilingSlope{}, errors.New(errors.ErrCodeInvalidInput,
			"ceiling slope %d angle must be in [0, 60], got %g", i, doc.Angle)
	}
	if doc.StartHeight <= 0 {
		return 0, plan.CeilingSlope{}, errors.New(errors.ErrCodeInvalidInput,
			"ceiling slope %d must have a positive start height", i)
	}
	if doc.MinHeight < 0 || doc.MinHeight > doc.StartHeight {
		return 0, plan.CeilingSlope{}, errors.New(errors.ErrCodeInvalidInput,
			"ceiling slope %d min height must be in [0, start height]", i)
	}

	direction := plan.SlopeDirection(doc.Direction)
	if doc.Direction == "" {
		direction = plan.SlopeLeftToRight
	} else if !direction.Valid() {
		return 0, plan.CeilingSlope{}, errors.New(errors.ErrCodeInvalidInput,
			"ceiling slope %d has unknown direction %q", i, doc.Direction)
	}

	return wall, plan.CeilingSlope{
		Angle:       doc.Angle,
		StartHeight: doc.StartHeight,
		Direction:   direction,
		MinHeight:   doc.MinHeight,
	}, nil
}

func buildSkylight(room plan.Room, i int, doc skylightDoc) (plan.Skylight, error) {
	wall, ok := doc.Wall.Resolve(room)
	if !ok {
		return plan.Skylight{}, errors.New(errors.ErrCodeWallNotFound,
			"skylight %d references unknown wall %s", i, doc.Wall)
	}

	seg := room.Walls[wall]
	if doc.Width <= 0 {
		return plan.Skylight{}, errors.New(errors.ErrCodeInvalidInput,
			"skylight %d must have a positive width", i)
	}
	if doc.XPosition < 0 || doc.XPosition+doc.Width > seg.Length {
		return plan.Skylight{}, errors.New(errors.ErrCodeInvalidInput,
			"skylight %d extends outside wall %s", i, wallLabel(wall, seg.Name))
	}
	if doc.ProjectionDepth < 0 {
		return plan.Skylight{}, errors.New(errors.ErrCodeInvalidInput,
			"skylight %d must have a non-negative projection depth", i)
	}

	angle := doc.ProjectionAngle
	if angle == 0 {
		angle = 90
	}
	if angle <= 0 || angle > 90 {
		return plan.Skylight{}, errors.New(errors.ErrCodeInvalidInput,
			"skylight %d projection angle must be in (0, 90], got %g", i, doc.ProjectionAngle)
	}

	return plan.Skylight{
		WallIndex:       wall,
		XPosition:       doc.XPosition,
		Width:           doc.Width,
		ProjectionDepth: doc.ProjectionDepth,
		ProjectionAngle: angle,
	}, nil
}

func wallLabel(i int, name string) string {
	if name != "" {
		return name
	}
	return plan.WallByIndex(i).String()
}
