package layout

import (
	"fmt"
	"sort"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/errors"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

// FitError reports a wall whose fixed section widths plus dividers
// exceed its length. Fatal for that wall: no layout is produced for it,
// though other walls still lay out.
type FitError struct {
	WallIndex int     `json:"wall_index"`
	WallName  string  `json:"wall_name,omitempty"`
	Required  float64 `json:"required"`
	Available float64 `json:"available"`
}

// Error renders the fit problem with the offending quantities.
func (e FitError) Error() string {
	label := e.WallName
	if label == "" {
		label = fmt.Sprintf("#%d", e.WallIndex)
	}
	return fmt.Sprintf("sections on wall %s exceed wall length: need %.3f, have %.3f",
		label, e.Required, e.Available)
}

// Assignment maps one section spec to its resolved wall.
type Assignment struct {
	SectionIndex int `json:"section_index"`
	WallIndex    int `json:"wall_index"`
}

// AssignSectionsToWalls resolves every spec's wall reference and
// returns ordered (section index, wall index) pairs. A reference naming
// a nonexistent wall fails the whole assignment with a WALL_NOT_FOUND
// error; unset references resolve to wall 0.
func AssignSectionsToWalls(room plan.Room, specs []plan.SectionSpec) ([]Assignment, error) {
	assignments := make([]Assignment, 0, len(specs))
	for i, s := range specs {
		wall, ok := s.Wall.Resolve(room)
		if !ok {
			return nil, errors.New(errors.ErrCodeWallNotFound,
				"section %d references unknown wall %s in room %q", i, s.Wall, room.Name)
		}
		assignments = append(assignments, Assignment{SectionIndex: i, WallIndex: wall})
	}
	return assignments, nil
}

// ValidateFit groups specs by resolved wall and returns one FitError
// per wall whose fixed widths plus divider material exceed the wall's
// length. Specs with unresolvable references are skipped here;
// AssignSectionsToWalls reports those.
func ValidateFit(room plan.Room, specs []plan.SectionSpec, dividerThickness float64) []FitError {
	grouped := map[int][]plan.SectionSpec{}
	for _, s := range specs {
		if wall, ok := s.Wall.Resolve(room); ok {
			grouped[wall] = append(grouped[wall], s)
		}
	}

	walls := make([]int, 0, len(grouped))
	for w := range grouped {
		walls = append(walls, w)
	}
	sort.Ints(walls)

	var fitErrs []FitError
	for _, w := range walls {
		group := grouped[w]
		required := plan.TotalFixedWidth(group) + plan.DividerTotal(len(group), dividerThickness)
		if required > room.Walls[w].Length {
			fitErrs = append(fitErrs, FitError{
				WallIndex: w,
				WallName:  room.Walls[w].Name,
				Required:  required,
				Available: room.Walls[w].Length,
			})
		}
	}
	return fitErrs
}

// ComputeSectionTransforms maps each placed section's wall-local offset
// through its wall's resolved position: the section origin is the wall
// start advanced by the offset along the wall heading, and rotation_z
// is the heading itself, already wrapped into [0, 360) so downstream
// consumers see a right-handed increment. Output order matches input.
func ComputeSectionTransforms(positions []plan.WallPosition, sections []plan.PlacedSection) []plan.SectionTransform {
	transforms := make([]plan.SectionTransform, len(sections))
	for i, s := range sections {
		pos := positions[s.WallIndex]
		origin := pos.Start.Heading(pos.Heading, s.X)
		transforms[i] = plan.SectionTransform{
			Position:  [3]float64{origin.X, origin.Y, 0},
			RotationZ: pos.Heading,
		}
	}
	return transforms
}

// =============================================================================
// Full Room Layout
// =============================================================================

// Input carries everything one layout run consumes. All collections
// are treated as immutable for the duration of the call.
type Input struct {
	Room      plan.Room
	Obstacles []plan.Obstacle
	Specs     []plan.SectionSpec

	// Slopes maps wall index to the sloped ceiling over that wall.
	Slopes map[int]plan.CeilingSlope

	// Skylights project voids into the walls they reference.
	Skylights []plan.Skylight

	// DividerThickness is the material between adjacent sections;
	// zero means DefaultDividerThickness.
	DividerThickness float64

	// CornerTreatment applies to every outside corner; empty means
	// angled_face.
	CornerTreatment string
}

// dividers returns the effective divider thickness.
func (in Input) dividers() float64 {
	if in.DividerThickness > 0 {
		return in.DividerThickness
	}
	return DefaultDividerThickness
}

// CornerInfo pairs an outside corner with its resolved panel
// treatment. Junction is the index of the wall whose turn angle forms
// the corner with its predecessor.
type CornerInfo struct {
	Junction int         `json:"junction"`
	Angle    float64     `json:"angle"`
	Panel    CornerPanel `json:"panel"`
}

// Result is the output of one full layout run.
type Result struct {
	Positions           []plan.WallPosition  `json:"wall_positions"`
	Sections            []plan.PlacedSection `json:"sections"`
	Corners             []CornerInfo         `json:"corners,omitempty"`
	Diagnostics         []Diagnostic         `json:"diagnostics,omitempty"`
	FitErrors           []FitError           `json:"fit_errors,omitempty"`
	MinHeightViolations []MinHeightViolation `json:"min_height_violations,omitempty"`
}

// WarningCount sums the warnings across all placed sections.
func (r *Result) WarningCount() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s.Warnings)
	}
	return n
}

// LayoutRoom runs the whole engine: wall path resolution, geometry
// diagnostics, assignment, fit validation, obstacle-aware placement,
// ceiling and skylight adjustments, corner treatments, and final 3D
// transforms.
//
// Unknown wall references and unsupported corner treatments fail the
// run. Fit errors suppress layout only for the affected wall and are
// reported in the result; geometry diagnostics and minimum-height
// violations are advisory.
func LayoutRoom(in Input) (*Result, error) {
	if len(in.Room.Walls) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidPlan, "room %q has no walls", in.Room.Name)
	}

	res := &Result{
		Positions: ResolveWallPath(in.Room),
	}
	res.Diagnostics = ValidateGeometry(in.Room, res.Positions)

	assignments, err := AssignSectionsToWalls(in.Room, in.Specs)
	if err != nil {
		return nil, err
	}

	divider := in.dividers()
	res.FitErrors = ValidateFit(in.Room, in.Specs, divider)
	overCommitted := map[int]bool{}
	for _, fe := range res.FitErrors {
		overCommitted[fe.WallIndex] = true
	}

	// Group assignments per wall, preserving spec order within each.
	groups := map[int]*wallGroup{}
	for _, a := range assignments {
		g := groups[a.WallIndex]
		if g == nil {
			g = &wallGroup{}
			groups[a.WallIndex] = g
		}
		g.indices = append(g.indices, a.SectionIndex)
		g.specs = append(g.specs, in.Specs[a.SectionIndex])
	}

	for wall, g := range groups {
		if overCommitted[wall] {
			continue
		}
		seg := in.Room.Walls[wall]
		placed := LayoutSections(seg.Length, seg.Height, wall, in.Obstacles, g.specs, divider)

		slope, hasSlope := in.Slopes[wall]
		for k := range placed {
			placed[k].SectionIndex = g.indices[k]
			placed[k].Depth = g.specs[k].EffectiveDepth(seg)

			if hasSlope {
				if taper := GenerateTaperSpec(slope, placed[k].X, placed[k].Width, seg.Length); taper != nil {
					placed[k].Taper = taper
				}
			}
			for _, sk := range in.Skylights {
				if sk.WallIndex != wall {
					continue
				}
				if notch := VoidIntersection(sk, placed[k].X, placed[k].Width, seg.Depth); notch != nil {
					placed[k].Notches = append(placed[k].Notches, *notch)
					if VoidExceedsSection(sk, placed[k].X, placed[k].Width, seg.Depth) {
						placed[k].Warnings = append(placed[k].Warnings,
							fmt.Sprintf("skylight void fully covers section %d", placed[k].SectionIndex))
					}
				}
			}
		}

		if hasSlope {
			res.MinHeightViolations = append(res.MinHeightViolations,
				CheckMinHeightViolations(slope, placed, seg.Length)...)
		}

		res.Sections = append(res.Sections, placed...)
	}

	if err := applyCorners(in, res, groups); err != nil {
		return nil, err
	}

	sort.Slice(res.Sections, func(i, j int) bool {
		return res.Sections[i].SectionIndex < res.Sections[j].SectionIndex
	})
	sort.Slice(res.MinHeightViolations, func(i, j int) bool {
		return res.MinHeightViolations[i].SectionIndex < res.MinHeightViolations[j].SectionIndex
	})

	transforms := ComputeSectionTransforms(res.Positions, res.Sections)
	for i := range res.Sections {
		res.Sections[i].Transform = transforms[i]
	}

	return res, nil
}

// applyCorners resolves outside-corner treatments at every wall
// junction and attaches side-panel cuts to the sections flanking any
// non-square junction: the last section on the incoming wall gets a
// right-edge cut, the first on the outgoing wall a left-edge cut.
func applyCorners(in Input, res *Result, groups map[int]*wallGroup) error {
	for j := 1; j < len(in.Room.Walls); j++ {
		angle := in.Room.Walls[j].Angle

		if IsOutsideCorner(angle) {
			depth := in.Room.Walls[j].Depth
			if depth == 0 {
				depth = in.Room.Walls[j-1].Depth
			}
			panel, err := CornerPanels(angle, depth, in.CornerTreatment)
			if err != nil {
				return err
			}
			res.Corners = append(res.Corners, CornerInfo{Junction: j, Angle: angle, Panel: panel})
		}

		attachCornerCut(res, groups[j-1], angle, EdgeRight, true)
		attachCornerCut(res, groups[j], angle, EdgeLeft, false)
	}
	return nil
}

// attachCornerCut adds a side-panel cut to the wall group's section
// nearest the junction (last for the incoming wall, first for the
// outgoing wall). Square junctions produce no cut.
func attachCornerCut(res *Result, g *wallGroup, angle float64, edge string, last bool) {
	if g == nil || len(g.indices) == 0 {
		return
	}
	cut := SidePanelAngleCut(angle, edge)
	if cut == nil {
		return
	}
	target := g.indices[0]
	if last {
		target = g.indices[len(g.indices)-1]
	}
	for i := range res.Sections {
		if res.Sections[i].SectionIndex == target {
			res.Sections[i].Cuts = append(res.Sections[i].Cuts, *cut)
			return
		}
	}
}

// wallGroup collects the spec indices and specs assigned to one wall,
// in spec order.
type wallGroup struct {
	indices []int
	specs   []plan.SectionSpec
}
