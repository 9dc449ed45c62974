package layout

import (
	"math"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/errors"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/geometry"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

// Outside-corner treatments. WrapAround (cabinetry continuing around
// the convex corner as one run) is not implemented; requesting it is
// rejected rather than silently substituted with an angled face.
const (
	TreatmentAngledFace = "angled_face"
	TreatmentWrapAround = "wrap_around"
)

// Panel edges named by angle cuts.
const (
	EdgeLeft  = "left"
	EdgeRight = "right"
)

// IsOutsideCorner reports whether a wall junction with the given turn
// angle is convex: any turn sharper than 90 degrees in either direction
// leaves an outside corner needing special panel treatment.
func IsOutsideCorner(angle float64) bool {
	return math.Abs(angle) > 90
}

// AngledFacePanelWidth returns the width of the diagonal face panel
// that spans an outside corner: the panel bridges the two cabinet runs
// at the given face angle, covering depth on each side.
func AngledFacePanelWidth(depth, faceAngle float64) float64 {
	return 2 * depth * math.Tan(geometry.Radians(faceAngle/2))
}

// SidePanelAngleCut returns the bevel cut for a side panel meeting a
// wall junction at the given turn angle, or nil for square junctions
// (angle 0 or 90), which need a plain edge. The cut splits the
// deviation from square evenly between the two meeting panels.
func SidePanelAngleCut(wallAngle float64, edge string) *plan.AngleCut {
	a := math.Abs(wallAngle)
	if a < geometry.Epsilon || math.Abs(a-90) < geometry.Epsilon {
		return nil
	}
	return &plan.AngleCut{
		Angle: math.Abs(90-a) / 2,
		Edge:  edge,
		Bevel: true,
	}
}

// CornerPanel describes the treatment applied at one outside corner.
type CornerPanel struct {
	Treatment string          `json:"treatment"`
	FaceAngle float64         `json:"face_angle"`
	FaceWidth float64         `json:"face_width"`
	Cuts      []plan.AngleCut `json:"cuts,omitempty"`
}

// CornerPanels resolves the panel treatment for an outside corner with
// the given turn angle and cabinet depth. The face angle is the turn's
// deviation beyond square. Only the angled-face treatment is
// implemented; wrap_around returns an UNSUPPORTED error and any other
// treatment name is invalid input.
func CornerPanels(angle, depth float64, treatment string) (CornerPanel, error) {
	switch treatment {
	case "", TreatmentAngledFace:
		// default below
	case TreatmentWrapAround:
		return CornerPanel{}, errors.New(errors.ErrCodeUnsupported,
			"corner treatment %q is not implemented; use %q", TreatmentWrapAround, TreatmentAngledFace)
	default:
		return CornerPanel{}, errors.New(errors.ErrCodeInvalidInput,
			"unknown corner treatment %q", treatment)
	}

	faceAngle := math.Abs(angle) - 90
	p := CornerPanel{
		Treatment: TreatmentAngledFace,
		FaceAngle: faceAngle,
		FaceWidth: AngledFacePanelWidth(depth, faceAngle),
	}
	if cut := SidePanelAngleCut(angle, EdgeRight); cut != nil {
		p.Cuts = append(p.Cuts, *cut)
	}
	if cut := SidePanelAngleCut(angle, EdgeLeft); cut != nil {
		p.Cuts = append(p.Cuts, *cut)
	}
	return p, nil
}
