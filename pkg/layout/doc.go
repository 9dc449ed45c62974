// Package layout implements the room geometry and constrained section
// placement engine.
//
// The engine converts a room described as a chain of wall segments, a
// list of wall-mounted obstacles with clearance rules, optional sloped
// ceiling and skylight geometry, and a list of requested cabinet
// sections into validated, spatially positioned placements ready for
// downstream panel generation.
//
// # Architecture
//
// The engine is a set of stateless services composed by [LayoutRoom]:
//
//   - [ResolveWallPath], [ValidateGeometry]: wall chain → absolute
//     positions plus advisory geometry diagnostics
//   - [ResolveSectionWidths], [ValidateSectionSpecs]: fixed and fill
//     widths against a wall's length
//   - [ObstacleZones], [CheckCollision], [LayoutSections]: clearance
//     zones, overlap testing, and height-mode placement
//   - [CeilingHeightAt], [GenerateTaperSpec], [CheckMinHeightViolations]:
//     sloped-ceiling adjustments
//   - [VoidIntersection], [VoidExceedsSection]: skylight void notching
//   - [IsOutsideCorner], [SidePanelAngleCut], [CornerPanels]: outside
//     corner treatments
//
// Every function is pure: immutable inputs in, freshly built outputs
// out. Nothing is shared between calls, so concurrent invocations are
// safe as long as callers do not mutate plan values mid-call.
//
// # Error Policy
//
// Validation problems are collected into slices so one pass surfaces
// every issue: geometry problems come back as [Diagnostic] values
// (advisory, the caller decides severity), fit problems as [FitError]
// values (fatal for the affected wall), and residual obstacle
// collisions as warnings on the emitted section. Only unknown wall
// references fail the run outright.
package layout
