// Package plan defines the immutable value objects exchanged with the
// layout engine.
//
// This package is the serialization boundary of the system: the config
// adapter (pkg/config) produces these values from validated input, the
// engine (pkg/layout) reads them, and the output types ([PlacedSection],
// [SectionTransform], [NotchSpec], [TaperSpec], [AngleCut]) are the
// contract consumed by downstream panel, cut-list, and export stages.
//
// # Input Types
//
//   - [Room], [WallSegment]: a room as a chain of wall runs with
//     relative turn angles
//   - [Obstacle], [Clearance]: wall-mounted exclusions with margins
//   - [SectionSpec], [Width], [WallRef]: the requested cabinet sections
//   - [CeilingSlope], [Skylight]: optional ceiling geometry
//
// # Output Types
//
//   - [WallPosition]: derived absolute wall placement (never stored)
//   - [PlacedSection]: a fully resolved section with bounds, transform,
//     warnings, and geometric adjustments
//
// All values are constructed once from validated configuration and never
// mutated afterward; the engine returns freshly built outputs on every
// call. Sharing plan values across concurrent engine invocations is safe
// as long as callers honor that immutability.
package plan
