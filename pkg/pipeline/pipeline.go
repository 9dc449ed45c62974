// Package pipeline provides the core layout pipeline for the cabinet maker.
//
// This package implements the complete decode → layout → export pipeline that
// can be used by CLI and API components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Decode: Parse and validate a TOML plan document
//  2. Layout: Resolve wall geometry and place sections
//  3. Export: Serialize the layout result as JSON
//
// Layout results are cached keyed by a hash of the plan document and the
// effective layout options, since the engine is deterministic.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{PlanPath: "plans/studio.toml"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(result.Document))
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/cache"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/errors"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/layout"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Decode options: exactly one source must be set.
	PlanPath string `json:"plan_path,omitempty"`
	PlanTOML string `json:"plan_toml,omitempty"` // raw plan document (API)

	// Layout options. Non-zero values override the plan file's own
	// [layout] table.
	DividerThickness float64 `json:"divider_thickness,omitempty"`
	CornerTreatment  string  `json:"corner_treatment,omitempty"`

	// Refresh bypasses the cache and recomputes the layout.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.PlanPath == "" && o.PlanTOML == "" {
		return errors.New(errors.ErrCodeInvalidInput, "plan_path or plan_toml is required")
	}
	if o.PlanPath != "" && o.PlanTOML != "" {
		return errors.New(errors.ErrCodeInvalidInput, "plan_path and plan_toml are mutually exclusive")
	}
	if o.DividerThickness < 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"divider thickness must not be negative, got %g", o.DividerThickness)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// layoutKeyOpts returns cache key options for the effective layout
// input, after plan-level and option-level settings are merged.
func layoutKeyOpts(in *layout.Input) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		DividerThickness: in.DividerThickness,
		CornerTreatment:  in.CornerTreatment,
	}
}

// =============================================================================
// Result and Stats
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution.
	RunID string

	// PlanHash is the content hash of the raw plan document.
	PlanHash string

	// Input is the decoded and validated layout input.
	Input *layout.Input

	// Layout is the computed layout result.
	Layout *layout.Result

	// Document is the exported JSON document.
	Document []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WallCount    int
	SectionCount int
	WarningCount int
	DecodeTime   time.Duration
	LayoutTime   time.Duration
	ExportTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout result came from cache
}
